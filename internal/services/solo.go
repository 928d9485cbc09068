package services

import (
	"log"
	"strings"
	"time"

	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/models"
	"github.com/Ezo333/Mini-game/internal/words"
)

// soloSweepGrace is how long past the deadline the sweeper waits before
// force-completing a game, leaving room for an in-flight client completion.
const soloSweepGrace = 30 * time.Second

// SoloEngine drives single-player sessions against a server-picked secret.
type SoloEngine struct {
	store    *Store
	profiles *ProfileService
}

func NewSoloEngine(store *Store, profiles *ProfileService) *SoloEngine {
	return &SoloEngine{
		store:    store,
		profiles: profiles,
	}
}

// CreateSoloGame starts a session. Word mode draws from the curated word
// list when one exists for the language and length, otherwise the secret is
// random letters from the language's alphabet.
func (e *SoloEngine) CreateSoloGame(req *models.CreateSoloGameRequest) (*models.SoloGame, error) {
	username := strings.TrimSpace(req.Username)
	if models.SanitizeUsername(username) == "" {
		return nil, ErrInvalidUsername
	}

	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}

	var language game.Language
	if mode == game.ModeWord {
		language, err = game.ParseLanguage(req.Language)
		if err != nil {
			return nil, err
		}
	}

	difficulty := game.DifficultyMedium
	if req.Difficulty != "" {
		difficulty, err = game.ParseDifficulty(req.Difficulty)
		if err != nil {
			return nil, err
		}
	}

	var secret string
	if mode == game.ModeWord {
		if w, ok := words.Lookup(language, req.SecretLength); ok {
			secret = w
		}
	}
	if secret == "" {
		secret, err = game.RandomSecret(mode, language, req.SecretLength)
		if err != nil {
			return nil, err
		}
	}

	now := e.store.ServerTime()
	g := &models.SoloGame{
		GameID:       models.GenerateSoloGameID(),
		Username:     username,
		Mode:         mode,
		Language:     language,
		SecretLength: req.SecretLength,
		Difficulty:   difficulty,
		TimeLimit:    difficulty.TimeLimit(),
		AISecret:     secret,
		Status:       models.SoloStatusPlaying,
		CreatedAt:    now,
		UpdatedAt:    now,
		StartedAt:    now,
	}

	if err := e.store.CreateSoloGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

// SoloGuessResult is the response for one solo guess.
type SoloGuessResult struct {
	Guess      string            `json:"guess"`
	Feedback   []game.Feedback   `json:"feedback"`
	IsCorrect  bool              `json:"is_correct"`
	Status     models.SoloStatus `json:"status"`
	GuessCount int               `json:"guess_count"`
}

// SubmitGuess evaluates one guess against the session secret. A correct
// guess finishes the game as won; the reward still waits for Complete.
func (e *SoloEngine) SubmitGuess(req *models.SubmitSoloGuessRequest) (*SoloGuessResult, error) {
	g, err := e.store.GetSoloGame(req.GameID)
	if err != nil {
		return nil, err
	}

	if g.Status != models.SoloStatusPlaying {
		return nil, ErrGameNotInProgress
	}

	guess := game.Normalize(req.Guess, g.Mode)
	if err := game.Validate(guess, g.Mode, g.Language, g.SecretLength); err != nil {
		return nil, err
	}

	feedback := game.Evaluate(guess, g.AISecret)
	isCorrect := game.AllCorrect(feedback)
	now := e.store.ServerTime()

	entry := &models.GuessEntry{
		Guess:     guess,
		Feedback:  feedback,
		IsCorrect: isCorrect,
		Timestamp: now,
	}
	if err := e.store.AppendSoloGuess(req.GameID, entry); err != nil {
		return nil, err
	}

	count, err := e.store.SoloGuessCount(req.GameID)
	if err != nil {
		return nil, err
	}

	status := g.Status
	if isCorrect {
		if _, err := e.store.FinishSoloGame(req.GameID, true, now); err != nil {
			return nil, err
		}
		status = models.SoloStatusFinished
	}

	return &SoloGuessResult{
		Guess:      guess,
		Feedback:   feedback,
		IsCorrect:  isCorrect,
		Status:     status,
		GuessCount: count,
	}, nil
}

// SoloCompletion is the settlement record for a finished solo game.
type SoloCompletion struct {
	GameID     string          `json:"game_id"`
	Won        bool            `json:"won"`
	Difficulty game.Difficulty `json:"difficulty"`
	GuessCount int             `json:"guess_count"`
	CoinReward int             `json:"coin_reward"`
	Secret     string          `json:"secret"`
}

// Complete closes out a solo game and pays the coin reward. The payout is
// claimed with a compare-and-set on the game's rewarded flag, so repeated
// completions return the same outcome with a zero reward. A win recorded by
// an earlier correct guess overrides the caller's claimed outcome.
func (e *SoloEngine) Complete(req *models.CompleteSoloGameRequest) (*SoloCompletion, error) {
	g, err := e.store.GetSoloGame(req.GameID)
	if err != nil {
		return nil, err
	}

	now := e.store.ServerTime()
	claimed, won, err := e.store.RewardSoloGame(req.GameID, req.Won, now)
	if err != nil {
		return nil, err
	}

	count, err := e.store.SoloGuessCount(req.GameID)
	if err != nil {
		return nil, err
	}

	completion := &SoloCompletion{
		GameID:     g.GameID,
		Won:        won,
		Difficulty: g.Difficulty,
		GuessCount: count,
		Secret:     g.AISecret,
	}

	if !claimed {
		return completion, nil
	}

	reward := game.SoloReward(won, g.Difficulty, count, req.TimeRemaining)
	completion.CoinReward = reward

	if err := e.profiles.ApplySoloResult(g.Username, won, reward); err != nil {
		return nil, err
	}
	if err := e.store.RemoveSoloDeadline(g.GameID); err != nil {
		log.Printf("failed to drop deadline for %s: %v", g.GameID, err)
	}

	return completion, nil
}

// SweepExpired force-completes games whose timer ran out without the client
// reporting back, so participation coins are still paid. Meant to run on a
// ticker.
func (e *SoloEngine) SweepExpired() {
	cutoff := time.Now().Add(-soloSweepGrace)

	ids, err := e.store.ExpiredSoloGames(cutoff)
	if err != nil {
		log.Printf("failed to list expired solo games: %v", err)
		return
	}

	for _, id := range ids {
		_, err := e.Complete(&models.CompleteSoloGameRequest{
			GameID: id,
			Won:    false,
		})
		if err != nil && err != ErrGameNotFound {
			log.Printf("failed to expire solo game %s: %v", id, err)
			continue
		}
		if err := e.store.RemoveSoloDeadline(id); err != nil {
			log.Printf("failed to drop deadline for %s: %v", id, err)
		}
	}
}
