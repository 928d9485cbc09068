package services

import (
	"errors"
	"log"
	"strings"

	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/models"
)

const roomCodeAttempts = 5

// RoomEngine drives two-player matches: room lifecycle, guess evaluation and
// the one-shot settlement when a game ends.
type RoomEngine struct {
	store       *Store
	profiles    *ProfileService
	broadcaster Broadcaster
}

func NewRoomEngine(store *Store, profiles *ProfileService) *RoomEngine {
	return &RoomEngine{
		store:    store,
		profiles: profiles,
	}
}

// SetBroadcaster wires the websocket hub in after construction. Events are
// dropped silently when no hub is attached.
func (e *RoomEngine) SetBroadcaster(b Broadcaster) {
	e.broadcaster = b
}

func (e *RoomEngine) broadcast(roomCode, event string, payload any) {
	if e.broadcaster != nil {
		e.broadcaster.BroadcastRoomEvent(roomCode, event, payload)
	}
}

// CreateRoom opens a new waiting room with the creator seated as player 1.
// An optional entry fee is debited up front and seeds the prize pool once
// the opponent joins.
func (e *RoomEngine) CreateRoom(req *models.CreateRoomRequest) (*models.Room, error) {
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

	secret := game.Normalize(req.Secret, mode)
	if err := game.Validate(secret, mode, language, req.SecretLength); err != nil {
		return nil, err
	}

	if req.EntryFee > 0 {
		if _, err := e.profiles.SpendCoins(username, req.EntryFee); err != nil {
			return nil, err
		}
	}

	now := e.store.ServerTime()
	room := &models.Room{
		Status:       models.RoomStatusWaiting,
		Mode:         mode,
		Language:     language,
		SecretLength: req.SecretLength,
		EntryFee:     req.EntryFee,
		Player1: &models.RoomPlayer{
			Username: username,
			Secret:   secret,
			JoinedAt: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Codes are random, so a collision is possible but rare. Retry with a
	// fresh code rather than overwriting a live room.
	for attempt := 0; attempt < roomCodeAttempts; attempt++ {
		room.RoomCode = models.GenerateRoomCode()
		err = e.store.CreateRoom(room)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, ErrRoomCodeTaken) {
			break
		}
	}

	if req.EntryFee > 0 {
		if refundErr := e.profiles.Refund(username, req.EntryFee); refundErr != nil {
			log.Printf("failed to refund entry fee for %s: %v", username, refundErr)
		}
	}
	return nil, err
}

// JoinRoom seats the second player and starts the game. The room's mode,
// language and secret length are fixed at creation; the joiner must match
// them exactly.
func (e *RoomEngine) JoinRoom(req *models.JoinRoomRequest) (*models.Room, error) {
	code := models.NormalizeRoomCode(req.RoomCode)

	room, err := e.store.GetRoom(code)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if models.SanitizeUsername(username) == "" {
		return nil, ErrInvalidUsername
	}

	if room.Status == models.RoomStatusFinished {
		return nil, ErrGameFinished
	}
	if room.Player2 != nil {
		return nil, ErrRoomFull
	}
	if strings.EqualFold(room.Player1.Username, username) {
		return nil, ErrUsernameConflict
	}

	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	if mode != room.Mode || req.SecretLength != room.SecretLength {
		return nil, ErrSettingsMismatch
	}
	if mode == game.ModeWord {
		language, err := game.ParseLanguage(req.Language)
		if err != nil {
			return nil, err
		}
		if language != room.Language {
			return nil, ErrSettingsMismatch
		}
	}

	secret := game.Normalize(req.Secret, room.Mode)
	if err := game.Validate(secret, room.Mode, room.Language, room.SecretLength); err != nil {
		return nil, err
	}

	if room.EntryFee > 0 {
		if _, err := e.profiles.SpendCoins(username, room.EntryFee); err != nil {
			return nil, err
		}
	}

	now := e.store.ServerTime()
	player := &models.RoomPlayer{
		Username: username,
		Secret:   secret,
		JoinedAt: now,
	}
	prizePool := 2 * room.EntryFee

	res, err := e.store.JoinRoom(code, player, prizePool, now)
	if err == nil && res != joinResultOK {
		switch res {
		case joinResultFull:
			err = ErrRoomFull
		case joinResultFinished:
			err = ErrGameFinished
		}
	}
	if err != nil {
		if room.EntryFee > 0 {
			if refundErr := e.profiles.Refund(username, room.EntryFee); refundErr != nil {
				log.Printf("failed to refund entry fee for %s: %v", username, refundErr)
			}
		}
		return nil, err
	}

	room.Player2 = player
	room.Status = models.RoomStatusPlaying
	room.PrizePool = prizePool
	room.StartedAt = &now
	room.UpdatedAt = now

	e.broadcast(code, "player_joined", map[string]any{
		"room_code": code,
		"username":  username,
		"status":    room.Status,
	})

	return room, nil
}

// GuessResult is what a player gets back for one submitted guess.
type GuessResult struct {
	Guess      string            `json:"guess"`
	Feedback   []game.Feedback   `json:"feedback"`
	IsCorrect  bool              `json:"is_correct"`
	Status     models.RoomStatus `json:"status"`
	Winner     string            `json:"winner,omitempty"`
	Settlement *MatchSettlement  `json:"settlement,omitempty"`
}

// SubmitGuess evaluates a guess against the opponent's secret, appends it to
// the player's history and, on a correct guess, races to close the room.
// Only the submission that wins the compare-and-set settles the match.
func (e *RoomEngine) SubmitGuess(req *models.SubmitGuessRequest) (*GuessResult, error) {
	code := models.NormalizeRoomCode(req.RoomCode)

	room, err := e.store.GetRoom(code)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)

	var slot models.PlayerSlot
	var opponent *models.RoomPlayer
	switch {
	case strings.EqualFold(room.Player1.Username, username):
		slot = models.SlotPlayer1
		opponent = room.Player2
	case room.Player2 != nil && strings.EqualFold(room.Player2.Username, username):
		slot = models.SlotPlayer2
		opponent = room.Player1
	default:
		return nil, ErrNotAPlayer
	}

	if opponent == nil {
		return nil, ErrOpponentNotJoined
	}
	if room.Status == models.RoomStatusFinished {
		return nil, ErrGameFinished
	}

	guess := game.Normalize(req.Guess, room.Mode)
	if err := game.Validate(guess, room.Mode, room.Language, room.SecretLength); err != nil {
		return nil, err
	}

	feedback := game.Evaluate(guess, opponent.Secret)
	isCorrect := game.AllCorrect(feedback)
	now := e.store.ServerTime()

	entry := &models.GuessEntry{
		Guess:     guess,
		Feedback:  feedback,
		IsCorrect: isCorrect,
		Timestamp: now,
	}
	if err := e.store.AppendRoomGuess(code, slot, entry); err != nil {
		return nil, err
	}

	result := &GuessResult{
		Guess:     guess,
		Feedback:  feedback,
		IsCorrect: isCorrect,
		Status:    room.Status,
	}

	if isCorrect {
		won, err := e.store.FinishRoom(code, username, slot, now)
		if err != nil {
			return nil, err
		}

		result.Status = models.RoomStatusFinished
		if won {
			result.Winner = username

			settlement, err := e.profiles.ApplyMatchResult(username, opponent.Username, room.PrizePool)
			if err != nil {
				log.Printf("failed to settle room %s: %v", code, err)
			} else {
				result.Settlement = settlement
			}
		} else {
			// Lost the race to another correct guess; report the recorded
			// winner instead.
			if finished, err := e.store.GetRoom(code); err == nil {
				result.Winner = finished.Winner
			}
		}
	}

	e.broadcast(code, "guess_submitted", map[string]any{
		"room_code":  code,
		"username":   username,
		"is_correct": isCorrect,
		"status":     result.Status,
		"winner":     result.Winner,
	})

	return result, nil
}

// RoomState is a secret-safe snapshot of a room and both guess histories.
type RoomState struct {
	Room           *models.Room        `json:"room"`
	Player1Guesses []models.GuessEntry `json:"player1_guesses"`
	Player2Guesses []models.GuessEntry `json:"player2_guesses"`
}

// RoomStatus returns the current room with guess histories. Secrets are
// blanked until the room is finished.
func (e *RoomEngine) RoomStatus(roomCode string) (*RoomState, error) {
	code := models.NormalizeRoomCode(roomCode)

	room, err := e.store.GetRoom(code)
	if err != nil {
		return nil, err
	}

	if room.Status != models.RoomStatusFinished {
		if room.Player1 != nil {
			room.Player1.Secret = ""
		}
		if room.Player2 != nil {
			room.Player2.Secret = ""
		}
	}

	p1, err := e.store.RoomGuesses(code, models.SlotPlayer1)
	if err != nil {
		return nil, err
	}
	p2, err := e.store.RoomGuesses(code, models.SlotPlayer2)
	if err != nil {
		return nil, err
	}

	return &RoomState{
		Room:           room,
		Player1Guesses: p1,
		Player2Guesses: p2,
	}, nil
}
