package services

import (
	"log"
	"strings"

	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/models"
)

// ProfileService owns user profiles, the coin economy and the Elo ladder.
// Profiles are created lazily: reading an unknown user yields the default
// profile without persisting it, the first write stores it.
type ProfileService struct {
	store *Store
}

func NewProfileService(store *Store) *ProfileService {
	return &ProfileService{store: store}
}

// GetProfile resolves a username to its profile. The second return value is
// true when the user has never been stored; the caller gets the defaults a
// first write would create.
func (p *ProfileService) GetProfile(username string) (*models.UserProfile, bool, error) {
	id := models.SanitizeUsername(username)
	if id == "" {
		return nil, false, ErrInvalidUsername
	}

	profile, err := p.store.GetProfile(id)
	if err == ErrUserNotFound {
		now := p.store.ServerTime()
		return models.NewUserProfile(strings.TrimSpace(username), now), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return profile, false, nil
}

// SpendCoins debits a user, lazily creating the profile so a first-time
// player can spend out of the starting balance. Returns the new balance.
func (p *ProfileService) SpendCoins(username string, amount int) (int, error) {
	id := models.SanitizeUsername(username)
	if id == "" {
		return 0, ErrInvalidUsername
	}

	now := p.store.ServerTime()
	seed := models.NewUserProfile(strings.TrimSpace(username), now)
	return p.store.SpendCoins(id, amount, seed, now)
}

// Refund returns coins without counting them as earnings, for entry fees
// taken before a join attempt that then failed.
func (p *ProfileService) Refund(username string, amount int) error {
	return p.credit(username, CreditDelta{Coins: amount, NewElo: EloUnchanged})
}

// MatchSettlement reports the rating movement applied to both sides of a
// finished multiplayer game.
type MatchSettlement struct {
	Winner          string `json:"winner"`
	Loser           string `json:"loser"`
	WinnerEloChange int    `json:"winner_elo_change"`
	LoserEloChange  int    `json:"loser_elo_change"`
	WinnerCoins     int    `json:"winner_coins"`
	LoserCoins      int    `json:"loser_coins"`
}

// ApplyMatchResult settles a multiplayer game: Elo for both players from
// their pre-game ratings, the flat win/loss coin rewards, and the prize pool
// to the winner.
func (p *ProfileService) ApplyMatchResult(winner, loser string, prizePool int) (*MatchSettlement, error) {
	winnerProfile, _, err := p.GetProfile(winner)
	if err != nil {
		return nil, err
	}
	loserProfile, _, err := p.GetProfile(loser)
	if err != nil {
		return nil, err
	}

	winnerDelta := game.EloDelta(winnerProfile.Elo, loserProfile.Elo, true, game.DefaultKFactor)
	loserDelta := game.EloDelta(loserProfile.Elo, winnerProfile.Elo, false, game.DefaultKFactor)

	winnerCoins := game.MultiplayerReward(true) + prizePool
	loserCoins := game.MultiplayerReward(false)

	if err := p.credit(winner, CreditDelta{
		Coins:       winnerCoins,
		CoinsEarned: winnerCoins,
		Wins:        1,
		GamesPlayed: 1,
		NewElo:      game.ApplyEloDelta(winnerProfile.Elo, winnerDelta),
	}); err != nil {
		return nil, err
	}
	if err := p.credit(loser, CreditDelta{
		Coins:       loserCoins,
		CoinsEarned: loserCoins,
		Losses:      1,
		GamesPlayed: 1,
		NewElo:      game.ApplyEloDelta(loserProfile.Elo, loserDelta),
	}); err != nil {
		return nil, err
	}

	return &MatchSettlement{
		Winner:          winner,
		Loser:           loser,
		WinnerEloChange: winnerDelta,
		LoserEloChange:  loserDelta,
		WinnerCoins:     winnerCoins,
		LoserCoins:      loserCoins,
	}, nil
}

// ApplySoloResult credits a completed solo game. Solo play never moves Elo.
func (p *ProfileService) ApplySoloResult(username string, won bool, reward int) error {
	delta := CreditDelta{
		Coins:           reward,
		CoinsEarned:     reward,
		SoloGamesPlayed: 1,
		NewElo:          EloUnchanged,
	}
	if won {
		delta.SoloWins = 1
	}
	return p.credit(username, delta)
}

// Leaderboard returns the top profiles by rating, best first.
func (p *ProfileService) Leaderboard(limit int) ([]*models.UserProfile, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	ids, err := p.store.LeaderboardIDs(int64(limit))
	if err != nil {
		return nil, err
	}

	profiles := make([]*models.UserProfile, 0, len(ids))
	for _, id := range ids {
		profile, err := p.store.GetProfile(id)
		if err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (p *ProfileService) credit(username string, delta CreditDelta) error {
	id := models.SanitizeUsername(username)
	if id == "" {
		return ErrInvalidUsername
	}

	now := p.store.ServerTime()

	// Seed document in case this settlement is the user's first contact:
	// the default profile with this game's result already folded in.
	seed := models.NewUserProfile(strings.TrimSpace(username), now)
	seed.Coins += delta.Coins
	seed.TotalCoinsEarned += delta.CoinsEarned
	seed.Wins += delta.Wins
	seed.Losses += delta.Losses
	seed.GamesPlayed += delta.GamesPlayed
	seed.SoloGamesPlayed += delta.SoloGamesPlayed
	seed.SoloWins += delta.SoloWins
	if delta.NewElo != EloUnchanged {
		seed.Elo = delta.NewElo
	}

	elo, err := p.store.CreditProfile(id, delta, seed, now)
	if err != nil {
		return err
	}

	if err := p.store.UpdateLeaderboard(id, elo); err != nil {
		log.Printf("failed to update leaderboard for %s: %v", id, err)
	}
	return nil
}
