package models

import (
	"time"

	"github.com/Ezo333/Mini-game/internal/game"
)

// StartingCoins is the balance granted when a profile is created lazily on
// first game completion or coin spend.
const StartingCoins = 500

// UserProfile is keyed in storage by the sanitized username; Username keeps
// the original casing for display.
type UserProfile struct {
	Username string `json:"username"`
	Elo      int    `json:"elo"`

	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	GamesPlayed int `json:"games_played"`

	Coins            int `json:"coins"`
	TotalCoinsEarned int `json:"total_coins_earned"`

	SoloGamesPlayed int `json:"solo_games_played"`
	SoloWins        int `json:"solo_wins"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserProfile returns the default profile a first-time player starts with.
func NewUserProfile(username string, now time.Time) *UserProfile {
	return &UserProfile{
		Username:  username,
		Elo:       game.DefaultElo,
		Coins:     StartingCoins,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WinRate returns the multiplayer win percentage, 0 when no games played.
func (p *UserProfile) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.GamesPlayed) * 100
}
