package models

import (
	"time"

	"github.com/Ezo333/Mini-game/internal/game"
)

type SoloStatus string

const (
	SoloStatusPlaying  SoloStatus = "playing"
	SoloStatusFinished SoloStatus = "finished"
)

// SoloGame is the stored single-player session document. AISecret is only
// ever server-side; responses omit it until the game is finished. Guess
// history lives in a separate append-only list.
type SoloGame struct {
	GameID       string          `json:"game_id"`
	Username     string          `json:"username"`
	Mode         game.Mode       `json:"mode"`
	Language     game.Language   `json:"language,omitempty"`
	SecretLength int             `json:"secret_length"`
	Difficulty   game.Difficulty `json:"difficulty"`
	TimeLimit    int             `json:"time_limit"`
	AISecret     string          `json:"ai_secret"`

	Status    SoloStatus `json:"status"`
	Completed bool       `json:"completed"`
	// Rewarded flips exactly once, when coins for this game are paid out.
	Rewarded bool `json:"rewarded"`
	Won      bool `json:"won"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
