package models

import (
	"time"

	"github.com/Ezo333/Mini-game/internal/game"
)

type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"
	RoomStatusPlaying  RoomStatus = "playing"
	RoomStatusFinished RoomStatus = "finished"
)

// Room is the stored two-player match document. Guess histories live in
// separate append-only lists keyed by room code and player slot, so this
// document carries only scalar state.
type Room struct {
	RoomCode     string        `json:"room_code"`
	Status       RoomStatus    `json:"status"`
	Mode         game.Mode     `json:"mode"`
	Language     game.Language `json:"language,omitempty"`
	SecretLength int           `json:"secret_length"`
	EntryFee     int           `json:"entry_fee"`
	PrizePool    int           `json:"prize_pool"`
	Winner       string        `json:"winner,omitempty"`

	Player1 *RoomPlayer `json:"player1"`
	Player2 *RoomPlayer `json:"player2"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// RoomPlayer holds one participant's slot. The secret is pre-normalized at
// registration time and must never be echoed to the opponent while the room
// is unfinished.
type RoomPlayer struct {
	Username     string    `json:"username"`
	Secret       string    `json:"secret"`
	CorrectGuess bool      `json:"correct_guess"`
	JoinedAt     time.Time `json:"joined_at"`
}

// PlayerSlot identifies which side of a room a participant occupies.
type PlayerSlot int

const (
	SlotPlayer1 PlayerSlot = 1
	SlotPlayer2 PlayerSlot = 2
)

// GuessEntry is an append-only record of a single submitted guess.
type GuessEntry struct {
	Guess     string          `json:"guess"`
	Feedback  []game.Feedback `json:"feedback"`
	IsCorrect bool            `json:"is_correct"`
	Timestamp time.Time       `json:"timestamp"`
}
