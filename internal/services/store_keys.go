package services

import "time"

const (
	KeyRoom        = "room:%s"
	KeyRoomGuesses = "room:%s:guesses:%d"

	KeySoloGame      = "solo:%s"
	KeySoloGuesses   = "solo:%s:guesses"
	KeySoloDeadlines = "solo:deadlines"

	KeyUser        = "user:%s"
	KeyLeaderboard = "leaderboard:elo"
	KeyRateLimit   = "ratelimit:%s:%s"

	TTLRoom     = 7 * 24 * time.Hour
	TTLSoloGame = 24 * time.Hour

	DefaultRateLimitGuesses = 120 // per minute
	DefaultRateLimitCreates = 20  // per minute
)
