package game

import "math"

// DefaultKFactor is the Elo K-factor applied to every rated match.
const DefaultKFactor = 32

// DefaultElo is the rating every player starts at.
const DefaultElo = 1500

// EloDelta returns the signed rating change for a player after a match.
func EloDelta(playerElo, opponentElo int, didWin bool, kFactor float64) int {
	expected := 1 / (1 + math.Pow(10, float64(opponentElo-playerElo)/400))
	actual := 0.0
	if didWin {
		actual = 1
	}
	return int(math.Round(kFactor * (actual - expected)))
}

// ApplyEloDelta adds a delta to a rating, flooring the result at zero.
func ApplyEloDelta(elo, delta int) int {
	if next := elo + delta; next > 0 {
		return next
	}
	return 0
}
