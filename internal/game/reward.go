package game

const (
	// SoloParticipationReward is paid for a lost solo game.
	SoloParticipationReward = 10

	// soloGuessBonusCap is the ceiling of the fewer-guesses bonus; each
	// guess taken shaves two coins off it.
	soloGuessBonusCap = 20

	MultiplayerWinReward  = 100
	MultiplayerLossReward = 25
)

var soloBaseRewards = map[Difficulty]int{
	DifficultyEasy:   30,
	DifficultyMedium: 50,
	DifficultyHard:   80,
}

// SoloReward computes the coin payout for a completed solo game.
func SoloReward(won bool, difficulty Difficulty, guessCount, timeRemaining int) int {
	if !won {
		return SoloParticipationReward
	}

	reward, ok := soloBaseRewards[difficulty]
	if !ok {
		reward = soloBaseRewards[DifficultyMedium]
	}

	if bonus := soloGuessBonusCap - guessCount*2; bonus > 0 {
		reward += bonus
	}

	if timeRemaining > 30 {
		reward += 10
	} else if timeRemaining > 15 {
		reward += 5
	}

	return reward
}

// MultiplayerReward is the fixed coin payout for a finished room, win or
// lose. The prize pool, when a room has one, is paid on top of this.
func MultiplayerReward(didWin bool) int {
	if didWin {
		return MultiplayerWinReward
	}
	return MultiplayerLossReward
}
