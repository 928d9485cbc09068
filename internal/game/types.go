package game

import "fmt"

// ValidationError reports malformed or out-of-range player input. It is
// always recoverable and never retried.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type Mode string

const (
	ModeNumber Mode = "number"
	ModeWord   Mode = "word"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNumber, ModeWord:
		return Mode(s), nil
	default:
		return "", ValidationError(fmt.Sprintf("invalid game mode: %q", s))
	}
}

type Language string

const (
	LanguageEN Language = "EN"
	LanguageMN Language = "MN"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEN, LanguageMN:
		return Language(s), nil
	default:
		return "", ValidationError(fmt.Sprintf("invalid language: %q", s))
	}
}

type Feedback string

const (
	FeedbackCorrect       Feedback = "correct"
	FeedbackWrongPosition Feedback = "wrongPosition"
	FeedbackNotInNumber   Feedback = "notInNumber"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", ValidationError(fmt.Sprintf("invalid difficulty: %q", s))
	}
}

// TimeLimit returns the solo time budget in seconds for the difficulty.
func (d Difficulty) TimeLimit() int {
	switch d {
	case DifficultyEasy:
		return 120
	case DifficultyHard:
		return 30
	default:
		return 60
	}
}

const (
	MinSecretLength = 3
	MaxSecretLength = 6
)
