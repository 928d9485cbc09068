package game

// Evaluate scores a guess against a secret and returns one feedback label
// per guess position. Both strings must already be normalized and of equal
// rune length; enforcing that is the caller's job.
//
// The two-pass algorithm is multiset-correct: a secret character can back at
// most one correct or wrongPosition label, so repeated digits/letters in the
// guess are never over-counted.
func Evaluate(guess, secret string) []Feedback {
	guessChars := []rune(guess)
	secretChars := []rune(secret)

	feedback := make([]Feedback, len(guessChars))
	usedSecret := make([]bool, len(secretChars))

	// First pass: exact positional matches.
	for i, ch := range guessChars {
		if i < len(secretChars) && ch == secretChars[i] {
			feedback[i] = FeedbackCorrect
			usedSecret[i] = true
		}
	}

	// Second pass: match the remaining guess characters against unused
	// secret positions, left to right.
	for i, ch := range guessChars {
		if feedback[i] == FeedbackCorrect {
			continue
		}
		feedback[i] = FeedbackNotInNumber
		for j, sc := range secretChars {
			if !usedSecret[j] && sc == ch {
				feedback[i] = FeedbackWrongPosition
				usedSecret[j] = true
				break
			}
		}
	}

	return feedback
}

// AllCorrect reports whether every label is FeedbackCorrect, i.e. the guess
// equals the secret.
func AllCorrect(feedback []Feedback) bool {
	for _, f := range feedback {
		if f != FeedbackCorrect {
			return false
		}
	}
	return len(feedback) > 0
}
