package game

import (
	"crypto/rand"
	"fmt"
)

// RandomSecret draws a uniform random secret of the given length over the
// alphabet for the mode/language pair.
func RandomSecret(mode Mode, language Language, length int) (string, error) {
	alphabet, err := AlphabetFor(mode, language)
	if err != nil {
		return "", err
	}
	if length < MinSecretLength || length > MaxSecretLength {
		return "", ValidationError(fmt.Sprintf("secret length must be between %d and %d", MinSecretLength, MaxSecretLength))
	}

	runes := []rune(alphabet)
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %v", err)
	}

	out := make([]rune, length)
	for i, b := range buf {
		out[i] = runes[int(b)%len(runes)]
	}
	return string(out), nil
}
