package game

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	digitAlphabet = "0123456789"
	enAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Mongolian Cyrillic, including Ё, Ө and Ү.
	mnAlphabet = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯӨҮ"
)

// Normalize brings raw player input into the canonical form secrets are
// stored in: word mode trims, drops internal whitespace and uppercases;
// number mode only trims. Secrets and guesses go through the same
// normalization so they stay comparable.
func Normalize(raw string, mode Mode) string {
	trimmed := strings.TrimSpace(raw)
	if mode != ModeWord {
		return trimmed
	}
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)
	return strings.ToUpper(stripped)
}

// Validate checks a normalized secret or guess against the configured mode,
// language and length. Lengths are counted in runes so Cyrillic words are
// measured correctly.
func Validate(value string, mode Mode, language Language, length int) error {
	runes := []rune(value)
	if len(runes) != length {
		unit := "digits"
		if mode == ModeWord {
			unit = "letters"
		}
		return ValidationError(fmt.Sprintf("must be %d %s", length, unit))
	}

	alphabet, err := AlphabetFor(mode, language)
	if err != nil {
		return err
	}
	for _, r := range runes {
		if !strings.ContainsRune(alphabet, r) {
			if mode == ModeNumber {
				return ValidationError("must contain digits only")
			}
			return ValidationError(fmt.Sprintf("must use %s letters only", languageName(language)))
		}
	}
	return nil
}

// AlphabetFor returns the full character set for a mode/language pair.
func AlphabetFor(mode Mode, language Language) (string, error) {
	switch mode {
	case ModeNumber:
		return digitAlphabet, nil
	case ModeWord:
		switch language {
		case LanguageEN:
			return enAlphabet, nil
		case LanguageMN:
			return mnAlphabet, nil
		default:
			return "", ValidationError(fmt.Sprintf("invalid language: %q", language))
		}
	default:
		return "", ValidationError(fmt.Sprintf("invalid game mode: %q", mode))
	}
}

func languageName(language Language) string {
	if language == LanguageMN {
		return "Mongolian Cyrillic"
	}
	return "English"
}
