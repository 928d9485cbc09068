package words_test

import (
	"testing"

	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/words"
)

func TestLookup(t *testing.T) {
	for _, length := range []int{4, 5, 6} {
		word, ok := words.Lookup(game.LanguageEN, length)
		if !ok {
			t.Fatalf("no EN table for length %d", length)
		}
		if err := game.Validate(word, game.ModeWord, game.LanguageEN, length); err != nil {
			t.Errorf("table word %q invalid for length %d: %v", word, length, err)
		}
	}
}

func TestLookupMisses(t *testing.T) {
	if _, ok := words.Lookup(game.LanguageEN, 3); ok {
		t.Error("expected no EN table for length 3")
	}
	if _, ok := words.Lookup(game.LanguageMN, 5); ok {
		t.Error("expected no MN table")
	}
}
