package game_test

import (
	"reflect"
	"testing"

	"github.com/Ezo333/Mini-game/internal/game"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   []game.Feedback
	}{
		{
			name:   "all correct",
			guess:  "1234",
			secret: "1234",
			want: []game.Feedback{
				game.FeedbackCorrect, game.FeedbackCorrect,
				game.FeedbackCorrect, game.FeedbackCorrect,
			},
		},
		{
			name:   "nothing matches",
			guess:  "5678",
			secret: "1234",
			want: []game.Feedback{
				game.FeedbackNotInNumber, game.FeedbackNotInNumber,
				game.FeedbackNotInNumber, game.FeedbackNotInNumber,
			},
		},
		{
			name:   "duplicate guess digit only counted once",
			guess:  "1123",
			secret: "1234",
			want: []game.Feedback{
				game.FeedbackCorrect, game.FeedbackNotInNumber,
				game.FeedbackWrongPosition, game.FeedbackWrongPosition,
			},
		},
		{
			name:   "all present wrong positions",
			guess:  "4321",
			secret: "1234",
			want: []game.Feedback{
				game.FeedbackWrongPosition, game.FeedbackWrongPosition,
				game.FeedbackWrongPosition, game.FeedbackWrongPosition,
			},
		},
		{
			name:   "repeated secret letters",
			guess:  "LLAMA",
			secret: "HELLO",
			want: []game.Feedback{
				game.FeedbackWrongPosition, game.FeedbackWrongPosition,
				game.FeedbackNotInNumber, game.FeedbackNotInNumber,
				game.FeedbackNotInNumber,
			},
		},
		{
			name:   "cyrillic word",
			guess:  "САРА",
			secret: "САРС",
			want: []game.Feedback{
				game.FeedbackCorrect, game.FeedbackCorrect,
				game.FeedbackCorrect, game.FeedbackNotInNumber,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := game.Evaluate(tt.guess, tt.secret)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.guess, tt.secret, got, tt.want)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first := game.Evaluate("1123", "1234")
	second := game.Evaluate("1123", "1234")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs: %v vs %v", first, second)
	}
}

func TestEvaluateNeverOvercounts(t *testing.T) {
	// One '1' in the secret, three in the guess: at most one non-miss label
	// may be attributed to '1'.
	feedback := game.Evaluate("1117", "1987")
	hits := 0
	for i, f := range feedback[:3] {
		if f != game.FeedbackNotInNumber {
			hits++
			if i != 0 {
				t.Errorf("position %d should not match, got %v", i, f)
			}
		}
	}
	if hits != 1 {
		t.Errorf("expected exactly one label for digit '1', got %d (%v)", hits, feedback)
	}
}

func TestAllCorrect(t *testing.T) {
	if !game.AllCorrect(game.Evaluate("4567", "4567")) {
		t.Error("identical guess and secret should be all correct")
	}
	if game.AllCorrect(game.Evaluate("4561", "4567")) {
		t.Error("near miss should not be all correct")
	}
	if game.AllCorrect(nil) {
		t.Error("empty feedback should not count as a win")
	}
}
