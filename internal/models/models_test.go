package models_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/models"
)

func TestGenerateRoomCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{4}[0-9]{4}$`)
	for i := 0; i < 50; i++ {
		code := models.GenerateRoomCode()
		if !pattern.MatchString(code) {
			t.Fatalf("room code %q does not match 4 letters + 4 digits", code)
		}
	}
}

func TestNormalizeRoomCode(t *testing.T) {
	if got := models.NormalizeRoomCode(" abcd1234 "); got != "ABCD1234" {
		t.Errorf("NormalizeRoomCode = %q, want ABCD1234", got)
	}
}

func TestSanitizeUsername(t *testing.T) {
	tests := map[string]string{
		"  Alice  ":    "alice",
		"Bob_99":       "bob_99",
		"mr.smith!":    "mrsmith",
		"Über-Gamer":   "ber-gamer",
		"!!!":          "",
		"tester-NAME_": "tester-name_",
	}
	for in, want := range tests {
		if got := models.SanitizeUsername(in); got != want {
			t.Errorf("SanitizeUsername(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateSoloGameID(t *testing.T) {
	a := models.GenerateSoloGameID()
	b := models.GenerateSoloGameID()
	if a == b {
		t.Error("solo game IDs should not repeat")
	}
	if a[:5] != "SOLO_" {
		t.Errorf("solo game ID %q should carry the SOLO_ prefix", a)
	}
}

func TestNewUserProfile(t *testing.T) {
	now := time.Now()
	p := models.NewUserProfile("Alice", now)

	if p.Elo != game.DefaultElo {
		t.Errorf("default elo = %d, want %d", p.Elo, game.DefaultElo)
	}
	if p.Coins != models.StartingCoins {
		t.Errorf("starting coins = %d, want %d", p.Coins, models.StartingCoins)
	}
	if p.WinRate() != 0 {
		t.Errorf("new profile win rate = %f, want 0", p.WinRate())
	}

	p.Wins, p.GamesPlayed = 3, 4
	if p.WinRate() != 75 {
		t.Errorf("win rate = %f, want 75", p.WinRate())
	}
}
