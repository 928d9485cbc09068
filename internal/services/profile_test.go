package services_test

import (
	"testing"

	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/models"
	"github.com/Ezo333/Mini-game/internal/services"
)

func TestProfileServiceLazyCreation(t *testing.T) {
	store := newTestStore(t)
	profiles := services.NewProfileService(store)

	store.DeleteProfile("profile_new")
	defer store.DeleteProfile("profile_new")

	profile, isNew, err := profiles.GetProfile("Profile_New")
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if !isNew {
		t.Error("Unknown user should be reported as new")
	}
	if profile.Coins != models.StartingCoins || profile.Elo != game.DefaultElo {
		t.Errorf("Default profile mismatch: %+v", profile)
	}

	// Reading must not persist anything.
	_, isNew, err = profiles.GetProfile("Profile_New")
	if err != nil {
		t.Fatalf("Failed to re-read profile: %v", err)
	}
	if !isNew {
		t.Error("Read alone must not create the profile")
	}

	if _, _, err := profiles.GetProfile("!!!"); err != services.ErrInvalidUsername {
		t.Errorf("Unusable username should fail with ErrInvalidUsername, got %v", err)
	}
}

func TestProfileServiceSpend(t *testing.T) {
	store := newTestStore(t)
	profiles := services.NewProfileService(store)

	store.DeleteProfile("profile_spender")
	defer store.DeleteProfile("profile_spender")

	balance, err := profiles.SpendCoins("Profile_Spender", 200)
	if err != nil {
		t.Fatalf("Failed to spend from fresh profile: %v", err)
	}
	if balance != models.StartingCoins-200 {
		t.Errorf("Balance = %d, want %d", balance, models.StartingCoins-200)
	}

	if _, err := profiles.SpendCoins("Profile_Spender", 400); err != services.ErrInsufficientCoins {
		t.Errorf("Overdraft should fail with ErrInsufficientCoins, got %v", err)
	}

	// The spend should have persisted the profile.
	profile, isNew, err := profiles.GetProfile("profile_spender")
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if isNew {
		t.Error("Spending should create the profile")
	}
	if profile.Coins != models.StartingCoins-200 {
		t.Errorf("Persisted balance = %d, want %d", profile.Coins, models.StartingCoins-200)
	}
}

func TestProfileServiceRefundDoesNotCountAsEarnings(t *testing.T) {
	store := newTestStore(t)
	profiles := services.NewProfileService(store)

	store.DeleteProfile("profile_refund")
	defer store.DeleteProfile("profile_refund")

	if _, err := profiles.SpendCoins("profile_refund", 50); err != nil {
		t.Fatalf("Failed to spend: %v", err)
	}
	if err := profiles.Refund("profile_refund", 50); err != nil {
		t.Fatalf("Failed to refund: %v", err)
	}

	profile, _, err := profiles.GetProfile("profile_refund")
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if profile.Coins != models.StartingCoins {
		t.Errorf("Balance after refund = %d, want %d", profile.Coins, models.StartingCoins)
	}
	if profile.TotalCoinsEarned != 0 {
		t.Errorf("Refund must not count as earnings, got %d", profile.TotalCoinsEarned)
	}
}

func TestProfileServiceMatchSettlement(t *testing.T) {
	store := newTestStore(t)
	profiles := services.NewProfileService(store)

	store.DeleteProfile("match_winner")
	store.DeleteProfile("match_loser")
	defer store.DeleteProfile("match_winner")
	defer store.DeleteProfile("match_loser")

	settlement, err := profiles.ApplyMatchResult("match_winner", "match_loser", 0)
	if err != nil {
		t.Fatalf("Failed to apply match result: %v", err)
	}
	if settlement.WinnerEloChange != 16 || settlement.LoserEloChange != -16 {
		t.Errorf("Elo changes = %d/%d, want 16/-16",
			settlement.WinnerEloChange, settlement.LoserEloChange)
	}
	if settlement.WinnerCoins != game.MultiplayerWinReward {
		t.Errorf("Winner coins = %d, want %d", settlement.WinnerCoins, game.MultiplayerWinReward)
	}

	winner, _, err := profiles.GetProfile("match_winner")
	if err != nil {
		t.Fatalf("Failed to get winner: %v", err)
	}
	if winner.Elo != 1516 || winner.Wins != 1 || winner.GamesPlayed != 1 {
		t.Errorf("Winner profile mismatch: %+v", winner)
	}
	if winner.TotalCoinsEarned != game.MultiplayerWinReward {
		t.Errorf("Winner earnings = %d, want %d", winner.TotalCoinsEarned, game.MultiplayerWinReward)
	}

	loser, _, err := profiles.GetProfile("match_loser")
	if err != nil {
		t.Fatalf("Failed to get loser: %v", err)
	}
	if loser.Elo != 1484 || loser.Losses != 1 {
		t.Errorf("Loser profile mismatch: %+v", loser)
	}
	if loser.Coins != models.StartingCoins+game.MultiplayerLossReward {
		t.Errorf("Loser coins = %d, want %d", loser.Coins, models.StartingCoins+game.MultiplayerLossReward)
	}
}

func TestProfileServiceLeaderboard(t *testing.T) {
	store := newTestStore(t)
	profiles := services.NewProfileService(store)

	store.DeleteProfile("board_winner")
	store.DeleteProfile("board_loser")
	defer store.DeleteProfile("board_winner")
	defer store.DeleteProfile("board_loser")

	if _, err := profiles.ApplyMatchResult("board_winner", "board_loser", 0); err != nil {
		t.Fatalf("Failed to apply match result: %v", err)
	}

	board, err := profiles.Leaderboard(100)
	if err != nil {
		t.Fatalf("Failed to read leaderboard: %v", err)
	}

	winnerRank, loserRank := -1, -1
	for i, p := range board {
		switch models.SanitizeUsername(p.Username) {
		case "board_winner":
			winnerRank = i
		case "board_loser":
			loserRank = i
		}
	}
	if winnerRank == -1 || loserRank == -1 {
		t.Fatal("Both players should appear on the leaderboard")
	}
	if winnerRank > loserRank {
		t.Error("Winner should rank above loser")
	}
}
