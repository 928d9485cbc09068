package services_test

import (
	"testing"
	"time"

	"github.com/Ezo333/Mini-game/internal/config"
	"github.com/Ezo333/Mini-game/internal/game"
	"github.com/Ezo333/Mini-game/internal/models"
	"github.com/Ezo333/Mini-game/internal/services"
)

func newTestStore(t *testing.T) *services.Store {
	t.Helper()

	cfg := &config.Config{
		RedisURL:  "localhost:6379",
		RedisPass: "",
		RedisDB:   0,
	}

	store, err := services.NewStore(cfg)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStoreRoomLifecycle(t *testing.T) {
	store := newTestStore(t)

	code := "TEST0001"
	store.DeleteRoom(code)
	defer store.DeleteRoom(code)

	now := store.ServerTime()
	room := &models.Room{
		RoomCode:     code,
		Status:       models.RoomStatusWaiting,
		Mode:         game.ModeNumber,
		SecretLength: 4,
		Player1: &models.RoomPlayer{
			Username: "store_alice",
			Secret:   "1234",
			JoinedAt: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.CreateRoom(room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if err := store.CreateRoom(room); err != services.ErrRoomCodeTaken {
		t.Errorf("Duplicate create should fail with ErrRoomCodeTaken, got %v", err)
	}

	got, err := store.GetRoom(code)
	if err != nil {
		t.Fatalf("Failed to get room: %v", err)
	}
	if got.Player1.Secret != "1234" || got.Status != models.RoomStatusWaiting {
		t.Errorf("Room round trip mismatch: %+v", got)
	}

	player2 := &models.RoomPlayer{
		Username: "store_bob",
		Secret:   "5678",
		JoinedAt: now,
	}
	res, err := store.JoinRoom(code, player2, 0, store.ServerTime())
	if err != nil {
		t.Fatalf("Failed to join room: %v", err)
	}
	if res != 0 {
		t.Errorf("First join should seat the player, got result %d", res)
	}

	res, err = store.JoinRoom(code, player2, 0, store.ServerTime())
	if err != nil {
		t.Fatalf("Second join errored: %v", err)
	}
	if res != 1 {
		t.Errorf("Second join should report the room full, got result %d", res)
	}

	entry := &models.GuessEntry{
		Guess:     "5678",
		Feedback:  game.Evaluate("5678", "5678"),
		IsCorrect: true,
		Timestamp: store.ServerTime(),
	}
	if err := store.AppendRoomGuess(code, models.SlotPlayer1, entry); err != nil {
		t.Fatalf("Failed to append guess: %v", err)
	}
	guesses, err := store.RoomGuesses(code, models.SlotPlayer1)
	if err != nil {
		t.Fatalf("Failed to read guesses: %v", err)
	}
	if len(guesses) != 1 || guesses[0].Guess != "5678" || !guesses[0].IsCorrect {
		t.Errorf("Guess history mismatch: %+v", guesses)
	}

	won, err := store.FinishRoom(code, "store_alice", models.SlotPlayer1, store.ServerTime())
	if err != nil {
		t.Fatalf("Failed to finish room: %v", err)
	}
	if !won {
		t.Error("First finish should win the compare-and-set")
	}

	won, err = store.FinishRoom(code, "store_bob", models.SlotPlayer2, store.ServerTime())
	if err != nil {
		t.Fatalf("Second finish errored: %v", err)
	}
	if won {
		t.Error("Second finish must lose the compare-and-set")
	}

	got, err = store.GetRoom(code)
	if err != nil {
		t.Fatalf("Failed to get finished room: %v", err)
	}
	if got.Status != models.RoomStatusFinished || got.Winner != "store_alice" {
		t.Errorf("Finished room mismatch: status=%s winner=%s", got.Status, got.Winner)
	}
	if got.Player1 == nil || !got.Player1.CorrectGuess {
		t.Error("Winner slot should be marked with the correct guess")
	}
}

func TestStoreSoloLifecycle(t *testing.T) {
	store := newTestStore(t)

	gameID := "SOLO_TEST_1"
	store.DeleteSoloGame(gameID)
	defer store.DeleteSoloGame(gameID)

	now := store.ServerTime()
	g := &models.SoloGame{
		GameID:       gameID,
		Username:     "store_carol",
		Mode:         game.ModeNumber,
		SecretLength: 4,
		Difficulty:   game.DifficultyEasy,
		TimeLimit:    120,
		AISecret:     "1234",
		Status:       models.SoloStatusPlaying,
		CreatedAt:    now,
		UpdatedAt:    now,
		StartedAt:    now,
	}

	if err := store.CreateSoloGame(g); err != nil {
		t.Fatalf("Failed to create solo game: %v", err)
	}

	got, err := store.GetSoloGame(gameID)
	if err != nil {
		t.Fatalf("Failed to get solo game: %v", err)
	}
	if got.AISecret != "1234" || got.Status != models.SoloStatusPlaying {
		t.Errorf("Solo game round trip mismatch: %+v", got)
	}

	entry := &models.GuessEntry{
		Guess:     "1243",
		Feedback:  game.Evaluate("1243", "1234"),
		Timestamp: store.ServerTime(),
	}
	if err := store.AppendSoloGuess(gameID, entry); err != nil {
		t.Fatalf("Failed to append guess: %v", err)
	}
	count, err := store.SoloGuessCount(gameID)
	if err != nil {
		t.Fatalf("Failed to count guesses: %v", err)
	}
	if count != 1 {
		t.Errorf("Guess count = %d, want 1", count)
	}

	finished, err := store.FinishSoloGame(gameID, true, store.ServerTime())
	if err != nil {
		t.Fatalf("Failed to finish solo game: %v", err)
	}
	if !finished {
		t.Error("First finish should flip the game")
	}
	finished, err = store.FinishSoloGame(gameID, false, store.ServerTime())
	if err != nil {
		t.Fatalf("Second finish errored: %v", err)
	}
	if finished {
		t.Error("Second finish must be a no-op")
	}

	claimed, won, err := store.RewardSoloGame(gameID, false, store.ServerTime())
	if err != nil {
		t.Fatalf("Failed to claim reward: %v", err)
	}
	if !claimed {
		t.Error("First reward claim should succeed")
	}
	if !won {
		t.Error("Recorded win must survive a later completion claiming a loss")
	}

	claimed, won, err = store.RewardSoloGame(gameID, false, store.ServerTime())
	if err != nil {
		t.Fatalf("Second reward claim errored: %v", err)
	}
	if claimed {
		t.Error("Reward must only be claimable once")
	}
	if !won {
		t.Error("Outcome should stay stable across repeated claims")
	}
}

func TestStoreProfileOperations(t *testing.T) {
	store := newTestStore(t)

	userID := "store_dave"
	store.DeleteProfile(userID)
	defer store.DeleteProfile(userID)

	if _, err := store.GetProfile(userID); err != services.ErrUserNotFound {
		t.Errorf("Missing profile should yield ErrUserNotFound, got %v", err)
	}

	now := store.ServerTime()
	seed := models.NewUserProfile("store_dave", now)

	balance, err := store.SpendCoins(userID, 100, seed, now)
	if err != nil {
		t.Fatalf("Failed to spend coins: %v", err)
	}
	if balance != models.StartingCoins-100 {
		t.Errorf("Balance after spend = %d, want %d", balance, models.StartingCoins-100)
	}

	if _, err := store.SpendCoins(userID, 10000, seed, now); err != services.ErrInsufficientCoins {
		t.Errorf("Overdraft should fail with ErrInsufficientCoins, got %v", err)
	}

	elo, err := store.CreditProfile(userID, services.CreditDelta{
		Coins:       100,
		CoinsEarned: 100,
		Wins:        1,
		GamesPlayed: 1,
		NewElo:      1516,
	}, seed, store.ServerTime())
	if err != nil {
		t.Fatalf("Failed to credit profile: %v", err)
	}
	if elo != 1516 {
		t.Errorf("Credited elo = %d, want 1516", elo)
	}

	profile, err := store.GetProfile(userID)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if profile.Coins != models.StartingCoins || profile.Wins != 1 || profile.Elo != 1516 {
		t.Errorf("Profile after credit mismatch: %+v", profile)
	}

	if err := store.UpdateLeaderboard(userID, elo); err != nil {
		t.Fatalf("Failed to update leaderboard: %v", err)
	}
	ids, err := store.LeaderboardIDs(100)
	if err != nil {
		t.Fatalf("Failed to read leaderboard: %v", err)
	}
	found := false
	for _, id := range ids {
		if id == userID {
			found = true
		}
	}
	if !found {
		t.Error("Credited user should appear on the leaderboard")
	}
}

func TestStoreRateLimit(t *testing.T) {
	store := newTestStore(t)

	userID := "store_rate"
	store.ClearRateLimit(userID, "guess")
	defer store.ClearRateLimit(userID, "guess")

	for i := 0; i < 3; i++ {
		allowed, err := store.CheckRateLimit(userID, "guess", 3, time.Minute)
		if err != nil {
			t.Fatalf("Failed to check rate limit: %v", err)
		}
		if !allowed {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}

	allowed, err := store.CheckRateLimit(userID, "guess", 3, time.Minute)
	if err != nil {
		t.Fatalf("Failed to check rate limit: %v", err)
	}
	if allowed {
		t.Error("Fourth request should be over the limit")
	}
}
