package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Ezo333/Mini-game/internal/config"
	"github.com/Ezo333/Mini-game/internal/models"

	"github.com/redis/go-redis/v9"
)

// Store wraps the Redis connection. Rooms, solo games and profiles are JSON
// documents; guess histories are separate append-only lists so that the Lua
// scripts re-encoding the documents never touch an array (cjson turns an
// empty array into an object on round-trip).
type Store struct {
	client *redis.Client
	ctx    context.Context
}

func NewStore(cfg *config.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &Store{
		client: client,
		ctx:    ctx,
	}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// ServerTime returns Redis server time so every instance stamps documents
// from the same clock. Falls back to local time if the call fails.
func (s *Store) ServerTime() time.Time {
	if t, err := s.client.Time(s.ctx).Result(); err == nil {
		return t
	}
	return time.Now()
}

func stamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// --- Rooms ---

// CreateRoom stores a fresh room document, failing with ErrRoomCodeTaken if
// the generated code is already in use.
func (s *Store) CreateRoom(room *models.Room) error {
	key := fmt.Sprintf(KeyRoom, room.RoomCode)

	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %v", err)
	}

	ok, err := s.client.SetNX(s.ctx, key, data, TTLRoom).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %v", err)
	}
	if !ok {
		return ErrRoomCodeTaken
	}
	return nil
}

func (s *Store) GetRoom(roomCode string) (*models.Room, error) {
	key := fmt.Sprintf(KeyRoom, roomCode)

	data, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %v", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %v", err)
	}
	return &room, nil
}

const (
	joinResultOK = iota
	joinResultFull
	joinResultFinished
)

var joinRoomScript = redis.NewScript(`
	local data = redis.call("GET", KEYS[1])
	if not data then
		return redis.error_reply("room not found")
	end

	local room = cjson.decode(data)

	if room.status == "finished" then
		return 2
	end
	if room.player2 and room.player2 ~= cjson.null then
		return 1
	end

	room.player2 = cjson.decode(ARGV[1])
	room.status = "playing"
	room.prize_pool = tonumber(ARGV[2])
	room.started_at = ARGV[3]
	room.updated_at = ARGV[3]

	redis.call("SET", KEYS[1], cjson.encode(room), "KEEPTTL")
	return 0
`)

// JoinRoom atomically seats the second player and flips the room to playing.
// The slot check runs inside the script so two concurrent joins cannot both
// claim it.
func (s *Store) JoinRoom(roomCode string, player *models.RoomPlayer, prizePool int, now time.Time) (int, error) {
	key := fmt.Sprintf(KeyRoom, roomCode)

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal player: %v", err)
	}

	res, err := joinRoomScript.Run(s.ctx, s.client, []string{key},
		string(playerJSON), prizePool, stamp(now)).Int()
	if err != nil {
		if strings.Contains(err.Error(), "room not found") {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("failed to join room: %v", err)
	}
	return res, nil
}

var finishRoomScript = redis.NewScript(`
	local data = redis.call("GET", KEYS[1])
	if not data then
		return redis.error_reply("room not found")
	end

	local room = cjson.decode(data)

	if room.status == "finished" then
		return 0
	end

	room.status = "finished"
	room.winner = ARGV[1]
	if ARGV[2] == "1" then
		room.player1.correct_guess = true
	else
		room.player2.correct_guess = true
	end
	room.finished_at = ARGV[3]
	room.updated_at = ARGV[3]

	redis.call("SET", KEYS[1], cjson.encode(room), "KEEPTTL")
	return 1
`)

// FinishRoom records the winner with a compare-and-set on the room status.
// Returns true only for the caller that actually flipped the room, so the
// settlement below it runs exactly once no matter how many correct guesses
// land at the same instant.
func (s *Store) FinishRoom(roomCode, winner string, slot models.PlayerSlot, now time.Time) (bool, error) {
	key := fmt.Sprintf(KeyRoom, roomCode)

	res, err := finishRoomScript.Run(s.ctx, s.client, []string{key},
		winner, int(slot), stamp(now)).Int()
	if err != nil {
		if strings.Contains(err.Error(), "room not found") {
			return false, ErrRoomNotFound
		}
		return false, fmt.Errorf("failed to finish room: %v", err)
	}
	return res == 1, nil
}

// AppendRoomGuess pushes a guess onto the player's history list. RPUSH keeps
// submission order even under concurrent writers.
func (s *Store) AppendRoomGuess(roomCode string, slot models.PlayerSlot, entry *models.GuessEntry) error {
	key := fmt.Sprintf(KeyRoomGuesses, roomCode, int(slot))

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal guess: %v", err)
	}

	if err := s.client.RPush(s.ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to append guess: %v", err)
	}
	s.client.Expire(s.ctx, key, TTLRoom)
	return nil
}

func (s *Store) RoomGuesses(roomCode string, slot models.PlayerSlot) ([]models.GuessEntry, error) {
	key := fmt.Sprintf(KeyRoomGuesses, roomCode, int(slot))

	items, err := s.client.LRange(s.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get guesses: %v", err)
	}

	guesses := make([]models.GuessEntry, 0, len(items))
	for _, item := range items {
		var entry models.GuessEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		guesses = append(guesses, entry)
	}
	return guesses, nil
}

// --- Solo games ---

func (s *Store) CreateSoloGame(g *models.SoloGame) error {
	key := fmt.Sprintf(KeySoloGame, g.GameID)

	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal solo game: %v", err)
	}

	if err := s.client.Set(s.ctx, key, data, TTLSoloGame).Err(); err != nil {
		return fmt.Errorf("failed to create solo game: %v", err)
	}

	// Deadline index for the expiry sweeper: score is the wall-clock second
	// the timer runs out.
	deadline := g.StartedAt.Add(time.Duration(g.TimeLimit) * time.Second)
	return s.client.ZAdd(s.ctx, KeySoloDeadlines, redis.Z{
		Score:  float64(deadline.Unix()),
		Member: g.GameID,
	}).Err()
}

func (s *Store) GetSoloGame(gameID string) (*models.SoloGame, error) {
	key := fmt.Sprintf(KeySoloGame, gameID)

	data, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solo game: %v", err)
	}

	var g models.SoloGame
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solo game: %v", err)
	}
	return &g, nil
}

func (s *Store) AppendSoloGuess(gameID string, entry *models.GuessEntry) error {
	key := fmt.Sprintf(KeySoloGuesses, gameID)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal guess: %v", err)
	}

	if err := s.client.RPush(s.ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to append guess: %v", err)
	}
	s.client.Expire(s.ctx, key, TTLSoloGame)
	return nil
}

func (s *Store) SoloGuesses(gameID string) ([]models.GuessEntry, error) {
	key := fmt.Sprintf(KeySoloGuesses, gameID)

	items, err := s.client.LRange(s.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get guesses: %v", err)
	}

	guesses := make([]models.GuessEntry, 0, len(items))
	for _, item := range items {
		var entry models.GuessEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		guesses = append(guesses, entry)
	}
	return guesses, nil
}

func (s *Store) SoloGuessCount(gameID string) (int, error) {
	key := fmt.Sprintf(KeySoloGuesses, gameID)
	n, err := s.client.LLen(s.ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count guesses: %v", err)
	}
	return int(n), nil
}

var finishSoloScript = redis.NewScript(`
	local data = redis.call("GET", KEYS[1])
	if not data then
		return redis.error_reply("game not found")
	end

	local g = cjson.decode(data)

	if g.status == "finished" then
		return 0
	end

	g.status = "finished"
	g.completed = true
	g.won = ARGV[1] == "1"
	g.finished_at = ARGV[2]
	g.updated_at = ARGV[2]

	redis.call("SET", KEYS[1], cjson.encode(g), "KEEPTTL")
	return 1
`)

// FinishSoloGame flips a playing game to finished. Returns false when the
// game was already over.
func (s *Store) FinishSoloGame(gameID string, won bool, now time.Time) (bool, error) {
	key := fmt.Sprintf(KeySoloGame, gameID)

	res, err := finishSoloScript.Run(s.ctx, s.client, []string{key},
		boolArg(won), stamp(now)).Int()
	if err != nil {
		if strings.Contains(err.Error(), "game not found") {
			return false, ErrGameNotFound
		}
		return false, fmt.Errorf("failed to finish solo game: %v", err)
	}
	return res == 1, nil
}

var rewardSoloScript = redis.NewScript(`
	local data = redis.call("GET", KEYS[1])
	if not data then
		return redis.error_reply("game not found")
	end

	local g = cjson.decode(data)

	if g.status ~= "finished" then
		g.status = "finished"
		g.completed = true
		g.won = ARGV[1] == "1"
		g.finished_at = ARGV[2]
	end

	if g.rewarded then
		return {0, g.won and 1 or 0}
	end

	g.rewarded = true
	g.updated_at = ARGV[2]

	redis.call("SET", KEYS[1], cjson.encode(g), "KEEPTTL")
	return {1, g.won and 1 or 0}
`)

// RewardSoloGame finishes the game if it is still open and claims the one
// reward payout. The first return value is true exactly once per game; the
// second is the recorded outcome, which a guess win may already have fixed.
func (s *Store) RewardSoloGame(gameID string, won bool, now time.Time) (claimed, recordedWon bool, err error) {
	key := fmt.Sprintf(KeySoloGame, gameID)

	res, err := rewardSoloScript.Run(s.ctx, s.client, []string{key},
		boolArg(won), stamp(now)).Slice()
	if err != nil {
		if strings.Contains(err.Error(), "game not found") {
			return false, false, ErrGameNotFound
		}
		return false, false, fmt.Errorf("failed to reward solo game: %v", err)
	}
	if len(res) != 2 {
		return false, false, fmt.Errorf("unexpected reward script reply: %v", res)
	}

	claimedN, _ := res[0].(int64)
	wonN, _ := res[1].(int64)
	return claimedN == 1, wonN == 1, nil
}

// ExpiredSoloGames lists game IDs whose deadline passed before the cutoff.
func (s *Store) ExpiredSoloGames(cutoff time.Time) ([]string, error) {
	ids, err := s.client.ZRangeByScore(s.ctx, KeySoloDeadlines, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%d", cutoff.Unix()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list expired games: %v", err)
	}
	return ids, nil
}

func (s *Store) RemoveSoloDeadline(gameID string) error {
	return s.client.ZRem(s.ctx, KeySoloDeadlines, gameID).Err()
}

// --- Profiles ---

func (s *Store) GetProfile(userID string) (*models.UserProfile, error) {
	key := fmt.Sprintf(KeyUser, userID)

	data, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %v", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %v", err)
	}
	return &profile, nil
}

var spendCoinsScript = redis.NewScript(`
	local data = redis.call("GET", KEYS[1])
	local user
	if data then
		user = cjson.decode(data)
	else
		user = cjson.decode(ARGV[3])
	end

	local amount = tonumber(ARGV[1])
	local coins = user.coins or 0
	if coins < amount then
		return redis.error_reply("insufficient coins")
	end

	user.coins = coins - amount
	user.updated_at = ARGV[2]

	redis.call("SET", KEYS[1], cjson.encode(user))
	return user.coins
`)

// SpendCoins debits a profile, creating it with the default balance when the
// user has never been stored. The balance check and the write happen in one
// script so a double spend cannot slip through. Returns the new balance.
func (s *Store) SpendCoins(userID string, amount int, defaultProfile *models.UserProfile, now time.Time) (int, error) {
	key := fmt.Sprintf(KeyUser, userID)

	defaultJSON, err := json.Marshal(defaultProfile)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal profile: %v", err)
	}

	balance, err := spendCoinsScript.Run(s.ctx, s.client, []string{key},
		amount, stamp(now), string(defaultJSON)).Int()
	if err != nil {
		if strings.Contains(err.Error(), "insufficient coins") {
			return 0, ErrInsufficientCoins
		}
		return 0, fmt.Errorf("failed to spend coins: %v", err)
	}
	return balance, nil
}

// CreditDelta is the set of counters a single game settlement adds to a
// profile. NewElo is the absolute post-game rating; pass EloUnchanged to
// leave the rating alone (solo games).
type CreditDelta struct {
	Coins           int
	CoinsEarned     int
	Wins            int
	Losses          int
	GamesPlayed     int
	SoloGamesPlayed int
	SoloWins        int
	NewElo          int
}

const EloUnchanged = -1

var creditProfileScript = redis.NewScript(`
	local data = redis.call("GET", KEYS[1])
	if not data then
		redis.call("SET", KEYS[1], ARGV[1])
		local created = cjson.decode(ARGV[1])
		return created.elo
	end

	local user = cjson.decode(data)

	user.coins = (user.coins or 0) + tonumber(ARGV[2])
	user.total_coins_earned = (user.total_coins_earned or 0) + tonumber(ARGV[3])
	user.wins = (user.wins or 0) + tonumber(ARGV[4])
	user.losses = (user.losses or 0) + tonumber(ARGV[5])
	user.games_played = (user.games_played or 0) + tonumber(ARGV[6])
	user.solo_games_played = (user.solo_games_played or 0) + tonumber(ARGV[7])
	user.solo_wins = (user.solo_wins or 0) + tonumber(ARGV[8])

	local newElo = tonumber(ARGV[9])
	if newElo >= 0 then
		user.elo = newElo
	end
	user.updated_at = ARGV[10]

	redis.call("SET", KEYS[1], cjson.encode(user))
	return user.elo
`)

// CreditProfile applies a settlement to a profile in one atomic script,
// seeding the document from defaultProfile on first contact. Returns the
// profile's rating after the update for the leaderboard index.
func (s *Store) CreditProfile(userID string, delta CreditDelta, defaultProfile *models.UserProfile, now time.Time) (int, error) {
	key := fmt.Sprintf(KeyUser, userID)

	defaultJSON, err := json.Marshal(defaultProfile)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal profile: %v", err)
	}

	elo, err := creditProfileScript.Run(s.ctx, s.client, []string{key},
		string(defaultJSON),
		delta.Coins, delta.CoinsEarned,
		delta.Wins, delta.Losses, delta.GamesPlayed,
		delta.SoloGamesPlayed, delta.SoloWins,
		delta.NewElo, stamp(now)).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to credit profile: %v", err)
	}
	return elo, nil
}

func (s *Store) UpdateLeaderboard(userID string, elo int) error {
	return s.client.ZAdd(s.ctx, KeyLeaderboard, redis.Z{
		Score:  float64(elo),
		Member: userID,
	}).Err()
}

func (s *Store) LeaderboardIDs(limit int64) ([]string, error) {
	ids, err := s.client.ZRevRange(s.ctx, KeyLeaderboard, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %v", err)
	}
	return ids, nil
}

// --- Rate limiting ---

func (s *Store) CheckRateLimit(userID, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, userID, action)

	count, err := s.client.Incr(s.ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %v", err)
	}

	if count == 1 {
		s.client.Expire(s.ctx, key, window)
	}

	return count <= int64(limit), nil
}

// --- Cleanup, used by tests ---

func (s *Store) DeleteRoom(roomCode string) error {
	return s.client.Del(s.ctx,
		fmt.Sprintf(KeyRoom, roomCode),
		fmt.Sprintf(KeyRoomGuesses, roomCode, int(models.SlotPlayer1)),
		fmt.Sprintf(KeyRoomGuesses, roomCode, int(models.SlotPlayer2)),
	).Err()
}

func (s *Store) DeleteSoloGame(gameID string) error {
	s.client.ZRem(s.ctx, KeySoloDeadlines, gameID)
	return s.client.Del(s.ctx,
		fmt.Sprintf(KeySoloGame, gameID),
		fmt.Sprintf(KeySoloGuesses, gameID),
	).Err()
}

func (s *Store) DeleteProfile(userID string) error {
	s.client.ZRem(s.ctx, KeyLeaderboard, userID)
	return s.client.Del(s.ctx, fmt.Sprintf(KeyUser, userID)).Err()
}

func (s *Store) ClearRateLimit(userID, action string) error {
	return s.client.Del(s.ctx, fmt.Sprintf(KeyRateLimit, userID, action)).Err()
}

func boolArg(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
