package models

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	roomCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	roomCodeDigits  = "0123456789"
)

// GenerateRoomCode returns a fresh room code: 4 random uppercase letters
// followed by 4 random digits. Uniqueness is enforced at the storage layer;
// the caller retries on collision.
func GenerateRoomCode() string {
	var b [8]byte
	_, _ = rand.Read(b[:])

	code := make([]byte, 8)
	for i := 0; i < 4; i++ {
		code[i] = roomCodeLetters[int(b[i])%len(roomCodeLetters)]
	}
	for i := 4; i < 8; i++ {
		code[i] = roomCodeDigits[int(b[i])%len(roomCodeDigits)]
	}
	return string(code)
}

// NormalizeRoomCode uppercases a submitted code so lookups are
// case-insensitive.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func GenerateSoloGameID() string {
	return fmt.Sprintf("SOLO_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

// SanitizeUsername derives the storage key for a username: lowercased,
// trimmed, everything outside [a-z0-9_-] stripped. Returns "" for usernames
// with no usable characters.
func SanitizeUsername(username string) string {
	lowered := strings.ToLower(strings.TrimSpace(username))
	var sb strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
