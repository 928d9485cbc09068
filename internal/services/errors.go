package services

import "errors"

// Sentinel errors returned by the engines. Handlers map these onto HTTP
// status codes; everything else surfaces as an internal error.
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomCodeTaken     = errors.New("room code already taken")
	ErrRoomFull          = errors.New("room is full")
	ErrGameFinished      = errors.New("game already finished")
	ErrUsernameConflict  = errors.New("username already taken in this room")
	ErrSettingsMismatch  = errors.New("settings do not match room configuration")
	ErrNotAPlayer        = errors.New("not a player in this room")
	ErrOpponentNotJoined = errors.New("opponent has not joined yet")

	ErrGameNotFound      = errors.New("game not found")
	ErrGameNotInProgress = errors.New("game not in progress")

	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrInvalidUsername   = errors.New("invalid username")
)
