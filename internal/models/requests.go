package models

type GuestLoginRequest struct {
	Username string `json:"username" binding:"required"`
}

type CreateRoomRequest struct {
	Username     string `json:"username" binding:"required"`
	Secret       string `json:"secret" binding:"required"`
	Mode         string `json:"mode" binding:"required"`
	Language     string `json:"language"`
	SecretLength int    `json:"secret_length" binding:"required,min=3,max=6"`
	EntryFee     int    `json:"entry_fee" binding:"omitempty,min=0"`
}

type JoinRoomRequest struct {
	RoomCode     string `json:"room_code" binding:"required"`
	Username     string `json:"username" binding:"required"`
	Secret       string `json:"secret" binding:"required"`
	Mode         string `json:"mode" binding:"required"`
	Language     string `json:"language"`
	SecretLength int    `json:"secret_length" binding:"required,min=3,max=6"`
}

type SubmitGuessRequest struct {
	RoomCode string `json:"room_code" binding:"required"`
	Username string `json:"username" binding:"required"`
	Guess    string `json:"guess" binding:"required"`
}

type CreateSoloGameRequest struct {
	Username     string `json:"username" binding:"required"`
	Mode         string `json:"mode" binding:"required"`
	Language     string `json:"language"`
	SecretLength int    `json:"secret_length" binding:"required,min=3,max=6"`
	Difficulty   string `json:"difficulty"`
}

type SubmitSoloGuessRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Guess  string `json:"guess" binding:"required"`
}

type CompleteSoloGameRequest struct {
	GameID        string `json:"game_id" binding:"required"`
	Won           bool   `json:"won"`
	TimeRemaining int    `json:"time_remaining" binding:"omitempty,min=0"`
}

type SpendCoinsRequest struct {
	Username string `json:"username" binding:"required"`
	Amount   int    `json:"amount" binding:"required,gt=0"`
	Reason   string `json:"reason"`
}
