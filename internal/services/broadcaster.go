package services

// Broadcaster pushes room events to connected websocket clients. The engines
// hold it behind this interface so the websocket hub can live in the handler
// layer without an import cycle.
type Broadcaster interface {
	BroadcastRoomEvent(roomCode, event string, payload any)
}
