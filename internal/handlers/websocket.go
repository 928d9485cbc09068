package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler pushes room events to spectating or waiting clients. A
// client subscribes to room codes and receives every event broadcast for
// them. It satisfies services.Broadcaster.
type WebSocketHandler struct {
	hub *WebSocketHub
}

type WebSocketHub struct {
	// rooms maps a room code to the connections watching it.
	rooms      map[string]map[*websocket.Conn]bool
	register   chan *Client
	unregister chan *Client
	subscribe  chan *subscription
	broadcast  chan *Message
}

type Client struct {
	Username string
	Conn     *websocket.Conn
}

type subscription struct {
	conn     *websocket.Conn
	roomCode string
	leave    bool
}

type Message struct {
	Type     string      `json:"type"`
	RoomCode string      `json:"room_code,omitempty"`
	Data     interface{} `json:"data"`
}

func NewWebSocketHandler() *WebSocketHandler {
	hub := &WebSocketHub{
		rooms:      make(map[string]map[*websocket.Conn]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		subscribe:  make(chan *subscription),
		broadcast:  make(chan *Message, 100),
	}

	go hub.run()

	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	username := c.GetString("username")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	client := &Client{
		Username: username,
		Conn:     conn,
	}

	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		h.handleMessage(client, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(client *Client, msg *Message) {
	switch msg.Type {
	case "PING":
		h.sendPong(client)
	case "SUBSCRIBE_ROOM":
		if roomCode, ok := msg.Data.(string); ok {
			h.hub.subscribe <- &subscription{conn: client.Conn, roomCode: roomCode}
		}
	case "UNSUBSCRIBE_ROOM":
		if roomCode, ok := msg.Data.(string); ok {
			h.hub.subscribe <- &subscription{conn: client.Conn, roomCode: roomCode, leave: true}
		}
	}
}

func (h *WebSocketHandler) sendPong(client *Client) {
	msg := Message{
		Type: "PONG",
		Data: gin.H{
			"timestamp": time.Now().Unix(),
		},
	}

	client.Conn.WriteJSON(msg)
}

// BroadcastRoomEvent implements services.Broadcaster.
func (h *WebSocketHandler) BroadcastRoomEvent(roomCode, event string, payload any) {
	msg := &Message{
		Type:     event,
		RoomCode: roomCode,
		Data:     payload,
	}

	select {
	case h.hub.broadcast <- msg:
	default:
		log.Printf("Dropping room event %s for %s: broadcast queue full", event, roomCode)
	}
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			log.Printf("Client connected: %s", client.Username)

		case client := <-hub.unregister:
			for code, conns := range hub.rooms {
				if conns[client.Conn] {
					delete(conns, client.Conn)
					if len(conns) == 0 {
						delete(hub.rooms, code)
					}
				}
			}
			log.Printf("Client disconnected: %s", client.Username)

		case sub := <-hub.subscribe:
			if sub.leave {
				if conns, ok := hub.rooms[sub.roomCode]; ok {
					delete(conns, sub.conn)
					if len(conns) == 0 {
						delete(hub.rooms, sub.roomCode)
					}
				}
				continue
			}
			if hub.rooms[sub.roomCode] == nil {
				hub.rooms[sub.roomCode] = make(map[*websocket.Conn]bool)
			}
			hub.rooms[sub.roomCode][sub.conn] = true

		case message := <-hub.broadcast:
			for conn := range hub.rooms[message.RoomCode] {
				conn.WriteJSON(message)
			}
		}
	}
}
