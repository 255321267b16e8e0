package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/studydrop/studydrop-be/types"
)

// WebSocketService serves the tutor over a websocket connection as an
// alternative to the SSE endpoint. Each chat frame carries a doc_id and the
// full conversation; the reply streams back as delta frames followed by a
// done frame, or an error frame if the provider fails partway.
type WebSocketService struct {
	tutor    *TutorService
	store    *DocumentStore
	upgrader websocket.Upgrader
}

func NewWebSocketService(tutor *TutorService, store *DocumentStore) *WebSocketService {
	return &WebSocketService{
		tutor: tutor,
		store: store,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleTutor(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			var payload types.WebSocketChatPayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			s.streamReply(ctx, conn, payload)
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong}); err != nil {
				log.Println("Write error:", err)
			}
		default:
			s.writeError(conn, "unknown message type")
		}
	}
}

func (s *WebSocketService) streamReply(ctx context.Context, conn *websocket.Conn, payload types.WebSocketChatPayload) {
	docText, err := s.store.Get(payload.DocID)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	for event := range s.tutor.ChatStream(ctx, docText, payload.Messages) {
		switch {
		case event.Err != nil:
			s.writeError(conn, event.Err.Error())
			return
		case event.Done:
			if err := conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketDone}); err != nil {
				log.Println("Write error:", err)
			}
			return
		default:
			res := types.WebSocketResponse{
				Type:    types.TypeWebsocketDelta,
				Payload: types.WebSocketDeltaPayload{Delta: event.Fragment},
			}
			if err := conn.WriteJSON(res); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	res := types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebSocketErrorPayload{Message: message},
	}
	if err := conn.WriteJSON(res); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		log.Println("Write error:", err)
	}
}
