package types

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketChat  = "chat"
	TypeWebsocketDelta = "delta"
	TypeWebsocketDone  = "done"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketChatPayload struct {
	DocID    string    `json:"doc_id"`
	Messages []Message `json:"messages"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type WebSocketDeltaPayload struct {
	Delta string `json:"delta"`
}

type WebSocketErrorPayload struct {
	Message string `json:"message"`
}

// StreamHandler receives one reply fragment at a time from a streaming
// completion call.
type StreamHandler func(fragment string)

// StreamEvent is one unit of a tutor reply stream. A stream is a finite
// sequence of fragment events followed by exactly one terminal event:
// Done on success, or Err set when the provider failed partway. The channel
// is closed after the terminal event, so a consumer can always tell "done"
// apart from "failed mid-stream".
type StreamEvent struct {
	Fragment string
	Done     bool
	Err      error
}
