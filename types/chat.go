package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message in the tutor conversation. The client
// resends the full history on every request; no session state is kept here.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TutorRequest struct {
	DocID    string    `json:"doc_id"`
	Messages []Message `json:"messages"`
}

type TutorResponse struct {
	Reply string `json:"reply"`
}
