package types

// QuizOption is a single answer choice, labeled "A" through "D".
type QuizOption struct {
	Label string `json:"label" validate:"required,len=1"`
	Text  string `json:"text" validate:"required"`
}

type QuizQuestion struct {
	ID           int          `json:"id" validate:"required,min=1"`
	Question     string       `json:"question" validate:"required"`
	Options      []QuizOption `json:"options" validate:"required,len=4,dive"`
	CorrectLabel string       `json:"correct_label" validate:"required,len=1"`
	Explanation  string       `json:"explanation" validate:"required"`
}

type Flashcard struct {
	ID    int    `json:"id" validate:"required,min=1"`
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

// MindMapNode is one node of a hierarchical mind map. The root node has a
// null parent_id; every other node references its parent by id.
type MindMapNode struct {
	ID       string  `json:"id" validate:"required"`
	Label    string  `json:"label" validate:"required"`
	ParentID *string `json:"parent_id"`
}

// Payloads the model is instructed to return for each structured task.

type QuizPayload struct {
	Questions []QuizQuestion `json:"questions" validate:"required,min=1,dive"`
}

type FlashcardsPayload struct {
	Flashcards []Flashcard `json:"flashcards" validate:"required,min=1,dive"`
}

type MindMapPayload struct {
	Nodes []MindMapNode `json:"nodes" validate:"required,min=1,dive"`
}

// Response bodies for the generate endpoints.

type QuizResponse struct {
	DocID     string         `json:"doc_id"`
	Questions []QuizQuestion `json:"questions"`
}

type FlashcardsResponse struct {
	DocID      string      `json:"doc_id"`
	Flashcards []Flashcard `json:"flashcards"`
}

type MindMapResponse struct {
	DocID string        `json:"doc_id"`
	Nodes []MindMapNode `json:"nodes"`
}

type SummaryResponse struct {
	DocID   string `json:"doc_id"`
	Summary string `json:"summary"`
}

// StudyPackResponse aggregates all four generated materials for one document.
type StudyPackResponse struct {
	DocID      string             `json:"doc_id"`
	Quiz       QuizResponse       `json:"quiz"`
	Flashcards FlashcardsResponse `json:"flashcards"`
	MindMap    MindMapResponse    `json:"mindmap"`
	Summary    SummaryResponse    `json:"summary"`
}
