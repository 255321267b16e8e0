package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studydrop/studydrop-be/service"
	"github.com/studydrop/studydrop-be/types"
)

// StudyGenerator is what the generate endpoints need from the orchestrator.
type StudyGenerator interface {
	GenerateQuiz(ctx context.Context, text string, numQuestions int) ([]types.QuizQuestion, error)
	GenerateFlashcards(ctx context.Context, text string, numCards int) ([]types.Flashcard, error)
	GenerateMindmap(ctx context.Context, text string) ([]types.MindMapNode, error)
	GenerateSummary(ctx context.Context, text string) (string, error)
	GenerateAll(ctx context.Context, docID, text string) (*types.StudyPackResponse, error)
}

type GenerateHandler struct {
	study StudyGenerator
	store *service.DocumentStore
}

func NewGenerateHandler(study StudyGenerator, store *service.DocumentStore) *GenerateHandler {
	return &GenerateHandler{
		study: study,
		store: store,
	}
}

// docText resolves the doc_id path parameter to stored document text,
// writing the error response itself on a miss.
func (h *GenerateHandler) docText(c *gin.Context) (docID, text string, ok bool) {
	docID = c.Param("doc_id")
	text, err := h.store.Get(docID)
	if err != nil {
		abortWithError(c, err)
		return "", "", false
	}
	return docID, text, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (h *GenerateHandler) HandleQuiz(c *gin.Context) {
	docID, text, ok := h.docText(c)
	if !ok {
		return
	}
	numQuestions := intQuery(c, "num_questions", service.DefaultNumQuestions)

	questions, err := h.study.GenerateQuiz(c.Request.Context(), text, numQuestions)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.QuizResponse{DocID: docID, Questions: questions})
}

func (h *GenerateHandler) HandleFlashcards(c *gin.Context) {
	docID, text, ok := h.docText(c)
	if !ok {
		return
	}
	numCards := intQuery(c, "num_cards", service.DefaultNumCards)

	cards, err := h.study.GenerateFlashcards(c.Request.Context(), text, numCards)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.FlashcardsResponse{DocID: docID, Flashcards: cards})
}

func (h *GenerateHandler) HandleMindmap(c *gin.Context) {
	docID, text, ok := h.docText(c)
	if !ok {
		return
	}
	nodes, err := h.study.GenerateMindmap(c.Request.Context(), text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.MindMapResponse{DocID: docID, Nodes: nodes})
}

func (h *GenerateHandler) HandleSummary(c *gin.Context) {
	docID, text, ok := h.docText(c)
	if !ok {
		return
	}
	summary, err := h.study.GenerateSummary(c.Request.Context(), text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.SummaryResponse{DocID: docID, Summary: summary})
}

// HandleAll generates the full study pack in one request. It fails as a
// whole on the first sub-task failure and returns no partial data.
func (h *GenerateHandler) HandleAll(c *gin.Context) {
	docID, text, ok := h.docText(c)
	if !ok {
		return
	}
	pack, err := h.study.GenerateAll(c.Request.Context(), docID, text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pack)
}
