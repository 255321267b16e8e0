package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydrop/studydrop-be/service"
	"github.com/studydrop/studydrop-be/types"
)

// Stream sentinels the client uses to tell a finished reply apart from one
// that failed partway.
const (
	streamDoneSentinel  = "[DONE]"
	streamErrorSentinel = "[ERROR]"
)

// TutorChat is what the tutor endpoints need from the orchestrator.
type TutorChat interface {
	Chat(ctx context.Context, docText string, messages []types.Message) (string, error)
	ChatStream(ctx context.Context, docText string, messages []types.Message) <-chan types.StreamEvent
}

type TutorHandler struct {
	tutor TutorChat
	store *service.DocumentStore
}

func NewTutorHandler(tutor TutorChat, store *service.DocumentStore) *TutorHandler {
	return &TutorHandler{
		tutor: tutor,
		store: store,
	}
}

// HandleChat waits for the full tutor reply and returns it in one response.
func (h *TutorHandler) HandleChat(c *gin.Context) {
	var req types.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "invalid request body",
		})
		return
	}

	docText, err := h.store.Get(req.DocID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reply, err := h.tutor.Chat(c.Request.Context(), docText, req.Messages)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.TutorResponse{Reply: reply})
}

// HandleChatStream streams the tutor reply as Server-Sent Events. Each
// fragment is flushed as its own event; the stream ends with a [DONE]
// sentinel on success or an [ERROR] sentinel when the provider fails after
// the response has already committed. A client disconnect cancels the
// request context, which stops the producer.
func (h *TutorHandler) HandleChatStream(c *gin.Context) {
	var req types.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "invalid request body",
		})
		return
	}

	docText, err := h.store.Get(req.DocID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	events := h.tutor.ChatStream(ctx, docText, req.Messages)

	for {
		select {
		case <-ctx.Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			switch {
			case event.Err != nil:
				c.SSEvent("message", fmt.Sprintf("%s %v", streamErrorSentinel, event.Err))
				c.Writer.Flush()
				return
			case event.Done:
				c.SSEvent("message", streamDoneSentinel)
				c.Writer.Flush()
				return
			default:
				c.SSEvent("message", event.Fragment)
				c.Writer.Flush()
			}
		}
	}
}
