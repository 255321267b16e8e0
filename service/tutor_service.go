package service

import (
	"context"
	"fmt"

	"github.com/studydrop/studydrop-be/types"
)

// Tutor replies are short conversational turns; they get a tighter token
// budget than the generation tasks.
const tutorMaxTokens = 1024

// TutorService answers questions about a document, grounded in its text.
// The caller supplies the full conversation history on every call; the
// service keeps no session state.
type TutorService struct {
	ai AIService
}

func NewTutorService(ai AIService) *TutorService {
	return &TutorService{ai: ai}
}

// Chat returns the full tutor reply in one shot.
func (s *TutorService) Chat(ctx context.Context, docText string, messages []types.Message) (string, error) {
	system := BuildTutorSystemPrompt(docText)
	reply, err := s.ai.Chat(ctx, system, messages, tutorMaxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrGenerationFailed, err)
	}
	return reply, nil
}

// ChatStream produces the tutor reply as a sequence of fragment events on
// the returned channel, terminated by exactly one Done or Err event. The
// channel is closed after the terminal event. The producer stops as soon
// as ctx is cancelled, so a disconnected client never keeps the provider
// stream alive.
func (s *TutorService) ChatStream(ctx context.Context, docText string, messages []types.Message) <-chan types.StreamEvent {
	events := make(chan types.StreamEvent)
	system := BuildTutorSystemPrompt(docText)

	go func() {
		defer close(events)
		err := s.ai.ChatStream(ctx, system, messages, tutorMaxTokens, func(fragment string) {
			select {
			case events <- types.StreamEvent{Fragment: fragment}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			select {
			case events <- types.StreamEvent{Err: fmt.Errorf("%w: %v", types.ErrGenerationFailed, err)}:
			case <-ctx.Done():
			}
			return
		}
		select {
		case events <- types.StreamEvent{Done: true}:
		case <-ctx.Done():
		}
	}()

	return events
}
