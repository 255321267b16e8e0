package service

import (
	"context"

	"github.com/studydrop/studydrop-be/types"
)

// AIService is the model-completion capability every orchestrator builds
// on. Complete is the single-shot path for generation tasks; Chat and
// ChatStream carry a full conversation for the tutor. maxTokens bounds the
// reply length and differs between generation (4096) and tutoring (1024).
type AIService interface {
	Complete(ctx context.Context, system, task string, maxTokens int) (string, error)
	Chat(ctx context.Context, system string, messages []types.Message, maxTokens int) (string, error)
	ChatStream(ctx context.Context, system string, messages []types.Message, maxTokens int, handler types.StreamHandler) error
}
