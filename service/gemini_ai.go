package service

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"github.com/studydrop/studydrop-be/types"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiService implements AIService on top of the Gemini API. Each call
// configures its own model handle since the system instruction and token
// budget vary per task.
type GeminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no Gemini API key provided")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func (s *GeminiService) Complete(ctx context.Context, system, task string, maxTokens int) (string, error) {
	model := s.newModel(system, maxTokens)
	resp, err := model.GenerateContent(ctx, genai.Text(task))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func (s *GeminiService) Chat(ctx context.Context, system string, messages []types.Message, maxTokens int) (string, error) {
	chat, last, err := s.startChat(system, messages, maxTokens)
	if err != nil {
		return "", err
	}
	resp, err := chat.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func (s *GeminiService) ChatStream(ctx context.Context, system string, messages []types.Message, maxTokens int, handler types.StreamHandler) error {
	chat, last, err := s.startChat(system, messages, maxTokens)
	if err != nil {
		return err
	}
	iter := chat.SendMessageStream(ctx, genai.Text(last))
	for {
		resp, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				return nil
			}
			return err
		}
		text, err := responseText(resp)
		if err != nil {
			continue
		}
		if text != "" {
			handler(text)
		}
	}
}

func (s *GeminiService) newModel(system string, maxTokens int) *genai.GenerativeModel {
	model := s.client.GenerativeModel(s.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	model.SetMaxOutputTokens(int32(maxTokens))
	return model
}

// startChat loads all but the last message into the chat history and
// returns the last user message to send.
func (s *GeminiService) startChat(system string, messages []types.Message, maxTokens int) (*genai.ChatSession, string, error) {
	if len(messages) == 0 {
		return nil, "", errors.New("conversation is empty")
	}
	model := s.newModel(system, maxTokens)
	chat := model.StartChat()
	history := make([]*genai.Content, 0, len(messages)-1)
	for _, msg := range messages[:len(messages)-1] {
		role := "user"
		if msg.Role == types.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  role,
		})
	}
	chat.History = history
	return chat, messages[len(messages)-1].Content, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}
	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}
