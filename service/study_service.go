package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/studydrop/studydrop-be/types"
)

const (
	DefaultNumQuestions = 8
	DefaultNumCards     = 15

	// Token budget for generation tasks. Tutor chat uses the smaller
	// budget in TutorService.
	generateMaxTokens = 4096
)

// StudyService turns document text into study materials by prompting the
// completion capability and parsing its replies. It holds no state of its
// own; every call is a single prompt/reply round trip.
type StudyService struct {
	ai AIService
}

func NewStudyService(ai AIService) *StudyService {
	return &StudyService{ai: ai}
}

// generationErr maps any non-parse failure to ErrGenerationFailed while
// keeping the underlying cause visible.
func generationErr(err error) error {
	if errors.Is(err, types.ErrMalformedModelOutput) {
		return err
	}
	return fmt.Errorf("%w: %v", types.ErrGenerationFailed, err)
}

func (s *StudyService) GenerateQuiz(ctx context.Context, text string, numQuestions int) ([]types.QuizQuestion, error) {
	if numQuestions <= 0 {
		numQuestions = DefaultNumQuestions
	}
	system, task := BuildQuizPrompt(text, numQuestions)
	raw, err := s.ai.Complete(ctx, system, task, generateMaxTokens)
	if err != nil {
		return nil, generationErr(err)
	}
	var payload types.QuizPayload
	if err := parseModelJSON(raw, &payload); err != nil {
		return nil, err
	}
	if err := validateQuiz(&payload); err != nil {
		return nil, err
	}
	return payload.Questions, nil
}

func (s *StudyService) GenerateFlashcards(ctx context.Context, text string, numCards int) ([]types.Flashcard, error) {
	if numCards <= 0 {
		numCards = DefaultNumCards
	}
	system, task := BuildFlashcardPrompt(text, numCards)
	raw, err := s.ai.Complete(ctx, system, task, generateMaxTokens)
	if err != nil {
		return nil, generationErr(err)
	}
	var payload types.FlashcardsPayload
	if err := parseModelJSON(raw, &payload); err != nil {
		return nil, err
	}
	if err := validateFlashcards(&payload); err != nil {
		return nil, err
	}
	return payload.Flashcards, nil
}

func (s *StudyService) GenerateMindmap(ctx context.Context, text string) ([]types.MindMapNode, error) {
	system, task := BuildMindmapPrompt(text)
	raw, err := s.ai.Complete(ctx, system, task, generateMaxTokens)
	if err != nil {
		return nil, generationErr(err)
	}
	var payload types.MindMapPayload
	if err := parseModelJSON(raw, &payload); err != nil {
		return nil, err
	}
	if err := validateMindMap(&payload); err != nil {
		return nil, err
	}
	return payload.Nodes, nil
}

// GenerateSummary returns the model reply as-is; the summary task has no
// structured payload to parse.
func (s *StudyService) GenerateSummary(ctx context.Context, text string) (string, error) {
	system, task := BuildSummaryPrompt(text)
	raw, err := s.ai.Complete(ctx, system, task, generateMaxTokens)
	if err != nil {
		return "", generationErr(err)
	}
	return raw, nil
}

// GenerateAll runs the four generation tasks in a fixed sequence and fails
// as a whole on the first sub-task failure; no partial results are
// returned. The sequential order matches the original design; the four
// calls share no state, so parallelizing them is a possible latency
// optimization left for later.
func (s *StudyService) GenerateAll(ctx context.Context, docID, text string) (*types.StudyPackResponse, error) {
	questions, err := s.GenerateQuiz(ctx, text, DefaultNumQuestions)
	if err != nil {
		return nil, err
	}
	cards, err := s.GenerateFlashcards(ctx, text, DefaultNumCards)
	if err != nil {
		return nil, err
	}
	nodes, err := s.GenerateMindmap(ctx, text)
	if err != nil {
		return nil, err
	}
	summary, err := s.GenerateSummary(ctx, text)
	if err != nil {
		return nil, err
	}
	return &types.StudyPackResponse{
		DocID:      docID,
		Quiz:       types.QuizResponse{DocID: docID, Questions: questions},
		Flashcards: types.FlashcardsResponse{DocID: docID, Flashcards: cards},
		MindMap:    types.MindMapResponse{DocID: docID, Nodes: nodes},
		Summary:    types.SummaryResponse{DocID: docID, Summary: summary},
	}, nil
}
