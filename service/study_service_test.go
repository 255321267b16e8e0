package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studydrop/studydrop-be/types"
)

// stubAI scripts the completion capability per task. It routes on the
// system prompt so one stub can answer all four generation tasks.
type stubAI struct {
	completeFn func(system, task string) (string, error)
	chatFn     func(system string, messages []types.Message) (string, error)
	streamFn   func(ctx context.Context, handler types.StreamHandler) error
}

func (s *stubAI) Complete(ctx context.Context, system, task string, maxTokens int) (string, error) {
	return s.completeFn(system, task)
}

func (s *stubAI) Chat(ctx context.Context, system string, messages []types.Message, maxTokens int) (string, error) {
	return s.chatFn(system, messages)
}

func (s *stubAI) ChatStream(ctx context.Context, system string, messages []types.Message, maxTokens int, handler types.StreamHandler) error {
	return s.streamFn(ctx, handler)
}

func quizJSON(t *testing.T, n int) string {
	t.Helper()
	questions := make([]types.QuizQuestion, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, validQuestion(i))
	}
	data, err := json.Marshal(types.QuizPayload{Questions: questions})
	require.NoError(t, err)
	return string(data)
}

func flashcardsJSON(t *testing.T, n int) string {
	t.Helper()
	cards := make([]types.Flashcard, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, types.Flashcard{ID: i, Front: fmt.Sprintf("f%d", i), Back: fmt.Sprintf("b%d", i)})
	}
	data, err := json.Marshal(types.FlashcardsPayload{Flashcards: cards})
	require.NoError(t, err)
	return string(data)
}

const mindmapJSON = `{"nodes":[
	{"id":"n1","label":"Central","parent_id":null},
	{"id":"n2","label":"Branch","parent_id":"n1"}
]}`

func TestGenerateQuizCount(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		assert.Contains(t, task, "exactly 5 multiple choice questions")
		return quizJSON(t, 5), nil
	}}
	study := NewStudyService(ai)

	questions, err := study.GenerateQuiz(context.Background(), "doc text", 5)
	require.NoError(t, err)
	require.Len(t, questions, 5)
	for i, q := range questions {
		assert.Equal(t, i+1, q.ID)
		labels := make(map[string]bool)
		for _, opt := range q.Options {
			labels[opt.Label] = true
		}
		assert.True(t, labels[q.CorrectLabel])
	}
}

func TestGenerateQuizFencedReply(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		return "```json\n" + quizJSON(t, 2) + "\n```", nil
	}}
	study := NewStudyService(ai)

	questions, err := study.GenerateQuiz(context.Background(), "doc text", 2)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestGenerateQuizMalformedReply(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		return "sorry, I can't do that", nil
	}}
	study := NewStudyService(ai)

	_, err := study.GenerateQuiz(context.Background(), "doc text", 3)
	assert.True(t, errors.Is(err, types.ErrMalformedModelOutput))
}

func TestGenerateQuizProviderFailure(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		return "", errors.New("connection refused")
	}}
	study := NewStudyService(ai)

	_, err := study.GenerateQuiz(context.Background(), "doc text", 3)
	assert.True(t, errors.Is(err, types.ErrGenerationFailed))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerateMindmap(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		return mindmapJSON, nil
	}}
	study := NewStudyService(ai)

	nodes, err := study.GenerateMindmap(context.Background(), "doc text")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Nil(t, nodes[0].ParentID)
	require.NotNil(t, nodes[1].ParentID)
	assert.Equal(t, "n1", *nodes[1].ParentID)
}

func TestGenerateMindmapTwoRootsRejected(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		return `{"nodes":[{"id":"n1","label":"a","parent_id":null},{"id":"n2","label":"b","parent_id":null}]}`, nil
	}}
	study := NewStudyService(ai)

	_, err := study.GenerateMindmap(context.Background(), "doc text")
	assert.True(t, errors.Is(err, types.ErrMalformedModelOutput))
}

func TestGenerateSummaryPassthrough(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		return "A plain prose summary.", nil
	}}
	study := NewStudyService(ai)

	summary, err := study.GenerateSummary(context.Background(), "doc text")
	require.NoError(t, err)
	assert.Equal(t, "A plain prose summary.", summary)
}

func TestGenerateAll(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		switch {
		case strings.Contains(system, "quiz questions"):
			return quizJSON(t, DefaultNumQuestions), nil
		case strings.Contains(system, "flashcards"):
			return flashcardsJSON(t, DefaultNumCards), nil
		case strings.Contains(system, "mind maps"):
			return mindmapJSON, nil
		default:
			return "summary text", nil
		}
	}}
	study := NewStudyService(ai)

	pack, err := study.GenerateAll(context.Background(), "doc-1", "doc text")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", pack.DocID)
	assert.Len(t, pack.Quiz.Questions, DefaultNumQuestions)
	assert.Len(t, pack.Flashcards.Flashcards, DefaultNumCards)
	assert.Len(t, pack.MindMap.Nodes, 2)
	assert.Equal(t, "summary text", pack.Summary.Summary)
}

func TestGenerateAllFailsWhole(t *testing.T) {
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		if strings.Contains(system, "flashcards") {
			return "", errors.New("boom")
		}
		if strings.Contains(system, "quiz questions") {
			return quizJSON(t, DefaultNumQuestions), nil
		}
		return mindmapJSON, nil
	}}
	study := NewStudyService(ai)

	pack, err := study.GenerateAll(context.Background(), "doc-1", "doc text")
	assert.True(t, errors.Is(err, types.ErrGenerationFailed))
	assert.Nil(t, pack, "no partial results on failure")
}

func TestGenerateQuizDefaultCount(t *testing.T) {
	var gotTask string
	ai := &stubAI{completeFn: func(system, task string) (string, error) {
		gotTask = task
		return quizJSON(t, DefaultNumQuestions), nil
	}}
	study := NewStudyService(ai)

	_, err := study.GenerateQuiz(context.Background(), "doc text", 0)
	require.NoError(t, err)
	assert.Contains(t, gotTask, fmt.Sprintf("exactly %d multiple choice questions", DefaultNumQuestions))
}
