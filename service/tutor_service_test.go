package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studydrop/studydrop-be/types"
)

func collectEvents(t *testing.T, events <-chan types.StreamEvent) []types.StreamEvent {
	t.Helper()
	var out []types.StreamEvent
	timeout := time.After(2 * time.Second)
	for {
		select {
		case event, open := <-events:
			if !open {
				return out
			}
			out = append(out, event)
		case <-timeout:
			t.Fatal("stream did not terminate")
		}
	}
}

func TestTutorChat(t *testing.T) {
	ai := &stubAI{chatFn: func(system string, messages []types.Message) (string, error) {
		assert.Contains(t, system, "DOCUMENT CONTENT:\nthe doc text")
		require.Len(t, messages, 1)
		return "a grounded reply", nil
	}}
	tutor := NewTutorService(ai)

	reply, err := tutor.Chat(context.Background(), "the doc text", []types.Message{
		{Role: types.RoleUser, Content: "what is this about?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a grounded reply", reply)
}

func TestTutorChatProviderFailure(t *testing.T) {
	ai := &stubAI{chatFn: func(system string, messages []types.Message) (string, error) {
		return "", errors.New("timeout")
	}}
	tutor := NewTutorService(ai)

	_, err := tutor.Chat(context.Background(), "doc", nil)
	assert.True(t, errors.Is(err, types.ErrGenerationFailed))
}

func TestTutorChatStreamOrderedFragmentsThenDone(t *testing.T) {
	ai := &stubAI{streamFn: func(ctx context.Context, handler types.StreamHandler) error {
		handler("Hel")
		handler("lo")
		return nil
	}}
	tutor := NewTutorService(ai)

	events := collectEvents(t, tutor.ChatStream(context.Background(), "doc", nil))
	require.Len(t, events, 3)
	assert.Equal(t, "Hel", events[0].Fragment)
	assert.Equal(t, "lo", events[1].Fragment)
	assert.True(t, events[2].Done)
	assert.NoError(t, events[2].Err)
}

func TestTutorChatStreamMidStreamFailure(t *testing.T) {
	ai := &stubAI{streamFn: func(ctx context.Context, handler types.StreamHandler) error {
		handler("Hel")
		return errors.New("connection reset")
	}}
	tutor := NewTutorService(ai)

	events := collectEvents(t, tutor.ChatStream(context.Background(), "doc", nil))
	require.Len(t, events, 2)
	assert.Equal(t, "Hel", events[0].Fragment)
	require.Error(t, events[1].Err, "failure must surface as an error event, never a silent truncation")
	assert.True(t, errors.Is(events[1].Err, types.ErrGenerationFailed))
	assert.False(t, events[1].Done)
}

func TestTutorChatStreamCancelledConsumer(t *testing.T) {
	started := make(chan struct{})
	ai := &stubAI{streamFn: func(ctx context.Context, handler types.StreamHandler) error {
		close(started)
		handler("fragment the consumer never reads")
		<-ctx.Done()
		return ctx.Err()
	}}
	tutor := NewTutorService(ai)

	ctx, cancel := context.WithCancel(context.Background())
	events := tutor.ChatStream(ctx, "doc", nil)
	<-started
	cancel()

	// The producer must unblock and close the channel once the context is
	// cancelled, even with no consumer draining it.
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, open := <-events:
			if !open {
				return
			}
		case <-timeout:
			t.Fatal("producer leaked after cancellation")
		}
	}
}
