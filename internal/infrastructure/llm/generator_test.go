package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeChatModel struct {
	reply    *schema.Message
	err      error
	received []*schema.Message
	deadline bool
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.received = input
	_, f.deadline = ctx.Deadline()
	return f.reply, f.err
}

func TestEinoGenerator_Complete(t *testing.T) {
	t.Run("sends system and user messages", func(t *testing.T) {
		fake := &fakeChatModel{reply: schema.AssistantMessage("```markdown\n## Report\nGreen\n```", nil)}
		g := newEinoGenerator(fake, WithTimeout(time.Minute))

		out, err := g.Complete(context.Background(), "You are an analyst", "Company: AAPL")

		require.NoError(t, err)
		assert.Equal(t, "## Report\nGreen", out)
		require.Len(t, fake.received, 2)
		assert.Equal(t, schema.System, fake.received[0].Role)
		assert.Equal(t, schema.User, fake.received[1].Role)
		assert.Equal(t, "Company: AAPL", fake.received[1].Content)
		assert.True(t, fake.deadline)
	})

	t.Run("omits blank system message", func(t *testing.T) {
		fake := &fakeChatModel{reply: schema.AssistantMessage("ok", nil)}
		g := newEinoGenerator(fake)

		_, err := g.Complete(context.Background(), " ", "prompt")
		require.NoError(t, err)
		require.Len(t, fake.received, 1)
		assert.False(t, fake.deadline)
	})

	t.Run("wraps model errors", func(t *testing.T) {
		fake := &fakeChatModel{err: errors.New("429 too many requests")}
		g := newEinoGenerator(fake)

		_, err := g.Complete(context.Background(), "s", "u")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("empty completion", func(t *testing.T) {
		fake := &fakeChatModel{reply: schema.AssistantMessage("  ```\n```  ", nil)}
		g := newEinoGenerator(fake)

		_, err := g.Complete(context.Background(), "s", "u")
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("limiter honours context cancellation", func(t *testing.T) {
		fake := &fakeChatModel{reply: schema.AssistantMessage("ok", nil)}
		limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
		g := newEinoGenerator(fake, WithLimiter(limiter))

		_, err := g.Complete(context.Background(), "s", "u")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = g.Complete(ctx, "s", "u")
		assert.Error(t, err)
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  text  ", "text"},
		{"fenced with language", "```md\nbody\n```", "body"},
		{"fenced without language", "```\nbody\n```\n", "body"},
		{"single line fence", "```body```", "body"},
		{"inner fence kept", "intro\n```go\nx\n```", "intro\n```go\nx\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}
