// Package llm produces report text through an OpenAI-compatible chat model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/stockie/backend/internal/infrastructure/config"
)

// ErrEmptyCompletion is returned when the model answers with no content
var ErrEmptyCompletion = errors.New("llm: empty completion")

// Generator turns a system instruction and a user prompt into text
type Generator interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// chatModel is the subset of eino's chat model used here
type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// EinoGenerator implements Generator on an eino chat model with a
// requests-per-minute limiter and a per-call timeout
type EinoGenerator struct {
	model   chatModel
	limiter *rate.Limiter
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures an EinoGenerator
type Option func(*EinoGenerator)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(g *EinoGenerator) {
		g.logger = logger
	}
}

// WithLimiter replaces the default limiter
func WithLimiter(limiter *rate.Limiter) Option {
	return func(g *EinoGenerator) {
		g.limiter = limiter
	}
}

// WithTimeout sets the per-call timeout; zero disables it
func WithTimeout(timeout time.Duration) Option {
	return func(g *EinoGenerator) {
		g.timeout = timeout
	}
}

// NewEinoGenerator builds an OpenAI-compatible chat model from cfg
func NewEinoGenerator(ctx context.Context, cfg config.LLMConfig, opts ...Option) (*EinoGenerator, error) {
	modelCfg := &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}
	if cfg.MaxTokens > 0 {
		maxTokens := cfg.MaxTokens
		modelCfg.MaxTokens = &maxTokens
	}
	if cfg.Temperature > 0 {
		temperature := cfg.Temperature
		modelCfg.Temperature = &temperature
	}

	cm, err := openai.NewChatModel(ctx, modelCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}
	base := []Option{
		WithLimiter(rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)),
		WithTimeout(cfg.Timeout),
	}
	return newEinoGenerator(cm, append(base, opts...)...), nil
}

func newEinoGenerator(cm chatModel, opts ...Option) *EinoGenerator {
	g := &EinoGenerator{
		model:   cm,
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete sends one chat request. Failures are returned as-is; there is no retry.
func (g *EinoGenerator) Complete(ctx context.Context, system, user string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("llm rate limit: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	messages := make([]*schema.Message, 0, 2)
	if strings.TrimSpace(system) != "" {
		messages = append(messages, schema.SystemMessage(system))
	}
	messages = append(messages, schema.UserMessage(user))

	start := time.Now()
	resp, err := g.model.Generate(ctx, messages)
	if err != nil {
		g.logger.Warn("chat completion failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return "", fmt.Errorf("chat completion: %w", err)
	}

	content := StripCodeFence(resp.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	fields := []zap.Field{
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("prompt_chars", len(user)),
		zap.Int("completion_chars", len(content)),
	}
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		fields = append(fields,
			zap.Int("prompt_tokens", resp.ResponseMeta.Usage.PromptTokens),
			zap.Int("completion_tokens", resp.ResponseMeta.Usage.CompletionTokens),
		)
	}
	g.logger.Debug("chat completion", fields...)

	return content, nil
}

// StripCodeFence removes a markdown code fence wrapping the whole text
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

var _ Generator = (*EinoGenerator)(nil)
