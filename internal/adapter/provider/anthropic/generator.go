// Package anthropic implements the letter text generator on the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// ErrTruncated means the model stopped at the token limit; the letter is incomplete.
var ErrTruncated = errors.New("response truncated at max_tokens")

// messagesAPI is satisfied by *anthropic.MessageService.
type messagesAPI interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Config holds generator settings.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Generator calls Claude to write letters.
type Generator struct {
	messages  messagesAPI
	model     string
	maxTokens int
	log       *slog.Logger
}

// New creates a Generator backed by the Anthropic API. Retries are left to
// the caller so one request maps to one billed attempt.
func New(cfg Config, logger *slog.Logger) *Generator {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	)
	return newGenerator(&client.Messages, cfg, logger)
}

func newGenerator(messages messagesAPI, cfg Config, logger *slog.Logger) *Generator {
	return &Generator{
		messages:  messages,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("provider", "anthropic"),
	}
}

// Generate sends one request. The request's MaxTokens is capped by the
// configured ceiling.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	maxTokens := g.maxTokens
	if req.MaxTokens > 0 && req.MaxTokens < maxTokens {
		maxTokens = req.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := g.messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	content := b.String()

	g.log.DebugContext(ctx, "generation finished",
		slog.String("model", string(msg.Model)),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("elapsed", time.Since(start)),
	)

	if msg.StopReason == anthropic.StopReasonMaxTokens {
		return nil, fmt.Errorf("anthropic messages: %w", ErrTruncated)
	}

	model := string(msg.Model)
	if model == "" {
		model = g.model
	}

	return &domain.GenerationResult{
		Content:   content,
		Model:     model,
		WordCount: domain.CountWords(content),
	}, nil
}
