package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// Client calls an OpenAI-compatible chat-completion service through eino.
// The chat model is constructed lazily on the first call so that a missing
// or malformed credential fails the generation request, not process startup;
// template listing and downloads keep working without a key.
type Client struct {
	cfg entities.LLMConfig

	once    sync.Once
	model   model.ChatModel
	initErr error
}

// NewClient creates a new LLM client from configuration
func NewClient(cfg entities.LLMConfig) *Client {
	return &Client{cfg: cfg}
}

// ensureModel validates the credential and builds the chat model on the
// first call. All reads and writes of the model happen inside or after the
// once.Do, so concurrent first callers never observe a partial write.
func (c *Client) ensureModel(ctx context.Context) (model.ChatModel, error) {
	c.once.Do(func() {
		if c.model != nil {
			return
		}

		key := strings.TrimSpace(c.cfg.APIKey)
		if key == "" {
			c.initErr = entities.ErrMissingAPIKey
			return
		}
		if !strings.HasPrefix(key, "sk-") {
			c.initErr = entities.ErrInvalidAPIKey
			return
		}

		temperature := c.cfg.GetTemperature()
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      key,
			BaseURL:     c.cfg.BaseURL,
			Model:       c.cfg.Model,
			Timeout:     c.cfg.GetTimeout(),
			Temperature: &temperature,
		})
		if err != nil {
			c.initErr = fmt.Errorf("creating chat model: %w", err)
			return
		}
		c.model = chatModel
	})

	if c.initErr != nil {
		return nil, c.initErr
	}
	return c.model, nil
}

// Generate sends a single user message and returns the trimmed completion
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	chatModel, err := c.ensureModel(ctx)
	if err != nil {
		return "", err
	}

	messages := []*schema.Message{
		{Role: schema.User, Content: prompt},
	}

	resp, err := chatModel.Generate(ctx, messages)
	if err != nil {
		return "", &entities.UpstreamError{Body: err.Error()}
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", &entities.UpstreamError{Body: "empty completion"}
	}

	return strings.TrimSpace(resp.Content), nil
}

// Ensure Client implements ports.TextGenerator
var _ ports.TextGenerator = (*Client)(nil)
