// internal/genai/client.go
package genai

import (
	"context"
	stderrors "errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"listing-summary/internal/common/errors"
	"listing-summary/internal/common/logger"
)

type Config struct {
	APIKey  string
	BaseURL string // override for tests and proxies; empty means the provider default
	Model   string
	Timeout time.Duration
}

// Client sends a prompt as a single user-role message to the
// chat-completion provider and returns the completion text verbatim.
// No streaming, no retries, no sampling parameters beyond the model.
type Client struct {
	api    *openai.Client
	config *Config
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	apiConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		apiConfig.BaseURL = config.BaseURL
	}

	return &Client{
		api:    openai.NewClientWithConfig(apiConfig),
		config: config,
		logger: log.With(map[string]interface{}{
			"component": "genai",
			"model":     config.Model,
		}),
	}
}

// Complete runs one chat completion for the prompt. Failures propagate
// to the caller; the request boundary decides what to render.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.NewGenerationTimeoutError(c.config.Model)
		}
		return "", errors.NewGenerationFailedError(c.config.Model, err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.NewGenerationFailedError(c.config.Model, errNoChoices)
	}

	return resp.Choices[0].Message.Content, nil
}

var errNoChoices = stderrors.New("completion returned no choices")
