package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned when no Google API key is configured.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY is required")

// Client implements llm.Client against the Gemini API.
type Client struct {
	models *genai.Models
	model  string
}

// New constructs a Gemini client for model.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	return newClient(ctx, apiKey, model, genai.HTTPOptions{})
}

func newClient(ctx context.Context, apiKey, model string, httpOptions genai.HTTPOptions) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{models: client.Models, model: model}, nil
}

// Generate sends the prompt as a single user turn and returns the reply text.
// A reply without text yields "" and no error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return result.Text(), nil
}
