package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"deal_factory/internal/domain"
	"deal_factory/pkg/errcodes"
)

const DefaultModel = "gemini-2.0-flash"

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string // пусто - публичный endpoint Gemini API
	Temperature float32
}

// Client пересылает промпт в Gemini и возвращает текст ответа.
type Client struct {
	client *genai.Client
	model  string
	cfg    *genai.GenerateContentConfig
}

// New без ключа возвращает клиента, который на каждый вызов отвечает ErrNotConfigured.
func New(ctx context.Context, cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.APIKey == "" {
		logger(ctx).Warn("gemini api key is empty, text generation disabled")
		return &Client{}, nil
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	var generateCfg *genai.GenerateContentConfig
	if cfg.Temperature > 0 {
		generateCfg = &genai.GenerateContentConfig{Temperature: genai.Ptr(cfg.Temperature)}
	}

	logger(ctx).Info("gemini client initialized", slog.String("model", model))

	return &Client{
		client: client,
		model:  model,
		cfg:    generateCfg,
	}, nil
}

func (c *Client) Configured() bool {
	return c.client != nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", domain.WrapError(domain.ErrNotConfigured, errcodes.IntegrationNotConfigured,
			"Gemini API key not configured. Set GEMINI_API_KEY environment variable.")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.cfg)
	if err != nil {
		return "", domain.WrapError(err, errcodes.TextGenerationFailed, "Gemini API error")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", domain.NewError(errcodes.TextGenerationFailed, "Gemini API returned empty response")
	}

	return text, nil
}
