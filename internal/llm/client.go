package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cesargomez89/sonicvault/internal/constants"
	"github.com/cesargomez89/sonicvault/internal/httpclient"
)

const jsonResponseType = "json_object"

// ErrNoAPIKey is returned by every call when no key is configured.
var ErrNoAPIKey = errors.New("llm: api key required")

// ErrEmptyResponse means the service answered without any content.
var ErrEmptyResponse = errors.New("llm: empty response")

// Config captures the runtime settings required to talk to the LLM.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Title   string
}

// Client wraps a chat completion API.
type Client struct {
	cfg  Config
	http *httpclient.Client
}

// NewClient constructs an LLM client using the supplied configuration.
func NewClient(cfg Config, hc *httpclient.Client) *Client {
	cfg = Config{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		BaseURL: strings.TrimSpace(cfg.BaseURL),
		Model:   strings.TrimSpace(cfg.Model),
		Title:   strings.TrimSpace(cfg.Title),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultLLMBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = constants.DefaultLLMModel
	}
	return &Client{cfg: cfg, http: hc}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Request is one chat completion call.
type Request struct {
	System      string
	User        string
	Temperature float64
	JSON        bool // ask the model for a JSON object
}

// Complete sends the prompts and returns the model's reply, trimmed.
func (c *Client) Complete(ctx context.Context, r Request) (string, error) {
	if !c.Configured() {
		return "", ErrNoAPIKey
	}
	if strings.TrimSpace(r.User) == "" {
		return "", errors.New("llm complete: user prompt required")
	}

	payload := chatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: r.Temperature,
	}
	if s := strings.TrimSpace(r.System); s != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: s})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: r.User})
	if r.JSON {
		payload.ResponseFormat = map[string]string{"type": jsonResponseType}
	}

	completion, err := c.send(ctx, payload)
	if err != nil {
		return "", err
	}
	content := extractContent(completion)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

type chatCompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		// Legacy completion-style responses.
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type httpStatusError struct {
	StatusCode int
	Body       string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("llm request: http %d: %s", e.StatusCode, summarizePayloadSnippet(e.Body))
}

func (c *Client) send(ctx context.Context, payload chatCompletionRequest) (chatCompletionResponse, error) {
	var completion chatCompletionResponse

	encoded, err := json.Marshal(payload)
	if err != nil {
		return completion, fmt.Errorf("llm request: encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(encoded))
	if err != nil {
		return completion, fmt.Errorf("llm request: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return completion, fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return completion, fmt.Errorf("llm request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return completion, &httpStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return completion, fmt.Errorf("llm request: decode response: %w", err)
	}
	if completion.Error != nil {
		return completion, fmt.Errorf("llm request: api error: %s", strings.TrimSpace(completion.Error.Message))
	}
	return completion, nil
}

func extractContent(completion chatCompletionResponse) string {
	for _, choice := range completion.Choices {
		if content := firstNonEmpty(choice.Message.Content, choice.Text); content != "" {
			return content
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
