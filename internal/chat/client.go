package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lawaware/backend/domain"
)

const systemPrompt = "You are a legal assistant. You will be given queries related to the Constitution of India. " +
	"Provide clear, concise, and accurate explanations, referencing relevant articles or sections when necessary. " +
	"Your goal is to educate the user without providing complete answers, encouraging them to explore further. " +
	"Use bullet points for clarity, and avoid asking follow-up questions."

// Client implements domain.ChatClient against an OpenAI-compatible
// chat-completions endpoint. One instance is created at startup and
// shared for the life of the process.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ domain.ChatClient = (*Client)(nil)

func NewClient(endpoint, model, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("chat client misconfigured")
	}

	payload := make([]domain.ChatMessage, 0, len(messages)+1)
	payload = append(payload, domain.ChatMessage{Role: "system", Content: systemPrompt})
	payload = append(payload, messages...)

	body, err := json.Marshal(map[string]any{
		"model":    c.model,
		"messages": payload,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat api returned status %d", resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat api returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
