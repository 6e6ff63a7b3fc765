package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ChatClient talks to an OpenAI-compatible chat completions endpoint. A zero
// API key disables the client.
type ChatClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *resty.Client
}

func NewChatClient(baseURL, apiKey, model string) *ChatClient {
	return &ChatClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    resty.New().SetTimeout(30 * time.Second),
	}
}

func (c *ChatClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Complete sends the user message and returns the assistant reply.
func (c *ChatClient) Complete(message string) (string, error) {
	body := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": message},
		},
	}

	resp, err := c.http.R().
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("chat completion failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
