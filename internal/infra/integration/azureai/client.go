package azureai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiVersion = "2024-02-01"

// Client talks to Azure OpenAI deployments: one chat deployment for text
// generation and one embedding deployment for similarity queries.
type Client struct {
	endpoint            string
	apiKey              string
	chatDeployment      string
	embeddingDeployment string
	http                *http.Client
}

func NewClient(endpoint, apiKey, chatDeployment, embeddingDeployment string) *Client {
	return &Client{
		endpoint:            strings.TrimRight(endpoint, "/"),
		apiKey:              apiKey,
		chatDeployment:      chatDeployment,
		embeddingDeployment: embeddingDeployment,
		http:                &http.Client{Timeout: 60 * time.Second},
	}
}

// Generate sends a single system message and returns the model's reply.
func (c *Client) Generate(ctx context.Context, systemPrompt string) (string, error) {
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.chatDeployment, apiVersion)

	payload := chatRequest{
		Messages: []chatMessage{{Role: "system", Content: systemPrompt}},
	}

	var response chatResponse
	if err := c.post(ctx, url, payload, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("azure openai returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}

// EmbedQuery returns the embedding vector for a single query string.
func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	url := fmt.Sprintf("%s/openai/deployments/%s/embeddings?api-version=%s",
		c.endpoint, c.embeddingDeployment, apiVersion)

	payload := embeddingsRequest{Input: []string{text}}

	var response embeddingsResponse
	if err := c.post(ctx, url, payload, &response); err != nil {
		return nil, err
	}
	if len(response.Data) == 0 {
		return nil, fmt.Errorf("azure openai returned no embedding")
	}
	return response.Data[0].Embedding, nil
}

func (c *Client) post(ctx context.Context, url string, payload, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal azure request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("azure openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("azure openai error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode azure response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)
}
