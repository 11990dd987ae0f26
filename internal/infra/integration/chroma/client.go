package chroma

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

// Embedder turns a query string into a vector the collection can be
// searched with. In production this is the Azure OpenAI client.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

// Client performs nearest-neighbor lookups against one Chroma collection.
type Client struct {
	baseURL      string
	collection   string
	collectionID string
	embedder     Embedder
	http         *http.Client
}

func NewClient(baseURL, collection string, embedder Embedder) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		collection: collection,
		embedder:   embedder,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Init resolves the collection name to its ID. Called once at batch start;
// an error here aborts the whole batch.
func (c *Client) Init(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/v1/collections/%s", c.baseURL, c.collection)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("chroma request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("chroma collection lookup error (status %d): %s", resp.StatusCode, string(body))
	}

	var collection collectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return fmt.Errorf("failed to decode chroma collection: %w", err)
	}
	c.collectionID = collection.ID
	return nil
}

// TopK embeds the query and returns the k nearest documents.
func (c *Client) TopK(ctx context.Context, query string, k int) ([]string, error) {
	if c.collectionID == "" {
		if err := c.Init(ctx); err != nil {
			return nil, err
		}
	}

	embedding, err := c.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	payload := queryRequest{
		QueryEmbeddings: [][]float64{embedding},
		NResults:        k,
		Include:         []string{"documents"},
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/collections/%s/query", c.baseURL, c.collectionID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chroma query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chroma query error (status %d): %s", resp.StatusCode, string(body))
	}

	var response queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode chroma query: %w", err)
	}
	if len(response.Documents) == 0 {
		return nil, nil
	}
	return response.Documents[0], nil
}
