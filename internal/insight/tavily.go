// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/coursegen/pkg/types"
)

// tavilySearchURL is the Tavily search endpoint. Declared as a var so
// tests can substitute an httptest server.
var tavilySearchURL = "https://api.tavily.com/search"

// Result is one web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Searcher performs one web search and returns ranked hits.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// TavilyBackend queries the Tavily search API.
type TavilyBackend struct {
	Client *http.Client
	Config types.InsightConfig
}

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []Result `json:"results"`
}

// Search posts the query to Tavily and returns the hits in rank order.
func (b *TavilyBackend) Search(ctx context.Context, query string) ([]Result, error) {
	maxResults := b.Config.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:     b.Config.APIKey,
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilySearchURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.Config.UserAgent != "" {
		req.Header.Set("User-Agent", b.Config.UserAgent)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	var tr tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	return tr.Results, nil
}
