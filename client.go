package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// quote item format: {"q": "quote text", "a": "author name", ...}
type apiQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type QuoteClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewQuoteClient(baseURL string) *QuoteClient {
	return &QuoteClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// fetches a batch of quotes from the API
func (c *QuoteClient) FetchQuotes() ([]Quote, error) {
	req, err := http.NewRequest("GET", c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote api returned status %d", res.StatusCode)
	}

	var items []apiQuote
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	quotes := make([]Quote, 0, len(items))
	for _, item := range items {
		if item.Q == "" || item.A == "" {
			continue
		}
		quotes = append(quotes, Quote{Text: item.Q, Author: item.A})
	}

	return quotes, nil
}
