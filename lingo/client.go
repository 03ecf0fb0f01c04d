// Package lingo calls the Lingo.dev translation API, the dedicated
// translation provider tried before any language-model fallback.
package lingo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.lingo.dev/v1"

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
	Source string `json:"source"`
}

// translateResponse covers the response key variants the API has been
// seen to return.
type translateResponse struct {
	Translation    string `json:"translation"`
	TranslatedText string `json:"translatedText"`
	Result         string `json:"result"`
}

func (r translateResponse) text() string {
	if r.Translation != "" {
		return r.Translation
	}
	if r.TranslatedText != "" {
		return r.TranslatedText
	}
	return r.Result
}

type Client struct {
	apiKey    string
	projectID string
	baseURL   string
	client    *http.Client
}

// NewClient builds a Lingo.dev client for the given project credentials.
func NewClient(apiKey, projectID string) *Client {
	return &Client{
		apiKey:    apiKey,
		projectID: projectID,
		baseURL:   defaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Translate sends text for translation into the target language. Source
// language is auto-detected.
func (c *Client) Translate(text, target string) (string, error) {
	if c.apiKey == "" || c.projectID == "" {
		return "", fmt.Errorf("lingo credentials not configured")
	}

	jsonData, err := json.Marshal(translateRequest{
		Text:   text,
		Target: target,
		Source: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/projects/%s/translate", c.baseURL, c.projectID)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	translated := parsed.text()
	if translated == "" {
		return "", fmt.Errorf("empty translation in response")
	}
	return translated, nil
}

// Name identifies the provider in translation results.
func (c *Client) Name() string {
	return "lingo.dev"
}
