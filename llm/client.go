package llm

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/UmaDevi016/senior-caregiver/models"
)

type Message struct {
	Role string `json:"role"`
	// Content is a string for plain chat, or a []ContentPart for
	// vision requests.
	Content any `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type Choice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Choices []Choice `json:"choices"`
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewClient builds a client for the given credential, base URL and model.
func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) chat(req ChatRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not configured")
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
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

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// Simplify rewrites a health message into short, gentle wording a senior
// can follow at a glance.
func (c *Client) Simplify(text string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a warm, caring health assistant. Simplify this message for a senior. "+
			"Use gentle, clear, 1-syllable words where possible. Under 10 words.\n\n"+
			"Message: %s\n\nSimplified English:", text)

	return c.chat(ChatRequest{
		Model:       c.model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		Temperature: 0.2,
	})
}

// languageNames maps supported target codes to the display names used
// when prompting the model to translate.
var languageNames = map[string]string{
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"bn": "Bengali",
	"ml": "Malayalam",
	"mr": "Marathi",
	"or": "Odia",
	"es": "Spanish",
	"fr": "French",
	"ar": "Arabic",
	"en": "English",
}

// Translate renders a health message in the target language. Unknown
// codes are passed to the model as-is.
func (c *Client) Translate(text, target string) (string, error) {
	targetName, ok := languageNames[target]
	if !ok {
		targetName = target
	}
	prompt := fmt.Sprintf(
		"Translate this health message into %s for a senior. Be very respectful and clear.\n\n"+
			"Message: %s\n\nTranslation:", targetName, text)

	return c.chat(ChatRequest{
		Model:       c.model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		Temperature: 0.3,
	})
}

// Name identifies the client when it acts as a translation provider.
func (c *Client) Name() string {
	return "openai"
}

const extractionInstruction = "Extract medication info from this prescription. " +
	"Return ONLY valid JSON with fields: medicine, dosage, time (HH:mm), pill_color."

// ExtractPrescription sends a prescription image to the model and parses
// the structured medication record out of the reply.
func (c *Client) ExtractPrescription(image []byte) (*models.ExtractedMedication, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	reply, err := c.chat(ChatRequest{
		Model: c.model,
		Messages: []Message{{
			Role: "user",
			Content: []ContentPart{
				{Type: "text", Text: extractionInstruction},
				{Type: "image_url", ImageURL: &ImageURL{
					URL: "data:image/jpeg;base64," + encoded,
				}},
			},
		}},
		MaxTokens: 300,
	})
	if err != nil {
		return nil, err
	}

	var extracted models.ExtractedMedication
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	return &extracted, nil
}

// stripCodeFence unwraps replies the model insists on fencing, e.g.
// ```json { ... } ```.
func stripCodeFence(s string) string {
	if !strings.Contains(s, "```") {
		return strings.TrimSpace(s)
	}
	parts := strings.Split(s, "```")
	if len(parts) >= 2 {
		s = parts[1]
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "json")
	return strings.TrimSpace(s)
}
