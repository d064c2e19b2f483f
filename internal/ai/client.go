// Package ai is the optional natural-language task parser. It talks to the
// Gemini text-generation REST API; without an API key every call degrades to
// an absent result instead of failing the caller.
package ai

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

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
	requestTimeout = 15 * time.Second
)

// ParsedTask is the structured guess the model returns for a free-text task.
type ParsedTask struct {
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	Date              string   `json:"date,omitempty"` // ISO 8601 day, YYYY-MM-DD
	Priority          string   `json:"priority,omitempty"`
	Category          string   `json:"category,omitempty"`
	SuggestedSubtasks []string `json:"suggestedSubtasks,omitempty"`
}

// Client calls the text-completion endpoint.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewClient creates a Client. An empty apiKey disables the integration; an
// empty model selects the default.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents         []reqContent      `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type reqContent struct {
	Parts []reqPart `json:"parts"`
}

type reqPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ParseTask asks the model to extract a structured task from free text.
// Returns (nil, nil) when the integration is disabled.
func (c *Client) ParseTask(ctx context.Context, input string, referenceDate time.Time) (*ParsedTask, error) {
	if !c.Enabled() {
		return nil, nil
	}

	prompt := fmt.Sprintf(`Analyse this task request and extract structured details as JSON with the fields
title, description, date (ISO 8601, YYYY-MM-DD; default to the reference date when unspecified),
priority (one of LOW, MEDIUM, HIGH), category (one of WORK, PERSONAL, SHOPPING, HEALTH, OTHER)
and suggestedSubtasks (3 to 5 short strings). Respond with the JSON object only.
Reference date: %s
User input: %q`, referenceDate.Format("2006-01-02"), input)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed ParsedTask
	if err := json.Unmarshal([]byte(stripFences(text)), &parsed); err != nil {
		return nil, fmt.Errorf("unexpected model output: %w", err)
	}
	if parsed.Title == "" {
		return nil, fmt.Errorf("model returned no title")
	}
	return &parsed, nil
}

// SuggestSubtasks asks the model for a short checklist for the given title.
// Returns (nil, nil) when the integration is disabled.
func (c *Client) SuggestSubtasks(ctx context.Context, title string) ([]string, error) {
	if !c.Enabled() {
		return nil, nil
	}

	prompt := fmt.Sprintf(`Generate a list of 3 to 5 concrete subtasks for: %q.
Respond with a JSON array of strings only.`, title)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var subtasks []string
	if err := json.Unmarshal([]byte(stripFences(text)), &subtasks); err != nil {
		return nil, fmt.Errorf("unexpected model output: %w", err)
	}
	return subtasks, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents:         []reqContent{{Parts: []reqPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("api error (%s): %s", apiErr.Error.Status, apiErr.Error.Message)
		}
		return "", fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in one.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
