package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const (
	anthropicAPIURL = "https://api.anthropic.com/v1/messages"

	// MaxIdeas is the number of ideas kept per round.
	MaxIdeas = 5
)

var (
	// ErrEmptyTopic means the topic was empty or whitespace; no API call is made.
	ErrEmptyTopic = errors.New("topic is empty")
	// ErrEmptyResponse means the model returned no text.
	ErrEmptyResponse = errors.New("empty response from model")
	// ErrNoIdeasParsed means no response line matched the numbered-item format.
	ErrNoIdeasParsed = errors.New("no ideas could be parsed from response")
)

type IdeaGeneratorAgent struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
	Error   *anthropicError    `json:"error,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewIdeaGeneratorAgent(apiKey string) *IdeaGeneratorAgent {
	if apiKey == "" {
		log.Fatal("ANTHROPIC_API_KEY is required")
	}

	return &IdeaGeneratorAgent{
		apiKey:     apiKey,
		baseURL:    anthropicAPIURL,
		httpClient: &http.Client{},
	}
}

// GenerateIdeas produces up to MaxIdeas idea statements for the topic. From the
// second round on, liked and removed texts from earlier rounds steer the prompt.
// All failures come back as errors with an empty result; the caller decides how
// to surface them and must not advance the round on failure.
func (a *IdeaGeneratorAgent) GenerateIdeas(ctx context.Context, topic string, liked, removed []string, round int) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrEmptyTopic
	}

	prompt := buildPrompt(topic, liked, removed, round)

	responseText, err := a.callClaude(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(responseText) == "" {
		return nil, ErrEmptyResponse
	}

	ideas := parseIdeas(responseText)
	if len(ideas) == 0 {
		return nil, ErrNoIdeasParsed
	}

	return ideas, nil
}

func buildPrompt(topic string, liked, removed []string, round int) string {
	feedbackContext := ""
	if round > 1 {
		likedText := "none"
		if len(liked) > 0 {
			likedText = strings.Join(liked, ", ")
		}
		removedText := "none"
		if len(removed) > 0 {
			removedText = strings.Join(removed, ", ")
		}

		feedbackContext = fmt.Sprintf(`
Idea directions the user liked in earlier rounds:
%s

Idea directions the user removed in earlier rounds:
%s

Taking this feedback into account, suggest new approaches similar to the liked
ideas and avoid approaches similar to the removed ones.
`, likedText, removedText)
	}

	return fmt.Sprintf(`Generate 5 creative and practical ideas for the following topic:
Topic: %s
%s
Requirements:
- Write each idea in 1-2 concise sentences
- Do not repeat ideas
- Number every idea (e.g. "1. Idea text")
- Ideas should be creative but feasible
- Avoid approaches similar to previously suggested ideas`, topic, feedbackContext)
}

// parseIdeas extracts numbered list items from free-form model output. A line is
// kept only if one of its first two bytes is a digit; a leading "N. " marker is
// stripped when present. At most MaxIdeas items are returned.
func parseIdeas(text string) []string {
	var ideas []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !startsNumbered(line) {
			continue
		}

		if parts := strings.SplitN(line, ". ", 2); len(parts) == 2 {
			line = strings.TrimSpace(parts[1])
		}
		if line == "" {
			continue
		}

		ideas = append(ideas, line)
		if len(ideas) == MaxIdeas {
			break
		}
	}

	return ideas
}

func startsNumbered(line string) bool {
	for i := 0; i < 2 && i < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' {
			return true
		}
	}
	return false
}

func (a *IdeaGeneratorAgent) callClaude(ctx context.Context, prompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:     "claude-sonnet-4-5-20250929",
		MaxTokens: 1000,
		Messages: []anthropicMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Anthropic API error (status %d): %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s - %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	if len(apiResp.Content) > 0 && apiResp.Content[0].Type == "text" {
		return apiResp.Content[0].Text, nil
	}

	return "", ErrEmptyResponse
}
