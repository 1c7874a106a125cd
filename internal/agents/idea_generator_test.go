package agents

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func testAgent(serverURL string) *IdeaGeneratorAgent {
	return &IdeaGeneratorAgent{
		apiKey:     "test-key",
		baseURL:    serverURL,
		httpClient: &http.Client{},
	}
}

func anthropicTextResponse(text string) string {
	resp := anthropicResponse{
		Content: []anthropicContent{{Type: "text", Text: text}},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestParseIdeasNumberedLines(t *testing.T) {
	got := parseIdeas("1. Build a widget\n2. Sell a gadget\nnot numbered\n3. Ship fast")
	want := []string{"Build a widget", "Sell a gadget", "Ship fast"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseIdeas = %v, want %v", got, want)
	}
}

func TestParseIdeasTruncatesToFive(t *testing.T) {
	text := "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g"
	got := parseIdeas(text)

	if len(got) != MaxIdeas {
		t.Fatalf("expected %d ideas, got %d: %v", MaxIdeas, len(got), got)
	}
	if got[4] != "e" {
		t.Errorf("expected fifth idea to be %q, got %q", "e", got[4])
	}
}

func TestParseIdeasDropsBlankLines(t *testing.T) {
	got := parseIdeas("\n\n1. First idea\n\n   \n2. Second idea\n\n")
	want := []string{"First idea", "Second idea"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseIdeas = %v, want %v", got, want)
	}
}

func TestParseIdeasKeepsLineWithoutDotMarker(t *testing.T) {
	// Digit in the first two bytes but no "N. " marker: kept as-is.
	got := parseIdeas("1) Launch a beta program")
	want := []string{"1) Launch a beta program"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseIdeas = %v, want %v", got, want)
	}
}

func TestParseIdeasNothingNumbered(t *testing.T) {
	if got := parseIdeas("just prose\nno list here"); len(got) != 0 {
		t.Errorf("expected no ideas, got %v", got)
	}
	if got := parseIdeas(""); len(got) != 0 {
		t.Errorf("expected no ideas from empty text, got %v", got)
	}
}

func TestBuildPromptFirstRoundHasNoFeedback(t *testing.T) {
	prompt := buildPrompt("smartphone apps", []string{"liked thing"}, []string{"removed thing"}, 1)

	if !strings.Contains(prompt, "smartphone apps") {
		t.Error("prompt should contain the topic")
	}
	if strings.Contains(prompt, "liked thing") || strings.Contains(prompt, "removed thing") {
		t.Error("round 1 prompt must not carry feedback context")
	}
}

func TestBuildPromptLaterRoundIncludesFeedback(t *testing.T) {
	prompt := buildPrompt("smartphone apps", []string{"voice notes"}, []string{"crypto wallet"}, 2)

	if !strings.Contains(prompt, "voice notes") {
		t.Error("prompt should carry liked ideas")
	}
	if !strings.Contains(prompt, "crypto wallet") {
		t.Error("prompt should carry removed ideas")
	}
}

func TestBuildPromptLaterRoundEmptySets(t *testing.T) {
	prompt := buildPrompt("smartphone apps", nil, nil, 3)

	if !strings.Contains(prompt, "none") {
		t.Error("empty feedback sets should render as none")
	}
}

func TestGenerateIdeasEmptyTopic(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	agent := testAgent(server.URL)

	for _, topic := range []string{"", "   ", "\t\n"} {
		ideas, err := agent.GenerateIdeas(context.Background(), topic, nil, nil, 1)
		if !errors.Is(err, ErrEmptyTopic) {
			t.Errorf("topic %q: expected ErrEmptyTopic, got %v", topic, err)
		}
		if len(ideas) != 0 {
			t.Errorf("topic %q: expected empty result, got %v", topic, ideas)
		}
	}

	if calls != 0 {
		t.Errorf("no API call should be made for an empty topic, got %d", calls)
	}
}

func TestGenerateIdeasParsesModelResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(anthropicTextResponse("1. Build a widget\n2. Sell a gadget\nnot numbered\n3. Ship fast")))
	}))
	defer server.Close()

	agent := testAgent(server.URL)

	ideas, err := agent.GenerateIdeas(context.Background(), "startups", nil, nil, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Build a widget", "Sell a gadget", "Ship fast"}
	if !reflect.DeepEqual(ideas, want) {
		t.Errorf("ideas = %v, want %v", ideas, want)
	}
}

func TestGenerateIdeasEmptyResponseText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(anthropicTextResponse("")))
	}))
	defer server.Close()

	agent := testAgent(server.URL)

	ideas, err := agent.GenerateIdeas(context.Background(), "startups", nil, nil, 1)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
	if len(ideas) != 0 {
		t.Errorf("expected empty result, got %v", ideas)
	}
}

func TestGenerateIdeasUnparsableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(anthropicTextResponse("Here are some ideas:\nmake things\ndo stuff")))
	}))
	defer server.Close()

	agent := testAgent(server.URL)

	ideas, err := agent.GenerateIdeas(context.Background(), "startups", nil, nil, 1)
	if !errors.Is(err, ErrNoIdeasParsed) {
		t.Errorf("expected ErrNoIdeasParsed, got %v", err)
	}
	if len(ideas) != 0 {
		t.Errorf("expected empty result, got %v", ideas)
	}
}

func TestGenerateIdeasAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	agent := testAgent(server.URL)

	ideas, err := agent.GenerateIdeas(context.Background(), "startups", nil, nil, 1)
	if err == nil {
		t.Fatal("expected an error on API failure")
	}
	if len(ideas) != 0 {
		t.Errorf("expected empty result, got %v", ideas)
	}
}

func TestGenerateIdeasSendsFeedbackInPrompt(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropicRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) > 0 {
			gotPrompt = req.Messages[0].Content
		}
		w.Write([]byte(anthropicTextResponse("1. Something new")))
	}))
	defer server.Close()

	agent := testAgent(server.URL)

	_, err := agent.GenerateIdeas(context.Background(), "startups",
		[]string{"developer tools"}, []string{"ad networks"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotPrompt, "developer tools") || !strings.Contains(gotPrompt, "ad networks") {
		t.Errorf("prompt missing feedback context: %q", gotPrompt)
	}
}
