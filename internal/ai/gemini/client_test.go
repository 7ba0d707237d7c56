package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	calls     int
	prompts   []string
	responses []fakeResponse
}

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	for _, content := range contents {
		for _, part := range content.Parts {
			f.prompts = append(f.prompts, part.Text)
		}
	}

	if f.calls >= len(f.responses) {
		return nil, errors.New("unexpected call")
	}
	res := f.responses[f.calls]
	f.calls++
	return res.resp, res.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	originalSleep := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = originalSleep }()

	tempErr := genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	models := &fakeModels{responses: []fakeResponse{
		{err: tempErr},
		{resp: textResponse("retry ok")},
	}}

	g := &Generator{
		models:     models,
		model:      "gemini-2.5-flash",
		maxRetries: 2,
		logger:     zap.NewNop(),
	}

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}

	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	originalSleep := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = originalSleep }()

	tempErr := genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}
	models := &fakeModels{responses: []fakeResponse{
		{err: tempErr},
		{err: tempErr},
	}}

	g := &Generator{
		models:     models,
		model:      "gemini-2.5-flash",
		maxRetries: 2,
		logger:     zap.NewNop(),
	}

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error after retries exhausted")
	}

	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
}

func TestGeneratorDoesNotRetryOnPermanentError(t *testing.T) {
	permErr := genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}
	models := &fakeModels{responses: []fakeResponse{{err: permErr}}}

	g := &Generator{
		models:     models,
		model:      "gemini-2.5-flash",
		maxRetries: 3,
		logger:     zap.NewNop(),
	}

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error on permanent failure")
	}

	if models.calls != 1 {
		t.Fatalf("expected single call, got %d", models.calls)
	}
}

func TestGeneratorJoinsCandidateParts(t *testing.T) {
	models := &fakeModels{responses: []fakeResponse{{
		resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "first line "},
					{Text: ""},
					{Text: "second line"},
				}},
			}},
		},
	}}}

	g := &Generator{
		models:     models,
		model:      "gemini-2.5-flash",
		maxRetries: 1,
		logger:     zap.NewNop(),
	}

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "first line\nsecond line" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	g := &Generator{
		models:     &fakeModels{},
		model:      "gemini-2.5-flash",
		maxRetries: 1,
		logger:     zap.NewNop(),
	}

	if _, err := g.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}
