package interview

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/talentscout/talentscout/internal/candidate"
	"github.com/talentscout/talentscout/internal/questions"
	"github.com/talentscout/talentscout/internal/sentiment"
	"github.com/talentscout/talentscout/internal/store"
	"go.uber.org/zap"
)

// Full wizard path against stub collaborators and a real file-backed store:
// intake through completion, snapshot, persist, reload.
func TestFullScreeningFlow(t *testing.T) {
	ctx := context.Background()

	runner := &Runner{
		Questions:  &stubQuestions{result: fiveQuestions()},
		Translator: &stubTranslator{},
		Classifier: &stubClassifier{label: sentiment.Neutral},
		Logger:     zap.NewNop(),
	}

	profile := candidate.Profile{
		Name:      "Alice",
		Email:     "a@x.com",
		Phone:     "123",
		TechStack: "Python, SQL",
	}

	session, err := runner.Start(ctx, profile, "en")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 0; ; i++ {
		question, ok := session.CurrentQuestion()
		if !ok {
			break
		}
		if question == "" {
			t.Fatalf("empty question at index %d", i)
		}
		if err := runner.Submit(ctx, session, fmt.Sprintf("answer %d", i+1)); err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
	}

	if session.Phase() != PhaseComplete {
		t.Fatalf("expected complete session, got %s", session.Phase())
	}

	record, err := session.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if len(record.Interview) != 5 {
		t.Fatalf("expected 5 answer records, got %d", len(record.Interview))
	}
	for i, qa := range record.Interview {
		if qa.Answer != fmt.Sprintf("answer %d", i+1) {
			t.Fatalf("answers out of submission order at %d: %+v", i, qa)
		}
	}

	st := store.New(filepath.Join(t.TempDir(), "candidates.json"))
	if err := st.Upsert(record); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	persisted, err := st.LoadAll()
	if err != nil {
		t.Fatalf("load all: %v", err)
	}

	if len(persisted) != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", len(persisted))
	}

	saved, ok := persisted["a@x.com"]
	if !ok {
		t.Fatal("expected record keyed by candidate email")
	}
	if saved.SessionID != session.ID() {
		t.Fatalf("persisted session id %q does not match %q", saved.SessionID, session.ID())
	}
	if len(saved.Interview) != 5 {
		t.Fatalf("expected 5 persisted answers, got %d", len(saved.Interview))
	}
}

// The generator wired to the runner: a cooking tech stack never reaches the
// model and the wizard stays on intake.
func TestScreeningBlocksUnknownTechStack(t *testing.T) {
	gen := questions.NewGenerator(failingAssistant{}, passthroughTranslator{}, nil, zap.NewNop(), 0)

	runner := &Runner{
		Questions:  gen,
		Translator: passthroughTranslator{},
		Classifier: &stubClassifier{label: sentiment.Neutral},
		Logger:     zap.NewNop(),
	}

	profile := candidate.Profile{
		Name:      "Bob",
		Email:     "b@y.com",
		Phone:     "456",
		TechStack: "I like cooking",
	}

	_, err := runner.Start(context.Background(), profile, "en")

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

type failingAssistant struct{}

func (failingAssistant) GenerateContent(context.Context, string) (string, error) {
	panic("assistant must not be called for an invalid tech stack")
}

func (failingAssistant) Model() string { return "stub-model" }

type passthroughTranslator struct{}

func (passthroughTranslator) Translate(_ context.Context, text, _ string) string { return text }
