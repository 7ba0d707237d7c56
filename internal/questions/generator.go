package questions

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/talentscout/talentscout/internal/ai"
	"github.com/talentscout/talentscout/internal/translate"
	"github.com/talentscout/talentscout/internal/util"
	"go.uber.org/zap"
)

//go:embed prompt.md
var promptTemplate string

const (
	// MaxQuestions bounds a generated interview.
	MaxQuestions = 5

	invalidStackMessage = "Please enter a valid tech stack!"
	emptyReplyMessage   = "Unable to generate questions."

	defaultMaxLogLength = 200
)

// Result is the outcome of a generation request. When Sentinel is set the
// Questions slice holds a single localized error message instead of real
// interview questions; no session should start from it.
type Result struct {
	Questions []string
	Sentinel  bool
}

// Generator turns a validated tech stack into a bounded list of interview
// questions via the AI assistant.
type Generator struct {
	assistant  ai.Assistant
	translator translate.Translator
	keywords   []string
	logger     *zap.Logger
	maxLogLen  int
}

// NewGenerator creates a question generator. keywords extends the built-in
// tech allow-list; pass nil to use DefaultKeywords alone.
func NewGenerator(assistant ai.Assistant, translator translate.Translator, keywords []string, logger *zap.Logger, maxLogLength int) *Generator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	merged := make([]string, 0, len(DefaultKeywords)+len(keywords))
	merged = append(merged, DefaultKeywords...)
	merged = append(merged, keywords...)

	return &Generator{
		assistant:  assistant,
		translator: translator,
		keywords:   merged,
		logger:     logger,
		maxLogLen:  maxLogLength,
	}
}

// Generate produces up to MaxQuestions questions for the tech stack. lang is
// used only to localize sentinel messages. A transport or API failure is
// returned to the caller; it is never converted into a sentinel.
func (g *Generator) Generate(ctx context.Context, techStack, lang string) (*Result, error) {
	if !ValidStack(techStack, g.keywords) {
		return g.sentinel(ctx, invalidStackMessage, lang), nil
	}

	prompt := buildPrompt(techStack)

	g.logger.Debug("question generation request",
		zap.String("tech_stack", techStack),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := g.assistant.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate interview questions: %w", err)
	}

	g.logger.Debug("question generation response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, g.maxLogLen)),
	)

	parsed := ParseQuestions(raw)
	if len(parsed) == 0 {
		return g.sentinel(ctx, emptyReplyMessage, lang), nil
	}

	return &Result{Questions: parsed}, nil
}

func (g *Generator) sentinel(ctx context.Context, message, lang string) *Result {
	return &Result{
		Questions: []string{g.translator.Translate(ctx, message, lang)},
		Sentinel:  true,
	}
}

// buildPrompt fills the embedded template, falling back to a minimal inline
// prompt if the embed is missing.
func buildPrompt(techStack string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Generate 5 interview questions for a candidate skilled in {{TECH_STACK}}."
	}
	return strings.ReplaceAll(template, "{{TECH_STACK}}", techStack)
}

// ParseQuestions is a lenient line-oriented parser over the raw model reply:
// split on line breaks, trim whitespace, drop blank lines, keep at most
// MaxQuestions entries in response order. Fewer than MaxQuestions usable
// lines yields a shorter list, never an error.
func ParseQuestions(raw string) []string {
	lines := strings.Split(raw, "\n")
	parsed := make([]string, 0, MaxQuestions)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parsed = append(parsed, line)
		if len(parsed) == MaxQuestions {
			break
		}
	}

	return parsed
}
