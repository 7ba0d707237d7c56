package sentiment

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/talentscout/talentscout/internal/ai"
	"github.com/talentscout/talentscout/internal/util"
	"go.uber.org/zap"
)

const classifyPrompt = `Classify the overall sentiment of the following text.
Respond with exactly one word: positive, neutral or negative.

Text:
%s

Sentiment:`

const defaultMaxLogLength = 200

// Analyzer scores answer sentiment through the AI assistant. Any failure on
// the request or an unrecognized reply degrades to Neutral.
type Analyzer struct {
	assistant ai.Assistant
	logger    *zap.Logger
	maxLogLen int
}

// NewAnalyzer creates an Analyzer backed by the provided assistant.
func NewAnalyzer(assistant ai.Assistant, logger *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Analyzer{
		assistant: assistant,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Classify implements Classifier.
func (a *Analyzer) Classify(ctx context.Context, text string) Label {
	text = strings.TrimSpace(text)
	if text == "" {
		return Neutral
	}

	raw, err := a.assistant.GenerateContent(ctx, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		a.logger.Debug("sentiment scoring degraded to neutral",
			zap.Int("text_length", utf8.RuneCountInString(text)),
			zap.Error(err),
		)
		return Neutral
	}

	label, ok := parseLabel(raw)
	if !ok {
		a.logger.Debug("unrecognized sentiment reply, using neutral",
			zap.String("reply_preview", util.TruncateForLog(raw, a.maxLogLen)),
		)
		return Neutral
	}

	return label
}

// parseLabel extracts the label from the first word of the reply.
func parseLabel(raw string) (Label, bool) {
	first := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(first, " \t\n"); idx != -1 {
		first = first[:idx]
	}
	first = strings.Trim(first, ".,:;!\"'`*")

	switch Label(first) {
	case Positive, Neutral, Negative:
		return Label(first), true
	default:
		return "", false
	}
}
