package sentiment

import "context"

// Label is the sentiment class assigned to an answer.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Classifier assigns a sentiment label to a piece of text. Implementations
// must be total: any internal failure resolves to Neutral instead of an
// error, so an interview step can never be blocked by the scorer.
type Classifier interface {
	Classify(ctx context.Context, text string) Label
}
