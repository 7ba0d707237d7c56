package translate

import "context"

// BaseLanguage is the language used for sentiment analysis and canonical
// storage. Display-language translation is a projection at the edges only.
const BaseLanguage = "en"

// Language pairs a human-readable name with its ISO 639-1 code.
type Language struct {
	Name string `mapstructure:"name"`
	Code string `mapstructure:"code"`
}

// DefaultLanguages is the selectable display-language menu.
var DefaultLanguages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Telugu", Code: "te"},
	{Name: "Hindi", Code: "hi"},
	{Name: "Tamil", Code: "ta"},
}

// Translator converts text into the target language. Implementations are
// total: when the backing service fails the original text is returned
// unchanged (silent degrade), and a passthrough is used when the target is
// already the base language.
type Translator interface {
	Translate(ctx context.Context, text, target string) string
}

// Noop returns every text unchanged. Used when no translation endpoint is
// configured.
type Noop struct{}

// Translate implements Translator.
func (Noop) Translate(_ context.Context, text, _ string) string { return text }
