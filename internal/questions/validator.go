package questions

import (
	"strings"
	"unicode"
)

// DefaultKeywords is the built-in technology allow-list used to decide
// whether a free-text tech stack is worth generating questions for.
var DefaultKeywords = []string{
	"python",
	"java",
	"c++",
	"c#",
	"go",
	"golang",
	"rust",
	"tensorflow",
	"pytorch",
	"react",
	"angular",
	"vue",
	"node.js",
	"django",
	"flask",
	"spring",
	"pandas",
	"sql",
	"postgres",
	"mysql",
	"mongodb",
	"redis",
	"docker",
	"kubernetes",
	"aws",
	"terraform",
}

// Keywords this short hit ordinary English as substrings ("go" in "good",
// "gothic"), so they must match a whole token instead.
const shortKeywordLen = 3

// ValidStack reports whether the stack mentions at least one known technology
// keyword, case-insensitively. Short keywords match whole tokens only; longer
// ones match as substrings. An empty keywords list falls back to
// DefaultKeywords. Deterministic and total.
func ValidStack(stack string, keywords []string) bool {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	lower := strings.ToLower(stack)
	tokens := tokenize(lower)

	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}

		if len(keyword) <= shortKeywordLen {
			if tokens[keyword] {
				return true
			}
			continue
		}

		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// tokenize splits on list separators and whitespace while keeping in-word
// punctuation, so "c++", "c#" and "node.js" survive as single tokens.
func tokenize(stack string) map[string]bool {
	separator := func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '/' || r == '(' || r == ')'
	}

	tokens := map[string]bool{}
	for _, token := range strings.FieldsFunc(stack, separator) {
		token = strings.Trim(token, ".:!?")
		if token == "" {
			continue
		}
		tokens[token] = true

		// "Vue.js" should still count as a mention of "vue".
		for _, part := range strings.Split(token, ".") {
			if part != "" {
				tokens[part] = true
			}
		}
	}

	return tokens
}
