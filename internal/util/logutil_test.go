package util

import "testing"

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"trimmed before measuring", "  hello  ", 10, "hello"},
		{"truncated with ellipsis", "hello world", 5, "hello..."},
		{"zero limit", "hello", 0, ""},
		{"multibyte runes", "привет мир", 6, "привет..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.in, tc.limit); got != tc.want {
				t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}
