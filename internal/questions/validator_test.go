package questions

import "testing"

func TestValidStack(t *testing.T) {
	cases := []struct {
		name  string
		stack string
		want  bool
	}{
		{"single keyword", "Python", true},
		{"mixed case sentence", "I use Python and React", true},
		{"keyword inside csv", "TensorFlow, PostgreSQL", true},
		{"short keyword as token", "mostly SQL and spreadsheets", true},
		{"go as standalone token", "Go, Docker", true},
		{"go with trailing period", "I mostly write Go.", true},
		{"punctuated token", "C++/Java", true},
		{"dotted framework name", "Vue.js and HTML", true},
		{"no keywords", "I cook pasta", false},
		{"go inside good", "I am a good communicator", false},
		{"go inside algorithms", "I study algorithms on paper", false},
		{"go inside gothic", "gothic literature and pottery", false},
		{"empty input", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidStack(tc.stack, nil); got != tc.want {
				t.Fatalf("ValidStack(%q) = %v, want %v", tc.stack, got, tc.want)
			}
		})
	}
}

func TestValidStackWithCustomKeywords(t *testing.T) {
	keywords := []string{"cobol"}

	if !ValidStack("Legacy COBOL systems", keywords) {
		t.Fatal("expected custom keyword to match")
	}

	if ValidStack("I cook pasta", keywords) {
		t.Fatal("expected no match for unrelated text")
	}
}
