package pick

import "testing"

func TestMatchSubstring(t *testing.T) {
	tests := []struct {
		name        string
		description string
		query       string
		want        bool
	}{
		{"empty query matches", "John Smith", "", true},
		{"exact", "John Smith", "John Smith", true},
		{"lowercase query", "John Smith", "mary", false},
		{"case folded", "Mary Kim", "MARY", true},
		{"mid-word", "Mary Kim", "ry k", true},
		{"no match", "Mary Kim", "zzz", false},
		{"query longer than text", "Kim", "Mary Kim", false},
		{"unicode fold", "JOSÉ GARCÍA", "josé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchSubstring(tt.description, tt.query); got != tt.want {
				t.Fatalf("MatchSubstring(%q, %q) = %v, want %v", tt.description, tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchFuzzy(t *testing.T) {
	tests := []struct {
		name        string
		description string
		query       string
		want        bool
	}{
		{"empty query matches", "John Smith", "", true},
		{"subsequence", "John Smith", "jsm", true},
		{"case folded subsequence", "Mary Kim", "MK", true},
		{"order matters", "John Smith", "sj", false},
		{"no match", "Mary Kim", "zzz", false},
		{"diacritics normalized", "José", "jose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchFuzzy(tt.description, tt.query); got != tt.want {
				t.Fatalf("MatchFuzzy(%q, %q) = %v, want %v", tt.description, tt.query, got, tt.want)
			}
		})
	}
}
