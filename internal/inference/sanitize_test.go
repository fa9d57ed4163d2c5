package inference

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n[{\"name\": \"Netflix\"}]\n```",
			want:  "[{\"name\": \"Netflix\"}]",
		},
		{
			name:  "bare fence",
			input: "```\n[]\n```",
			want:  "[]",
		},
		{
			name:  "no fence",
			input: "[{\"name\": \"Spotify\"}]",
			want:  "[{\"name\": \"Spotify\"}]",
		},
		{
			name:  "surrounding whitespace",
			input: "  \n[1, 2]\n  ",
			want:  "[1, 2]",
		},
		{
			name:  "prose around the array",
			input: "Here is the result:\n[{\"name\": \"Hulu\"}]\nLet me know if you need more.",
			want:  "[{\"name\": \"Hulu\"}]",
		},
		{
			name:  "single line fence",
			input: "```json[]```",
			want:  "[]",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripCodeFences(tt.input)
			if got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Stripping fences from already-clean text must be a no-op, so applying the
// sanitizer twice equals applying it once.
func TestStripCodeFences_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n[{\"name\": \"Netflix\"}]\n```",
		"[{\"name\": \"Netflix\"}]",
		"[]",
	}
	for _, input := range inputs {
		once := stripCodeFences(input)
		twice := stripCodeFences(once)
		if once != twice {
			t.Errorf("stripCodeFences not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestDecodeCandidates(t *testing.T) {
	log := zerolog.Nop()

	t.Run("valid array", func(t *testing.T) {
		raw := `[{"name": "Netflix"}, {"name": "Spotify"}]`
		got := decodeCandidates(raw, log)
		if len(got) != 2 {
			t.Fatalf("expected 2 candidates, got %d", len(got))
		}
		if got[0]["name"] != "Netflix" || got[1]["name"] != "Spotify" {
			t.Errorf("candidates out of order: %v", got)
		}
	})

	t.Run("fenced array", func(t *testing.T) {
		raw := "```json\n[{\"name\": \"Netflix\"}]\n```"
		got := decodeCandidates(raw, log)
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
	})

	t.Run("truncated JSON yields empty", func(t *testing.T) {
		raw := `[{"name": "Netflix"`
		if got := decodeCandidates(raw, log); len(got) != 0 {
			t.Errorf("expected no candidates for truncated JSON, got %d", len(got))
		}
	})

	t.Run("non-array yields empty", func(t *testing.T) {
		raw := `{"name": "Netflix"}`
		if got := decodeCandidates(raw, log); len(got) != 0 {
			t.Errorf("expected no candidates for non-array, got %d", len(got))
		}
	})

	t.Run("non-object elements skipped", func(t *testing.T) {
		raw := `[{"name": "Netflix"}, "junk", 42]`
		got := decodeCandidates(raw, log)
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
	})

	t.Run("numbers preserved as json.Number", func(t *testing.T) {
		raw := `[{"average_amount": 15.99}]`
		got := decodeCandidates(raw, log)
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
		n, ok := got[0]["average_amount"].(json.Number)
		if !ok {
			t.Fatalf("average_amount is %T, want json.Number", got[0]["average_amount"])
		}
		if n.String() != "15.99" {
			t.Errorf("expected 15.99, got %s", n.String())
		}
	})
}
