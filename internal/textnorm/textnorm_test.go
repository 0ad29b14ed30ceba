package textnorm

import (
	"errors"
	"testing"
)

// The three Unicode spellings of "viață" (life): modern precomposed
// comma-below, legacy precomposed cedilla, and fully combining forms.
const (
	viataModern    = "via\u021b\u0103"
	viataCedilla   = "via\u0163\u0103"
	viataCombining = "viat\u0327a\u0306"
)

func TestNormalizeRomanianVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"modern comma-below", viataModern},
		{"precomposed cedilla", viataCedilla},
		{"combining cedilla", viataCombining},
		{"combining comma-below", "viat\u0326a\u0306"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input, "ro")
			if err != nil {
				t.Fatalf("Normalize returned an error: %v", err)
			}
			if got != viataModern {
				t.Errorf("Normalize(%+q) = %+q, want %+q", tt.input, got, viataModern)
			}
		})
	}
}

func TestNormalizeRomanianUppercase(t *testing.T) {
	got, err := Normalize("\u0162ara \u015ei", "ro") // legacy cedilla capitals
	if err != nil {
		t.Fatalf("Normalize returned an error: %v", err)
	}
	want := "\u021aara \u0218i"
	if got != want {
		t.Errorf("Normalize = %+q, want %+q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{viataModern, viataCedilla, "dragoste", "C\u00e2nt\u0103rile"}

	for _, input := range inputs {
		once, err := Normalize(input, "ro")
		if err != nil {
			t.Fatalf("Normalize returned an error: %v", err)
		}
		twice, err := Normalize(once, "ro")
		if err != nil {
			t.Fatalf("Normalize returned an error: %v", err)
		}
		if once != twice {
			t.Errorf("Normalize is not idempotent for %+q: %+q != %+q", input, once, twice)
		}
	}
}

func TestNormalizeEnglishPassthrough(t *testing.T) {
	input := "For God so loved the world"
	got, err := Normalize(input, "en")
	if err != nil {
		t.Fatalf("Normalize returned an error: %v", err)
	}
	if got != input {
		t.Errorf("Normalize(%q, \"en\") = %q, want unchanged input", input, got)
	}
}

func TestNormalizeUnsupportedLanguage(t *testing.T) {
	_, err := Normalize("text", "xx")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Normalize error = %v, want ErrUnsupportedLanguage", err)
	}

	if Supported("xx") {
		t.Error("Supported(\"xx\") = true, want false")
	}
	if !Supported("ro") || !Supported("en") {
		t.Error("expected ro and en pipelines to be registered")
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dr\u00e1goste", "dragoste"},
		{viataModern, "viata"},
		{"\u00cenv\u0103\u021b", "Invat"}, // case preserved
		{"plain ascii", "plain ascii"},
	}

	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%+q) = %+q, want %+q", tt.input, got, tt.want)
		}
	}
}

// Folding is diacritic-insensitive regardless of which legacy representation
// was ingested: fold(normalize(x)) == fold(x).
func TestFoldRoundTrip(t *testing.T) {
	for _, input := range []string{viataModern, viataCedilla, viataCombining} {
		normalized, err := Normalize(input, "ro")
		if err != nil {
			t.Fatalf("Normalize returned an error: %v", err)
		}
		if Fold(normalized) != Fold(input) {
			t.Errorf("Fold(Normalize(%+q)) = %+q, Fold(%+q) = %+q; want equal",
				input, Fold(normalized), input, Fold(input))
		}
		if Fold(input) != "viata" {
			t.Errorf("Fold(%+q) = %+q, want %q", input, Fold(input), "viata")
		}
	}
}
