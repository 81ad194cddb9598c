package lexicon

import "testing"

func TestIsStopWord(t *testing.T) {
	lex := Default()

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"and", true},
		{"и", true},
		{"который", true},
		{"photography", false},
		{"chatgpt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := lex.IsStopWord(tt.word); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultTablesPopulated(t *testing.T) {
	lex := Default()

	if len(lex.StopWords) == 0 {
		t.Error("stop words table is empty")
	}
	if len(lex.PowerWords) == 0 {
		t.Error("power words table is empty")
	}
	if len(lex.TrendTriggers) == 0 {
		t.Error("trend triggers table is empty")
	}

	// Every trend topic must carry at least one trigger phrase.
	for topic, triggers := range lex.TrendTriggers {
		if len(triggers) == 0 {
			t.Errorf("trend %q has no triggers", topic)
		}
	}

	// CTA detection depends on every pattern group being non-empty.
	for cta, patterns := range lex.CTAPatterns {
		if len(patterns) == 0 {
			t.Errorf("cta %q has no patterns", cta)
		}
	}
}
