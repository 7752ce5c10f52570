package validation

import (
	"strings"
	"testing"
)

func TestValidateTacticName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "urgency_marketing", true},
		{"spaces inside", "social proof", true},
		{"mixed case", "Urgency", true},
		{"surrounding whitespace trimmed", "  scarcity  ", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too long", strings.Repeat("a", MaxTacticNameLength+1), false},
		{"exactly max length", strings.Repeat("a", MaxTacticNameLength), true},
		{"control character", "bad\x00name", false},
		{"newline", "bad\nname", false},
		{"comma breaks csv headers", "a,b", false},
		{"unicode letters", "tactique_exclusivité", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateTacticName(tt.input)
			if ok != tt.want {
				t.Errorf("ValidateTacticName(%q) = %v, want %v (msg %q)", tt.input, ok, tt.want, msg)
			}
			if !ok && msg == "" {
				t.Errorf("ValidateTacticName(%q) rejected without a message", tt.input)
			}
			if ok && msg != "" {
				t.Errorf("ValidateTacticName(%q) accepted with message %q", tt.input, msg)
			}
		})
	}
}
