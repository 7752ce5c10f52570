package validation

import (
	"strings"
	"unicode"
)

// MaxTacticNameLength caps tactic names; derived columns embed the name, so
// unbounded names would produce unusable CSV headers.
const MaxTacticNameLength = 100

// ValidateTacticName checks a tactic name at the input boundary and returns
// a user-facing message when invalid. Names are significant byte-for-byte
// (case included); the store compares them exactly.
func ValidateTacticName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, "Tactic name is required"
	}
	if len(name) > MaxTacticNameLength {
		return false, "Tactic name is too long (max 100 characters)"
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false, "Tactic name contains control characters"
		}
	}
	if strings.Contains(name, ",") {
		return false, "Tactic name must not contain commas"
	}
	return true, ""
}
