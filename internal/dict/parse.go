package dict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"tacticlens/internal/models"
)

// SplitKeywords parses a comma-delimited keyword string into a list.
// Entries are trimmed; empty entries are dropped. Deduplication happens in
// the store, not here.
func SplitKeywords(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseTactics parses the structured dictionary form, a JSON object mapping
// tactic name to keyword array:
//
//	{"urgency_marketing": ["hurry", "act now"], ...}
//
// Key order in the document becomes tactic order, so decoding walks the
// token stream instead of unmarshalling into a map. Structural problems
// (not an object, non-array values, duplicate names) are ErrMalformedInput;
// an empty or whitespace name is ErrInvalidName.
func ParseTactics(data []byte) ([]models.Tactic, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object of tactic name to keyword list", ErrMalformedInput)
	}

	var tactics []models.Tactic
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: tactic name is not a string", ErrMalformedInput)
		}
		if strings.TrimSpace(name) == "" {
			return nil, ErrInvalidName
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate tactic %q", ErrMalformedInput, name)
		}
		seen[name] = struct{}{}

		var keywords []string
		if err := dec.Decode(&keywords); err != nil {
			return nil, fmt.Errorf("%w: keywords for %q are not a string array: %v", ErrMalformedInput, name, err)
		}
		tactics = append(tactics, models.Tactic{Name: name, Keywords: keywords})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after dictionary object", ErrMalformedInput)
	}

	return tactics, nil
}
