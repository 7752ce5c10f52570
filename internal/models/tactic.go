package models

// Tactic is a named category of keywords to detect in statement text.
type Tactic struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Clone returns a deep copy so callers can hold a tactic without aliasing
// the store's keyword slice.
func (t Tactic) Clone() Tactic {
	keywords := make([]string, len(t.Keywords))
	copy(keywords, t.Keywords)
	return Tactic{Name: t.Name, Keywords: keywords}
}

// TacticResult is the outcome of classifying one statement against one tactic.
// Present, Count and Matches always agree: Present == (Count > 0) and
// Count == len(Matches).
type TacticResult struct {
	Tactic  string   `json:"tactic"`
	Present bool     `json:"present"`
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
}
