package models

// StatementResult is the JSON API shape for one classified statement.
type StatementResult struct {
	Statement string         `json:"statement"`
	Results   []TacticResult `json:"results"`
}
