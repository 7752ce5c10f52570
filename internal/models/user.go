package models

// User represents a user authenticated via OIDC. Identity lives only in the
// session cookie; there is no user database.
type User struct {
	Sub     string `json:"sub"` // OIDC subject identifier
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
