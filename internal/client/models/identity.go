package models

import "strings"

// Identity is the currently logged-in user. It lives in session-scoped storage.
type Identity struct {
	Username string `json:"username"`
}

// Valid reports whether the identity carries a usable username.
func (i Identity) Valid() bool {
	return strings.TrimSpace(i.Username) != ""
}

// Directory maps usernames to plain-text passwords. It backs the simulated
// credential service only and must never hold real secrets.
type Directory map[string]string
