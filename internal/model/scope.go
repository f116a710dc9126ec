package model

// Scope identifies the caller of a use case.
type Scope struct {
	UserID   string
	Username string
}

// Authenticated reports whether the caller carries an identity.
func (s Scope) Authenticated() bool {
	return s.UserID != ""
}
