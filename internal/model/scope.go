package model

// Scope identifies the caller a request acts on behalf of.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
}

// IsAnonymous reports whether the scope carries no user.
func (s Scope) IsAnonymous() bool {
	return s.UserID == ""
}
