package model

// Scope identifies the caller of a request. The zero value is an anonymous caller.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAuthenticated reports whether the request carried a verified identity.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}
