package user

// Principal is the authenticated identity resolved from a session token.
type Principal struct {
	UserID string
	Email  string
}
