package domain

// Principal is the authenticated caller of an admin operation. The hosted
// auth provider issues the token; UserID is its subject.
type Principal struct {
	UserID string
}
