package user

// Principal is the authenticated identity resolved by the accounts service.
type Principal struct {
	UserID string
	Email  string
}
