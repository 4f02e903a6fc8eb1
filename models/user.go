package models

// Credentials carries the username/password pair submitted to the login
// endpoint. The password is never persisted or logged in plaintext.
type Credentials struct {
	// Username is the login name to authenticate as.
	Username string `json:"username"`

	// Password is the plaintext password to verify.
	// Sensitive: must never be written to logs or responses.
	Password string `json:"password"`
}

// User is the verified identity produced by a successful credential check.
// It is ephemeral: the API keeps no persisted user accounts, so a User only
// exists between login verification and token issuance, and inside parsed
// token claims.
type User struct {
	// UserID is the identifier embedded in issued tokens as the "sub" claim.
	UserID int64 `json:"-"`

	// Username is the login name embedded in issued tokens.
	Username string `json:"username"`
}
