package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates JWTs (HS256). Access and refresh tokens
// carry the username as subject plus the user id; a token_type claim keeps
// the two from being interchangeable.
type TokenIssuer interface {
	IssueAccessToken(username, userID string, expiresInSeconds int64) (string, error)
	IssueRefreshToken(username, userID string, expiresInSeconds int64) (string, error)
	ValidateAccessToken(tokenString string) (username, userID string, err error)
	ValidateRefreshToken(tokenString string) (username, userID string, err error)
}
