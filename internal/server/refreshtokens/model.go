package refreshtokens

// RefreshToken is the in-memory view of a stored refresh token, produced
// per-call and discarded after the response is built.
type RefreshToken struct {
	// Token is the raw token value, without the username prefix of the
	// store key.
	Token      string
	Origin     string
	CreatedAt  int64
	LastUsedAt int64
	ExpiresAt  int64
}
