package users

// Credential is a stored login record: the username and the encoded
// argon2id digest of the password.
type Credential struct {
	Username string
	Digest   string
}
