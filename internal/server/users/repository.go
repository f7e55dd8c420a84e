package users

import (
	"context"
)

type Repository interface {
	// Create stores a new credential; common.ErrorConflict if the
	// username is already taken.
	Create(ctx context.Context, cred *Credential) error
	// GetDigest returns the stored password digest for username;
	// common.ErrorNotFound if no such account exists.
	GetDigest(ctx context.Context, username string) (string, error)
	// UpdateDigest replaces the digest of an existing account;
	// common.ErrorNotFound if no such account exists.
	UpdateDigest(ctx context.Context, username string, digest string) error
}
