// Package refreshtokens manages the server-stored refresh tokens: issuing,
// verify-and-touch, revocation and per-user listing. Records live in the KV
// store under composite keys "username:token".
package refreshtokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlebedev/authgate/internal/common"
	"github.com/mlebedev/authgate/internal/cryptox"
	"github.com/mlebedev/authgate/internal/logging"
	pb "github.com/mlebedev/authgate/internal/proto"
	"github.com/mlebedev/authgate/internal/server/kv"
	"github.com/mlebedev/authgate/internal/timex"
	"google.golang.org/protobuf/proto"
)

const (
	tokenLength = 15

	// Collisions on a 15-char alphanumeric value are astronomically
	// unlikely; the loop is bounded anyway.
	maxIssueAttempts = 5
)

type Registry struct {
	bucket kv.Bucket
	ttl    time.Duration // 0 = tokens never expire
	clock  timex.Clock
	logger logging.Logger
}

func NewRegistry(bucket kv.Bucket, ttl time.Duration, clock timex.Clock, logger logging.Logger) *Registry {
	return &Registry{
		bucket: bucket,
		ttl:    ttl,
		clock:  clock,
		logger: logger.With("module", "refreshtokens"),
	}
}

func key(username, token string) []byte {
	return []byte(username + common.KeySeparator + token)
}

// Issue generates a new refresh token for username and persists its record.
// The returned value is the raw token; the client must resend it together
// with the username on every exchange.
func (r *Registry) Issue(ctx context.Context, username, origin string) (string, error) {
	now := r.clock.Now().Unix()

	record := &pb.RefreshTokenRecord{
		Origin:     origin,
		CreatedAt:  now,
		LastUsedAt: now,
	}
	if r.ttl > 0 {
		record.ExpiresAt = r.clock.Now().Add(r.ttl).Unix()
	}
	value, err := proto.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("error encoding refresh token record: %w", err)
	}

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		token, err := cryptox.MakeRandString(tokenLength)
		if err != nil {
			return "", fmt.Errorf("error generating refresh token: %w", err)
		}

		err = r.bucket.PutIfAbsent(ctx, key(username, token), value)
		if errors.Is(err, common.ErrorConflict) {
			continue
		}
		if err != nil {
			return "", err
		}
		return token, nil
	}

	return "", common.ErrExhaustedRetries
}

// VerifyAndTouch checks that (username, token) names a live refresh token
// and atomically stamps its last-used time. Unknown, revoked and expired
// tokens all fail with common.ErrInvalidRefreshToken.
func (r *Registry) VerifyAndTouch(ctx context.Context, username, token string) error {
	now := r.clock.Now().Unix()

	return r.bucket.Update(ctx, key(username, token), func(current []byte, found bool) ([]byte, error) {
		if !found {
			return nil, common.ErrInvalidRefreshToken
		}

		record := &pb.RefreshTokenRecord{}
		if err := proto.Unmarshal(current, record); err != nil {
			return nil, fmt.Errorf("%w: refresh token record: %v", common.ErrorCorrupted, err)
		}

		if record.ExpiresAt != 0 && record.ExpiresAt < now {
			return nil, common.ErrInvalidRefreshToken
		}

		record.LastUsedAt = now
		next, err := proto.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("error encoding refresh token record: %w", err)
		}
		return next, nil
	})
}

// Revoke removes the token. Revoking an absent token is a no-op.
func (r *Registry) Revoke(ctx context.Context, username, token string) error {
	return r.bucket.Delete(ctx, key(username, token))
}

// List returns every refresh token owned by username, in store key order.
// Corrupted records are logged and skipped, never fabricated.
func (r *Registry) List(ctx context.Context, username string) ([]*RefreshToken, error) {
	prefix := []byte(username + common.KeySeparator)

	tokens := []*RefreshToken{}
	err := r.bucket.ScanPrefix(ctx, prefix, func(k, v []byte) error {
		record := &pb.RefreshTokenRecord{}
		if err := proto.Unmarshal(v, record); err != nil {
			r.logger.Error(ctx, "skipping corrupted refresh token record", "key", string(k))
			return nil
		}
		tokens = append(tokens, &RefreshToken{
			Token:      string(k[len(prefix):]),
			Origin:     record.Origin,
			CreatedAt:  record.CreatedAt,
			LastUsedAt: record.LastUsedAt,
			ExpiresAt:  record.ExpiresAt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
