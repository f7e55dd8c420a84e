// Package invites manages single-use invite codes gating signup. An invite
// is keyed "issuer:suffix" in the KV store and travels externally as the
// base64url encoding of that key. Redemption flips unused→used exactly
// once; anyone holding a valid encoded invite may redeem it, issuer
// ownership is only enforced for deletion.
package invites

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mlebedev/authgate/internal/common"
	"github.com/mlebedev/authgate/internal/cryptox"
	"github.com/mlebedev/authgate/internal/logging"
	pb "github.com/mlebedev/authgate/internal/proto"
	"github.com/mlebedev/authgate/internal/server/kv"
	"github.com/mlebedev/authgate/internal/timex"
	"google.golang.org/protobuf/proto"
)

const (
	suffixLength      = 15
	maxCreateAttempts = 5
)

type Registry struct {
	bucket kv.Bucket
	clock  timex.Clock
	logger logging.Logger
}

func NewRegistry(bucket kv.Bucket, clock timex.Clock, logger logging.Logger) *Registry {
	return &Registry{
		bucket: bucket,
		clock:  clock,
		logger: logger.With("module", "invites"),
	}
}

// EncodeToken converts a store key into the opaque external token form.
func EncodeToken(key []byte) string {
	return base64.RawURLEncoding.EncodeToString(key)
}

func decodeToken(encoded string) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, common.ErrInvalidInvite
	}
	if !bytes.Contains(key, []byte(common.KeySeparator)) {
		return nil, common.ErrInvalidInvite
	}
	return key, nil
}

// Create issues a new unused invite for issuer. Key collisions retry with a
// fresh suffix, bounded to maxCreateAttempts.
func (r *Registry) Create(ctx context.Context, issuer string) (*Invite, error) {
	now := r.clock.Now().Unix()

	record := &pb.InviteRecord{CreatedAt: now}
	value, err := proto.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("error encoding invite record: %w", err)
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		suffix, err := cryptox.MakeRandString(suffixLength)
		if err != nil {
			return nil, fmt.Errorf("error generating invite suffix: %w", err)
		}
		key := []byte(issuer + common.KeySeparator + suffix)

		err = r.bucket.PutIfAbsent(ctx, key, value)
		if errors.Is(err, common.ErrorConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &Invite{Token: EncodeToken(key), CreatedAt: now}, nil
	}

	return nil, common.ErrExhaustedRetries
}

// List returns every invite issued by issuer, with reconstructed encoded
// tokens. Corrupted records are logged and skipped.
func (r *Registry) List(ctx context.Context, issuer string) ([]*Invite, error) {
	prefix := []byte(issuer + common.KeySeparator)

	invites := []*Invite{}
	err := r.bucket.ScanPrefix(ctx, prefix, func(k, v []byte) error {
		record := &pb.InviteRecord{}
		if err := proto.Unmarshal(v, record); err != nil {
			r.logger.Error(ctx, "skipping corrupted invite record", "key", string(k))
			return nil
		}
		invites = append(invites, &Invite{
			Token:     EncodeToken(k),
			CreatedAt: record.CreatedAt,
			UsedAt:    record.UsedAt,
			UsedBy:    record.UsedBy,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// Redeem marks the invite as used by redeemer. The unused check and the
// write happen in one atomic store operation, so two concurrent signups
// cannot both succeed on the same code. Errors: common.ErrInvalidInvite
// for unknown or undecodable tokens, common.ErrInviteAlreadyUsed for a
// second redemption.
func (r *Registry) Redeem(ctx context.Context, encodedToken, redeemer string) error {
	key, err := decodeToken(encodedToken)
	if err != nil {
		return err
	}
	now := r.clock.Now().Unix()

	return r.bucket.Update(ctx, key, func(current []byte, found bool) ([]byte, error) {
		if !found {
			return nil, common.ErrInvalidInvite
		}

		record := &pb.InviteRecord{}
		if err := proto.Unmarshal(current, record); err != nil {
			return nil, fmt.Errorf("%w: invite record: %v", common.ErrorCorrupted, err)
		}
		if record.UsedAt != 0 {
			return nil, common.ErrInviteAlreadyUsed
		}

		record.UsedAt = now
		record.UsedBy = redeemer
		next, err := proto.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("error encoding invite record: %w", err)
		}
		return next, nil
	})
}

// Delete removes an unused invite. The caller must be the issuer encoded
// in the token (common.ErrorUnauthorized otherwise); a used invite cannot
// be deleted (common.ErrInviteAlreadyUsed). Deleting an already absent
// invite is a no-op.
func (r *Registry) Delete(ctx context.Context, issuer, encodedToken string) error {
	key, err := decodeToken(encodedToken)
	if err != nil {
		return err
	}
	if !bytes.HasPrefix(key, []byte(issuer+common.KeySeparator)) {
		return common.ErrorUnauthorized
	}

	return r.bucket.Update(ctx, key, func(current []byte, found bool) ([]byte, error) {
		if !found {
			return nil, nil
		}

		record := &pb.InviteRecord{}
		if err := proto.Unmarshal(current, record); err != nil {
			return nil, fmt.Errorf("%w: invite record: %v", common.ErrorCorrupted, err)
		}
		if record.UsedAt != 0 {
			return nil, common.ErrInviteAlreadyUsed
		}
		return nil, nil
	})
}
