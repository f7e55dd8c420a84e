package users

import (
	"context"

	"github.com/mlebedev/authgate/internal/common"
	"github.com/mlebedev/authgate/internal/server/kv"
)

// KVRepository stores credentials in a KV bucket, keyed by username with
// the encoded password digest as the value.
type KVRepository struct {
	bucket kv.Bucket
}

var _ Repository = (*KVRepository)(nil)

func NewKVRepository(bucket kv.Bucket) *KVRepository {
	return &KVRepository{bucket: bucket}
}

func (r *KVRepository) Create(ctx context.Context, cred *Credential) error {
	return r.bucket.PutIfAbsent(ctx, []byte(cred.Username), []byte(cred.Digest))
}

func (r *KVRepository) GetDigest(ctx context.Context, username string) (string, error) {
	v, err := r.bucket.Get(ctx, []byte(username))
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (r *KVRepository) UpdateDigest(ctx context.Context, username string, digest string) error {
	return r.bucket.Update(ctx, []byte(username), func(current []byte, found bool) ([]byte, error) {
		if !found {
			return nil, common.ErrorNotFound
		}
		return []byte(digest), nil
	})
}
