package refreshtokens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mlebedev/authgate/internal/common"
	"github.com/mlebedev/authgate/internal/logging"
	"github.com/mlebedev/authgate/internal/server/kv"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRegistry(ttl time.Duration) (*Registry, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	store := kv.NewMemoryStore()
	return NewRegistry(store.Bucket("refresh_tokens"), ttl, clock, logging.Nop{}), clock
}

func TestIssueAndList(t *testing.T) {
	ctx := context.Background()
	reg, clock := newTestRegistry(0)

	token, err := reg.Issue(ctx, "alice", "10.0.0.1:1234")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if len(token) != 15 {
		t.Fatalf("expected token length 15, got %d", len(token))
	}

	tokens, err := reg.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	got := tokens[0]
	if got.Token != token {
		t.Fatalf("raw token mismatch: got %q want %q", got.Token, token)
	}
	if got.Origin != "10.0.0.1:1234" {
		t.Fatalf("origin mismatch: %q", got.Origin)
	}
	if got.CreatedAt != clock.now.Unix() || got.LastUsedAt != clock.now.Unix() {
		t.Fatalf("unexpected timestamps: %+v", got)
	}
	if got.ExpiresAt != 0 {
		t.Fatalf("ttl 0 must mean no expiry, got %d", got.ExpiresAt)
	}
}

func TestVerifyAndTouch_UpdatesLastUsed(t *testing.T) {
	ctx := context.Background()
	reg, clock := newTestRegistry(0)

	token, err := reg.Issue(ctx, "alice", "somewhere")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	clock.Advance(time.Hour)
	if err := reg.VerifyAndTouch(ctx, "alice", token); err != nil {
		t.Fatalf("VerifyAndTouch error: %v", err)
	}

	tokens, err := reg.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if tokens[0].LastUsedAt != clock.now.Unix() {
		t.Fatalf("last_used_at not touched: got %d want %d", tokens[0].LastUsedAt, clock.now.Unix())
	}
	if tokens[0].CreatedAt == tokens[0].LastUsedAt {
		t.Fatal("created_at must not move with touches")
	}
}

func TestVerifyAndTouch_UnknownToken(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(0)

	err := reg.VerifyAndTouch(ctx, "alice", "nosuchtoken1234")
	if !errors.Is(err, common.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestVerifyAndTouch_WrongUser(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(0)

	token, err := reg.Issue(ctx, "alice", "somewhere")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	err = reg.VerifyAndTouch(ctx, "bob", token)
	if !errors.Is(err, common.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestVerifyAndTouch_Expired(t *testing.T) {
	ctx := context.Background()
	reg, clock := newTestRegistry(24 * time.Hour)

	token, err := reg.Issue(ctx, "alice", "somewhere")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	clock.Advance(23 * time.Hour)
	if err := reg.VerifyAndTouch(ctx, "alice", token); err != nil {
		t.Fatalf("token must still be valid: %v", err)
	}

	clock.Advance(2 * time.Hour)
	err = reg.VerifyAndTouch(ctx, "alice", token)
	if !errors.Is(err, common.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for expired token, got %v", err)
	}
}

func TestRevoke_MakesTokenInvalid(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(0)

	token, err := reg.Issue(ctx, "alice", "somewhere")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if err := reg.Revoke(ctx, "alice", token); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
	err = reg.VerifyAndTouch(ctx, "alice", token)
	if !errors.Is(err, common.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after revoke, got %v", err)
	}

	// revoking again is a no-op
	if err := reg.Revoke(ctx, "alice", token); err != nil {
		t.Fatalf("Revoke of absent token must not fail: %v", err)
	}
}

func TestList_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(0)

	if _, err := reg.Issue(ctx, "bob", "a"); err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	// "bobby" shares a prefix substring with "bob"
	if _, err := reg.Issue(ctx, "bobby", "b"); err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tokens, err := reg.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected exactly bob's token, got %d", len(tokens))
	}
	if tokens[0].Origin != "a" {
		t.Fatalf("listed a foreign token: %+v", tokens[0])
	}
}

func TestList_SkipsCorruptedRecords(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	store := kv.NewMemoryStore()
	bucket := store.Bucket("refresh_tokens")
	reg := NewRegistry(bucket, 0, clock, logging.Nop{})

	if _, err := reg.Issue(ctx, "alice", "good"); err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	// protobuf garbage planted alongside the good record
	if err := bucket.Put(ctx, []byte("alice:garbagegarbage"), []byte{0xff, 0x01, 0x02}); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	tokens, err := reg.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Origin != "good" {
		t.Fatalf("corrupted record must be skipped, got %+v", tokens)
	}
}
