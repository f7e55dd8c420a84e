package invites

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
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

func newTestRegistry() (*Registry, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	store := kv.NewMemoryStore()
	return NewRegistry(store.Bucket("invites"), clock, logging.Nop{}), clock
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	reg, clock := newTestRegistry()

	inv, err := reg.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	key, err := base64.RawURLEncoding.DecodeString(inv.Token)
	if err != nil {
		t.Fatalf("token is not base64url: %v", err)
	}
	if !strings.HasPrefix(string(key), "bob:") {
		t.Fatalf("decoded key %q must carry issuer prefix", key)
	}
	if len(string(key)) != len("bob:")+15 {
		t.Fatalf("unexpected key length: %q", key)
	}

	invites, err := reg.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(invites) != 1 {
		t.Fatalf("expected 1 invite, got %d", len(invites))
	}
	got := invites[0]
	if got.Token != inv.Token {
		t.Fatalf("token mismatch: got %q want %q", got.Token, inv.Token)
	}
	if got.CreatedAt != clock.now.Unix() {
		t.Fatalf("unexpected CreatedAt: %d", got.CreatedAt)
	}
	if got.Used() {
		t.Fatalf("fresh invite must not be used: %+v", got)
	}
}

func TestListScopedToIssuer(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry()

	if _, err := reg.Create(ctx, "bob"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := reg.Create(ctx, "bobby"); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	invites, err := reg.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(invites) != 1 {
		t.Fatalf("bob must see exactly his invite, got %d", len(invites))
	}
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()
	reg, clock := newTestRegistry()

	inv, err := reg.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	clock.Advance(time.Minute)
	if err := reg.Redeem(ctx, inv.Token, "alice"); err != nil {
		t.Fatalf("Redeem error: %v", err)
	}

	invites, err := reg.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	got := invites[0]
	if !got.Used() {
		t.Fatalf("invite must be marked used")
	}
	if got.UsedBy != "alice" {
		t.Fatalf("UsedBy mismatch: %q", got.UsedBy)
	}
	if got.UsedAt != clock.now.Unix() {
		t.Fatalf("unexpected UsedAt: %d", got.UsedAt)
	}

	if err := reg.Redeem(ctx, inv.Token, "carol"); !errors.Is(err, common.ErrInviteAlreadyUsed) {
		t.Fatalf("second redemption: want ErrInviteAlreadyUsed, got %v", err)
	}
}

func TestRedeemInvalid(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry()

	cases := map[string]string{
		"not base64":    "%%%",
		"no separator":  base64.RawURLEncoding.EncodeToString([]byte("nosuffix")),
		"unknown token": base64.RawURLEncoding.EncodeToString([]byte("bob:missing")),
	}
	for name, token := range cases {
		if err := reg.Redeem(ctx, token, "alice"); !errors.Is(err, common.ErrInvalidInvite) {
			t.Fatalf("%s: want ErrInvalidInvite, got %v", name, err)
		}
	}
}

func TestRedeemConcurrent(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry()

	inv, err := reg.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, user := range []string{"alice", "carol"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = reg.Redeem(ctx, inv.Token, user)
		}()
	}
	wg.Wait()

	var ok, used int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrInviteAlreadyUsed):
			used++
		default:
			t.Fatalf("unexpected redeem error: %v", err)
		}
	}
	if ok != 1 || used != 1 {
		t.Fatalf("exactly one redemption must win: ok=%d used=%d", ok, used)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry()

	inv, err := reg.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := reg.Delete(ctx, "alice", inv.Token); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("deleting another user's invite: want ErrorUnauthorized, got %v", err)
	}

	if err := reg.Delete(ctx, "bob", inv.Token); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	invites, err := reg.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(invites) != 0 {
		t.Fatalf("invite must be gone, got %d", len(invites))
	}

	// Already gone; deletion stays idempotent.
	if err := reg.Delete(ctx, "bob", inv.Token); err != nil {
		t.Fatalf("repeated Delete error: %v", err)
	}
}

func TestDeleteUsed(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry()

	inv, err := reg.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := reg.Redeem(ctx, inv.Token, "alice"); err != nil {
		t.Fatalf("Redeem error: %v", err)
	}

	if err := reg.Delete(ctx, "bob", inv.Token); !errors.Is(err, common.ErrInviteAlreadyUsed) {
		t.Fatalf("want ErrInviteAlreadyUsed, got %v", err)
	}
}
