package invites

// Invite is the in-memory view of a stored invite code.
type Invite struct {
	// Token is the opaque encoded form handed to clients; it carries the
	// full store key (issuer and suffix).
	Token     string
	CreatedAt int64
	UsedAt    int64 // 0 = unused
	UsedBy    string
}

// Used reports whether the invite has been redeemed.
func (i *Invite) Used() bool { return i.UsedAt != 0 }
