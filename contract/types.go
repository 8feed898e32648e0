package contract

import "badge_gallery/sdk"

// -----------------------------------------------------------------------------
// Proposal Ledger
// -----------------------------------------------------------------------------

// ProposalStatus tracks where a proposal sits in its lifecycle. A proposal is
// created Pending and moves exactly once into one of the terminal states.
type ProposalStatus uint8

const (
	StatusPending ProposalStatus = iota + 1
	StatusAccepted
	StatusRejected
	StatusRescinded
)

func (s ProposalStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	case StatusRescinded:
		return "rescinded"
	default:
		return "unknown"
	}
}

// Resolved reports whether the status is terminal for authority review.
// Rescinded counts as resolved even though the author caused it.
func (s ProposalStatus) Resolved() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusRescinded
}

// Proposal is one escrowed ledger entry. The payload Msg is opaque to the
// ledger itself; only the hook interprets it. Deposit holds what remains in
// escrow after the storage fee was taken out of the attached payment.
type Proposal[T any] struct {
	ID          uint64
	Author      sdk.Address
	Description string
	Tag         string
	Msg         *T
	Deposit     sdk.Amount
	Status      ProposalStatus
	CreatedAt   uint64
	Duration    *uint64
	ResolvedAt  *uint64
}

// IsExpired reports whether the review window has passed. Proposals with no
// duration never expire. Overflow on the deadline clamps to never-expiring.
func (p *Proposal[T]) IsExpired(now uint64) bool {
	if p.Duration == nil {
		return false
	}
	deadline, ok := addU64(p.CreatedAt, *p.Duration)
	if !ok {
		return false
	}
	return deadline < now
}

// ProposalSubmission is the caller-supplied half of a new proposal. Deposit
// declares the stake to escrow; the attached payment must cover it plus the
// storage fee. Duration is a request the ledger clamps against its default.
type ProposalSubmission[T any] struct {
	Description string
	Tag         string
	Msg         *T
	Deposit     sdk.Amount
	Duration    *uint64
}

// LedgerTotals carries the two running deposit aggregates. Escrowed counts
// every non-rescinded proposal's deposit; Accepted counts only accepted ones.
type LedgerTotals struct {
	Escrowed sdk.Amount
	Accepted sdk.Amount
}

// -----------------------------------------------------------------------------
// Badge Domain
// -----------------------------------------------------------------------------

// BadgeCreate asks for a brand new badge. StartAt defaults to the commit
// block time when nil; the committed badge always carries a finite duration.
type BadgeCreate struct {
	ID          string
	GroupID     string
	Name        string
	Description string
	StartAt     *uint64
	Duration    uint64
}

// BadgeExtend lengthens the active window of an existing finite badge.
type BadgeExtend struct {
	ID       string
	Duration uint64
}

// BadgeAction is the payload carried by badge proposals. Exactly one variant
// is set and it must agree with the proposal tag.
type BadgeAction struct {
	Create *BadgeCreate
	Extend *BadgeExtend
}

// Badge is one committed gallery entry. Duration nil means indefinite.
type Badge struct {
	ID          string
	GroupID     string
	Name        string
	Description string
	IsEnabled   bool
	CreatedAt   uint64
	StartAt     uint64
	Duration    *uint64
}

// IsExpired reports whether the badge's lifetime has fully passed, measured
// from creation. Indefinite badges never expire; an overflowing end clamps
// to never.
func (b *Badge) IsExpired(now uint64) bool {
	if b.Duration == nil {
		return false
	}
	end, ok := addU64(b.CreatedAt, *b.Duration)
	if !ok {
		return false
	}
	return end < now
}

// BadgeConfig prices badge actions. RatePerDay is charged per started day of
// requested duration, MinCreationDeposit floors every creation regardless of
// length, MaxActiveDuration caps how far into the future a badge may run.
type BadgeConfig struct {
	RatePerDay         sdk.Amount
	MaxActiveDuration  uint64
	MinCreationDeposit sdk.Amount
}
