package contract

import "badge_gallery/sdk"

// -----------------------------------------------------------------------------
// Escrow Asset
// -----------------------------------------------------------------------------

// EscrowAsset is the single asset every deposit, fee and refund is settled in.
const EscrowAsset = sdk.AssetHive

// -----------------------------------------------------------------------------
// Recognized Tags
// -----------------------------------------------------------------------------

const (
	// TagBadgeCreate marks proposals carrying a badge creation action.
	TagBadgeCreate = "badge_create"
	// TagBadgeExtend marks proposals carrying a badge extension action.
	TagBadgeExtend = "badge_extend"
)

// -----------------------------------------------------------------------------
// Time
// -----------------------------------------------------------------------------

const (
	// NanosPerSecond converts host timestamps; all durations are nanoseconds.
	NanosPerSecond uint64 = 1_000_000_000
	// OneDay is the billing unit for duration pricing.
	OneDay uint64 = NanosPerSecond * 60 * 60 * 24
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxDescriptionLength limits proposal and badge description size.
	MaxDescriptionLength = 1000
	// MaxBadgeIDLength limits badge id keys so storage keys stay bounded.
	MaxBadgeIDLength = 128
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kOwnership stores the current/proposed authority pair.
	kOwnership byte = 0x01
	// kLedgerConfig stores the ledger's optional default proposal duration.
	kLedgerConfig byte = 0x02
	// kLedgerTotals tracks the two running deposit aggregates.
	kLedgerTotals byte = 0x03
	// kTagSet stores the recognized tag list.
	kTagSet byte = 0x04
	// kProposalCount holds the dense proposal counter (next id).
	kProposalCount byte = 0x05
	// kProposalMeta contains encoded Proposal records keyed by id.
	kProposalMeta byte = 0x10
	// kBadgeMeta contains encoded Badge records keyed by badge id.
	kBadgeMeta byte = 0x20
	// kBadgeIndex stores the badge id list for iteration.
	kBadgeIndex byte = 0x21
	// kBadgeConfig stores duration pricing configuration.
	kBadgeConfig byte = 0x22
)
