package contract

import (
	"strings"

	"badge_gallery/sdk"
)

// Two-phase authority handoff. The current authority proposes a successor,
// the successor accepts under their own key, so a typo in the target address
// cannot strand the contract. Renouncing leaves the contract without any
// authority permanently.
//
// The record is "current|proposed"; either side may be empty.

// Ownership reads the persisted authority pair on demand; it carries no
// state of its own so every call sees the latest handoff.
type Ownership struct{}

func loadOwnership() (current, proposed sdk.Address, ok bool) {
	raw := sdk.StateGetObject(scalarKey(kOwnership))
	if raw == nil {
		return "", "", false
	}
	parts := strings.SplitN(*raw, "|", 2)
	if len(parts) != 2 {
		sdk.Abort("corrupt ownership record")
	}
	return sdk.Address(parts[0]), sdk.Address(parts[1]), true
}

func saveOwnership(current, proposed sdk.Address) {
	sdk.StateSetObject(scalarKey(kOwnership), current.String()+"|"+proposed.String())
}

// Initialize seats the first authority. Callable once.
func (Ownership) Initialize(owner sdk.Address) error {
	if _, _, ok := loadOwnership(); ok {
		return ErrAlreadyInitialized
	}
	if !owner.IsValid() || strings.Contains(owner.String(), "|") {
		return ErrNotAuthority
	}
	saveOwnership(owner, "")
	return nil
}

// Current returns the seated authority, empty when renounced.
func (Ownership) Current() (sdk.Address, error) {
	current, _, ok := loadOwnership()
	if !ok {
		return "", ErrNotInitialized
	}
	return current, nil
}

// IsAuthority reports whether a is the seated authority. After renunciation
// no address passes this check.
func (Ownership) IsAuthority(a sdk.Address) bool {
	current, _, ok := loadOwnership()
	return ok && current != "" && a == current
}

// Propose starts a handoff towards next. Re-proposing overwrites any pending
// handoff, proposing the empty address cancels it.
func (o Ownership) Propose(caller, next sdk.Address) error {
	current, _, ok := loadOwnership()
	if !ok {
		return ErrNotInitialized
	}
	if current == "" || caller != current {
		return ErrNotAuthority
	}
	if next != "" && (!next.IsValid() || strings.Contains(next.String(), "|")) {
		return ErrNotProposedAuthority
	}
	saveOwnership(current, next)
	return nil
}

// Accept completes a pending handoff. Only the proposed successor may call.
func (o Ownership) Accept(caller sdk.Address) error {
	_, proposed, ok := loadOwnership()
	if !ok {
		return ErrNotInitialized
	}
	if proposed == "" || caller != proposed {
		return ErrNotProposedAuthority
	}
	saveOwnership(proposed, "")
	return nil
}

// Renounce permanently removes the authority. Any pending handoff dies with
// it; privileged operations fail from here on.
func (o Ownership) Renounce(caller sdk.Address) error {
	current, _, ok := loadOwnership()
	if !ok {
		return ErrNotInitialized
	}
	if current == "" || caller != current {
		return ErrNotAuthority
	}
	saveOwnership("", "")
	return nil
}
