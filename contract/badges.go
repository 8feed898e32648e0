package contract

import (
	"strings"

	"badge_gallery/sdk"
)

// BadgeBook is the domain half of the contract: the ledger hook that turns
// accepted proposals into badge records, plus the authority's direct
// overrides on the badge store and its pricing.
type BadgeBook struct {
	auth AuthorityGate
}

func NewBadgeBook(auth AuthorityGate) *BadgeBook {
	return &BadgeBook{auth: auth}
}

// -----------------------------------------------------------------------------
// Ledger Hook
// -----------------------------------------------------------------------------

// OnTransition validates badge actions when a proposal enters Pending and
// again when it is Accepted, committing the effect only on acceptance. The
// double validation matters: the world can change between submit and accept,
// so an id grabbed in the meantime or a window that since closed voids the
// acceptance. Proposals under foreign tags pass through untouched.
func (b *BadgeBook) OnTransition(p *Proposal[BadgeAction]) error {
	if p.Tag != TagBadgeCreate && p.Tag != TagBadgeExtend {
		return nil
	}
	if p.Status != StatusPending && p.Status != StatusAccepted {
		return nil
	}
	if p.Msg == nil {
		return ErrMissingPayload
	}
	commit := p.Status == StatusAccepted
	now := sdk.Now()

	switch p.Tag {
	case TagBadgeCreate:
		if p.Msg.Create == nil {
			return ErrTagMismatch
		}
		return b.applyCreate(p.Msg.Create, p.Deposit, now, commit)
	case TagBadgeExtend:
		if p.Msg.Extend == nil {
			return ErrTagMismatch
		}
		return b.applyExtend(p.Msg.Extend, p.Deposit, now, commit)
	}
	return nil
}

func (b *BadgeBook) applyCreate(c *BadgeCreate, deposit sdk.Amount, now uint64, commit bool) error {
	if !validBadgeID(c.ID) {
		return ErrInvalidBadgeID
	}
	if len(c.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if _, exists := loadBadge(c.ID); exists {
		return ErrDuplicateBadgeID
	}

	start := now
	if c.StartAt != nil {
		start = *c.StartAt
	}
	if end, ok := addU64(start, c.Duration); ok && end <= now {
		return ErrAlreadyEnded
	}

	cfg := loadBadgeConfig()
	if c.Duration > cfg.MaxActiveDuration {
		return ErrDurationTooLong
	}
	if deposit < cfg.MinCreationDeposit {
		return depositTooLow(cfg.MinCreationDeposit, deposit)
	}
	price, err := durationPrice(c.Duration, cfg.RatePerDay)
	if err != nil {
		return err
	}
	if deposit < price {
		return depositTooLow(price, deposit)
	}

	if !commit {
		return nil
	}
	duration := c.Duration
	badge := Badge{
		ID:          c.ID,
		GroupID:     c.GroupID,
		Name:        c.Name,
		Description: c.Description,
		IsEnabled:   true,
		CreatedAt:   now,
		StartAt:     start,
		Duration:    &duration,
	}
	saveBadge(&badge)
	saveBadgeIndex(append(loadBadgeIndex(), badge.ID))
	emitBadge("create", badge.ID)
	return nil
}

func (b *BadgeBook) applyExtend(e *BadgeExtend, deposit sdk.Amount, now uint64, commit bool) error {
	badge, exists := loadBadge(e.ID)
	if !exists {
		return ErrBadgeNotFound
	}
	if badge.Duration == nil {
		return ErrCannotExtendIndefinite
	}

	cfg := loadBadgeConfig()
	end, ok := addU64(badge.StartAt, *badge.Duration)
	if ok {
		end, ok = addU64(end, e.Duration)
	}
	if !ok {
		// Extending past the representable range can never fit under the cap.
		return ErrDurationTooLong
	}
	remaining := end - minU64(end, now)
	if remaining > cfg.MaxActiveDuration {
		return ErrDurationTooLong
	}
	price, err := durationPrice(e.Duration, cfg.RatePerDay)
	if err != nil {
		return err
	}
	if deposit < price {
		return depositTooLow(price, deposit)
	}

	if !commit {
		return nil
	}
	extended, ok := addU64(*badge.Duration, e.Duration)
	if !ok {
		return ErrAmountOverflow
	}
	badge.Duration = &extended
	saveBadge(&badge)
	emitBadge("extend", badge.ID)
	return nil
}

func validBadgeID(id string) bool {
	return id != "" && len(id) <= MaxBadgeIDLength && !strings.Contains(id, "|")
}

// -----------------------------------------------------------------------------
// Authority Overrides
// -----------------------------------------------------------------------------

func (b *BadgeBook) requireAuthority(caller sdk.Address) error {
	if !b.auth.IsAuthority(caller) {
		return ErrNotAuthority
	}
	return nil
}

// SetEnabled toggles a badge's public visibility without touching its window.
func (b *BadgeBook) SetEnabled(caller sdk.Address, id string, enabled bool) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := b.requireAuthority(caller); err != nil {
		return err
	}
	badge, exists := loadBadge(id)
	if !exists {
		return ErrBadgeNotFound
	}
	badge.IsEnabled = enabled
	saveBadge(&badge)
	if enabled {
		emitBadge("enable", id)
	} else {
		emitBadge("disable", id)
	}
	return nil
}

// Insert places a badge directly into the store, bypassing the proposal flow
// and its pricing. The record is taken verbatim apart from structural checks.
func (b *BadgeBook) Insert(caller sdk.Address, badge Badge) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := b.requireAuthority(caller); err != nil {
		return err
	}
	if !validBadgeID(badge.ID) {
		return ErrInvalidBadgeID
	}
	if len(badge.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if _, exists := loadBadge(badge.ID); exists {
		return ErrDuplicateBadgeID
	}
	saveBadge(&badge)
	saveBadgeIndex(append(loadBadgeIndex(), badge.ID))
	emitBadge("insert", badge.ID)
	return nil
}

// Remove deletes a badge outright.
func (b *BadgeBook) Remove(caller sdk.Address, id string) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := b.requireAuthority(caller); err != nil {
		return err
	}
	if _, exists := loadBadge(id); !exists {
		return ErrBadgeNotFound
	}
	deleteBadge(id)
	index := loadBadgeIndex()
	for i, existing := range index {
		if existing == id {
			index = append(index[:i], index[i+1:]...)
			break
		}
	}
	saveBadgeIndex(index)
	emitBadge("remove", id)
	return nil
}

// SetRatePerDay prices future badge durations. Must stay positive so every
// finite window carries a stake.
func (b *BadgeBook) SetRatePerDay(caller sdk.Address, rate sdk.Amount) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := b.requireAuthority(caller); err != nil {
		return err
	}
	if rate == 0 {
		return ErrNonPositiveValue
	}
	cfg := loadBadgeConfig()
	cfg.RatePerDay = rate
	saveBadgeConfig(cfg)
	emitBadgeConfig(cfg)
	return nil
}

// SetMaxActiveDuration caps how far into the future any badge may run.
func (b *BadgeBook) SetMaxActiveDuration(caller sdk.Address, d uint64) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := b.requireAuthority(caller); err != nil {
		return err
	}
	if d == 0 {
		return ErrNonPositiveValue
	}
	cfg := loadBadgeConfig()
	cfg.MaxActiveDuration = d
	saveBadgeConfig(cfg)
	emitBadgeConfig(cfg)
	return nil
}

// SetMinCreationDeposit floors the stake on badge creation. Zero is allowed;
// the per-day rate still applies.
func (b *BadgeBook) SetMinCreationDeposit(caller sdk.Address, min sdk.Amount) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := b.requireAuthority(caller); err != nil {
		return err
	}
	cfg := loadBadgeConfig()
	cfg.MinCreationDeposit = min
	saveBadgeConfig(cfg)
	emitBadgeConfig(cfg)
	return nil
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// Get returns a badge by id regardless of enabled or expired state, so
// authority tooling can inspect hidden entries.
func (b *BadgeBook) Get(id string) (Badge, error) {
	badge, exists := loadBadge(id)
	if !exists {
		return Badge{}, ErrBadgeNotFound
	}
	return badge, nil
}

// Active returns the public gallery: enabled badges that have not expired.
func (b *BadgeBook) Active() []Badge {
	now := sdk.Now()
	ids := loadBadgeIndex()
	out := make([]Badge, 0, len(ids))
	for _, id := range ids {
		badge, exists := loadBadge(id)
		if !exists {
			continue
		}
		if badge.IsEnabled && !badge.IsExpired(now) {
			out = append(out, badge)
		}
	}
	return out
}

// Config returns the current pricing configuration.
func (b *BadgeBook) Config() BadgeConfig {
	return loadBadgeConfig()
}
