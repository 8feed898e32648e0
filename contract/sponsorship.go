package contract

import "badge_gallery/sdk"

// The sponsorship ledger is the escrow kernel. It knows nothing about badges:
// payloads are opaque, domain rules live behind the Hook. Every mutation is a
// single synchronous transition; value only ever leaves custody after all
// checks passed and state is persisted.

// Hook observes every proposal transition. It sees the proposal in its target
// state before that state is persisted; returning an error voids the whole
// transition. On Pending it pre-validates, on Accepted it commits the domain
// effect.
type Hook[T any] interface {
	OnTransition(p *Proposal[T]) error
}

// AuthorityGate answers whether an address may resolve proposals and change
// configuration.
type AuthorityGate interface {
	IsAuthority(a sdk.Address) bool
}

// Sponsorship ties the ledger to its authority, payload codec and domain hook.
type Sponsorship[T any] struct {
	auth  AuthorityGate
	codec PayloadCodec[T]
	hook  Hook[T]
}

func NewSponsorship[T any](auth AuthorityGate, codec PayloadCodec[T], hook Hook[T]) *Sponsorship[T] {
	return &Sponsorship[T]{auth: auth, codec: codec, hook: hook}
}

// requireConfirmation gates privileged mutations behind an attached payment
// of exactly one unit. Checked before any other validation.
func requireConfirmation() error {
	if sdk.AttachedPayment() != 1 {
		return ErrConfirmationRequired
	}
	return nil
}

func (s *Sponsorship[T]) requireAuthority(caller sdk.Address) error {
	if !s.auth.IsAuthority(caller) {
		return ErrNotAuthority
	}
	return nil
}

func (s *Sponsorship[T]) loadProposal(id uint64) (Proposal[T], error) {
	raw := sdk.StateGetObject(proposalKey(id))
	if raw == nil {
		return Proposal[T]{}, ErrProposalNotFound
	}
	return unmarshalProposal(s.codec, *raw)
}

func (s *Sponsorship[T]) saveProposal(p *Proposal[T]) error {
	raw, err := marshalProposal(s.codec, p)
	if err != nil {
		return err
	}
	sdk.StateSetObject(proposalKey(p.ID), raw)
	return nil
}

// -----------------------------------------------------------------------------
// Submit
// -----------------------------------------------------------------------------

// Submit escrows a new Pending proposal. The attached payment must cover the
// storage fee for the record plus the declared deposit; anything above that
// is refunded in the same call. The record is written before fee metering so
// the byte delta reflects the real footprint; every failure after that point
// removes the record again, leaving no trace.
func (s *Sponsorship[T]) Submit(sub ProposalSubmission[T]) (Proposal[T], error) {
	payment := sdk.AttachedPayment()
	if payment < 1 {
		return Proposal[T]{}, ErrDepositRequired
	}
	if !tagExists(loadTags(), sub.Tag) {
		return Proposal[T]{}, ErrUnknownTag
	}
	if len(sub.Description) > MaxDescriptionLength {
		return Proposal[T]{}, ErrDescriptionTooLong
	}

	count := proposalCount()
	p := Proposal[T]{
		ID:          count,
		Author:      sdk.Caller(),
		Description: sub.Description,
		Tag:         sub.Tag,
		Msg:         sub.Msg,
		Deposit:     sub.Deposit,
		Status:      StatusPending,
		CreatedAt:   sdk.Now(),
		Duration:    mergeDuration(defaultDuration(), sub.Duration),
	}

	bytesBefore := sdk.StorageBytesUsed()
	if err := s.saveProposal(&p); err != nil {
		return Proposal[T]{}, err
	}
	setProposalCount(count + 1)
	bytesAfter := sdk.StorageBytesUsed()

	rollback := func() {
		sdk.StateDeleteObject(proposalKey(p.ID))
		if count == 0 {
			sdk.StateDeleteObject(scalarKey(kProposalCount))
		} else {
			setProposalCount(count)
		}
	}

	fee, ok := mulU64(bytesAfter-bytesBefore, uint64(sdk.StorageBytePrice()))
	if !ok {
		rollback()
		return Proposal[T]{}, ErrAmountOverflow
	}
	required, err := addAmount(sdk.Amount(fee), sub.Deposit)
	if err != nil {
		rollback()
		return Proposal[T]{}, err
	}
	if payment < required {
		rollback()
		return Proposal[T]{}, &InsufficientDepositError{Required: required, Received: payment}
	}

	if err := s.hook.OnTransition(&p); err != nil {
		rollback()
		return Proposal[T]{}, err
	}

	totals := loadTotals()
	totals.Escrowed, err = addAmount(totals.Escrowed, sub.Deposit)
	if err != nil {
		rollback()
		return Proposal[T]{}, err
	}
	saveTotals(totals)

	if excess := payment - required; excess > 0 {
		sdk.Transfer(p.Author, excess, EscrowAsset)
		emitRefund(p.Author, excess)
	}
	emitProposalSubmitted(&p)
	return p, nil
}

// mergeDuration clamps the requested review window against the configured
// default. Either side absent leaves the other standing; both absent means
// the proposal never expires.
func mergeDuration(configured, requested *uint64) *uint64 {
	switch {
	case configured == nil:
		return requested
	case requested == nil:
		return configured
	default:
		d := minU64(*configured, *requested)
		return &d
	}
}

// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// Accept resolves a pending proposal in the author's favor. The hook runs on
// the accepted copy first, so a domain commit that fails (a badge id taken in
// the meantime, a window since ended) voids the acceptance entirely.
func (s *Sponsorship[T]) Accept(caller sdk.Address, id uint64) error {
	return s.resolve(caller, id, StatusAccepted)
}

// Reject resolves a pending proposal against the author. The deposit stays
// escrowed; the author reclaims it through Rescind.
func (s *Sponsorship[T]) Reject(caller sdk.Address, id uint64) error {
	return s.resolve(caller, id, StatusRejected)
}

func (s *Sponsorship[T]) resolve(caller sdk.Address, id uint64, target ProposalStatus) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := s.requireAuthority(caller); err != nil {
		return err
	}
	p, err := s.loadProposal(id)
	if err != nil {
		return err
	}
	if p.Status.Resolved() {
		return ErrAlreadyResolved
	}
	now := sdk.Now()
	if p.IsExpired(now) {
		return ErrExpired
	}

	p.Status = target
	p.ResolvedAt = &now

	// Fallible totals arithmetic runs before anything is persisted; a
	// failure voids the transition entirely.
	totals := loadTotals()
	if target == StatusAccepted {
		totals.Accepted, err = addAmount(totals.Accepted, p.Deposit)
		if err != nil {
			return err
		}
	}
	if err := s.hook.OnTransition(&p); err != nil {
		return err
	}
	if err := s.saveProposal(&p); err != nil {
		return err
	}
	if target == StatusAccepted {
		saveTotals(totals)
	}
	emitProposalResolved(&p)
	return nil
}

// Rescind lets the author reclaim the deposit of a proposal the authority
// rejected or never acted on. Deliberately ungated by expiry: an expired
// Pending proposal is exactly the case rescission exists for.
func (s *Sponsorship[T]) Rescind(caller sdk.Address, id uint64) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	p, err := s.loadProposal(id)
	if err != nil {
		return err
	}
	if p.Status != StatusPending && p.Status != StatusRejected {
		return ErrCannotRescind
	}
	if caller != p.Author {
		return ErrNotAuthor
	}

	now := sdk.Now()
	p.Status = StatusRescinded
	p.ResolvedAt = &now

	totals := loadTotals()
	totals.Escrowed, err = subAmount(totals.Escrowed, p.Deposit)
	if err != nil {
		return err
	}
	if err := s.hook.OnTransition(&p); err != nil {
		return err
	}
	if err := s.saveProposal(&p); err != nil {
		return err
	}
	saveTotals(totals)

	if p.Deposit > 0 {
		sdk.Transfer(p.Author, p.Deposit, EscrowAsset)
		emitRefund(p.Author, p.Deposit)
	}
	emitProposalResolved(&p)
	return nil
}

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// AddTags extends the recognized tag set. Unknown payload tags stay
// unsubmittable, so widening the set is how new proposal kinds go live.
func (s *Sponsorship[T]) AddTags(caller sdk.Address, tags []string) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := s.requireAuthority(caller); err != nil {
		return err
	}
	existing := loadTags()
	for _, tag := range tags {
		if tag == "" || containsPipe(tag) {
			return ErrUnknownTag
		}
		if tagExists(existing, tag) {
			continue
		}
		existing = append(existing, tag)
		emitTagAdded(tag)
	}
	saveTags(existing)
	return nil
}

// RemoveTags shrinks the tag set. Existing proposals keep their tag; only new
// submissions are affected.
func (s *Sponsorship[T]) RemoveTags(caller sdk.Address, tags []string) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := s.requireAuthority(caller); err != nil {
		return err
	}
	existing := loadTags()
	for _, tag := range tags {
		idx := -1
		for i, t := range existing {
			if t == tag {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrUnknownTag
		}
		existing = append(existing[:idx], existing[idx+1:]...)
		emitTagRemoved(tag)
	}
	saveTags(existing)
	return nil
}

// SetDefaultDuration caps the review window of future submissions.
func (s *Sponsorship[T]) SetDefaultDuration(caller sdk.Address, d uint64) error {
	if err := requireConfirmation(); err != nil {
		return err
	}
	if err := s.requireAuthority(caller); err != nil {
		return err
	}
	if d == 0 {
		return ErrNonPositiveValue
	}
	setDefaultDurationState(d)
	emitDefaultDuration(d)
	return nil
}

func containsPipe(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// Proposals returns every ledger entry in id order.
func (s *Sponsorship[T]) Proposals() ([]Proposal[T], error) {
	count := proposalCount()
	out := make([]Proposal[T], 0, count)
	for id := uint64(0); id < count; id++ {
		p, err := s.loadProposal(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Pending returns proposals still awaiting resolution and inside their review
// window. Expired entries are reported by Expired instead.
func (s *Sponsorship[T]) Pending() ([]Proposal[T], error) {
	now := sdk.Now()
	return s.filter(func(p *Proposal[T]) bool {
		return p.Status == StatusPending && !p.IsExpired(now)
	})
}

// Expired returns unresolved proposals whose review window has passed.
func (s *Sponsorship[T]) Expired() ([]Proposal[T], error) {
	now := sdk.Now()
	return s.filter(func(p *Proposal[T]) bool {
		return p.Status == StatusPending && p.IsExpired(now)
	})
}

// ByStatus returns proposals resolved into the given status.
func (s *Sponsorship[T]) ByStatus(status ProposalStatus) ([]Proposal[T], error) {
	return s.filter(func(p *Proposal[T]) bool { return p.Status == status })
}

func (s *Sponsorship[T]) filter(keep func(*Proposal[T]) bool) ([]Proposal[T], error) {
	all, err := s.Proposals()
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Get returns the proposal with the given id.
func (s *Sponsorship[T]) Get(id uint64) (Proposal[T], error) {
	return s.loadProposal(id)
}

// Tags returns the recognized tag set.
func (s *Sponsorship[T]) Tags() []string {
	return loadTags()
}

// Totals returns the running deposit aggregates.
func (s *Sponsorship[T]) Totals() LedgerTotals {
	return loadTotals()
}

// DefaultDuration returns the configured review window cap, nil when unset.
func (s *Sponsorship[T]) DefaultDuration() *uint64 {
	return defaultDuration()
}
