package contract

import (
	"fmt"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"badge_gallery/sdk"
)

// Entry points for the host. Each takes the raw JSON payload the caller
// attached and returns a JSON response; failures abort the call. The wasm
// shims at the repo root bind these to the exported symbol names.

var ownership = Ownership{}

func ledger() *Sponsorship[BadgeAction] {
	return NewSponsorship[BadgeAction](ownership, badgeActionCodec{}, NewBadgeBook(ownership))
}

func badgeBook() *BadgeBook {
	return NewBadgeBook(ownership)
}

func lexPayload(payload *string) *jlexer.Lexer {
	raw := "{}"
	if payload != nil && *payload != "" {
		raw = *payload
	}
	return &jlexer.Lexer{Data: []byte(raw)}
}

func finishPayload(in *jlexer.Lexer) {
	in.Consumed()
	abortOnError(in.Error())
}

// -----------------------------------------------------------------------------
// Init
// -----------------------------------------------------------------------------

// InitContract seats the authority, seeds the two badge tags and prices the
// gallery. Callable exactly once, right after deploy.
// Example payload: {"owner":"hive:alice","rate_per_day":"10","max_active_duration":"31536000000000000","min_creation_deposit":"5"}
func InitContract(payload *string) *string {
	var owner sdk.Address
	var cfg BadgeConfig
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "owner":
			owner = sdk.Address(in.String())
		case "rate_per_day":
			cfg.RatePerDay = sdk.Amount(in.Uint64Str())
		case "max_active_duration":
			cfg.MaxActiveDuration = in.Uint64Str()
		case "min_creation_deposit":
			cfg.MinCreationDeposit = sdk.Amount(in.Uint64Str())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)

	if cfg.RatePerDay == 0 || cfg.MaxActiveDuration == 0 {
		abortOnError(ErrNonPositiveValue)
	}
	abortOnError(ownership.Initialize(owner))
	saveBadgeConfig(cfg)
	saveTags([]string{TagBadgeCreate, TagBadgeExtend})
	emitOwnership("init", owner)
	emitBadgeConfig(cfg)
	return respondOK()
}

// -----------------------------------------------------------------------------
// Proposals
// -----------------------------------------------------------------------------

// ProposalsSubmit escrows a new proposal and returns the stored record.
// Example payload: {"tag":"badge_create","description":"spring drive","deposit":"120","duration":"604800000000000","msg":{"create":{"id":"spring-24","group_id":"events","name":"Spring Drive","description":"","start_at":null,"duration":"604800000000000"}}}
func ProposalsSubmit(payload *string) *string {
	var sub ProposalSubmission[BadgeAction]
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "tag":
			sub.Tag = in.String()
		case "description":
			sub.Description = in.String()
		case "deposit":
			sub.Deposit = sdk.Amount(in.Uint64Str())
		case "duration":
			sub.Duration = readOptU64(in)
		case "msg":
			if in.IsNull() {
				in.Skip()
			} else {
				sub.Msg = badgeActionCodec{}.DecodePayload(in)
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)

	p, err := ledger().Submit(sub)
	abortOnError(err)
	return respond(marshalProposal[BadgeAction](badgeActionCodec{}, &p))
}

// ProposalsAccept resolves a pending proposal in favor and commits its action.
// Example payload: {"id":"0"}
func ProposalsAccept(payload *string) *string {
	abortOnError(ledger().Accept(sdk.Caller(), decodeIDArg(payload)))
	return respondOK()
}

// ProposalsReject resolves a pending proposal against the author.
// Example payload: {"id":"0"}
func ProposalsReject(payload *string) *string {
	abortOnError(ledger().Reject(sdk.Caller(), decodeIDArg(payload)))
	return respondOK()
}

// ProposalsRescind returns an unaccepted proposal's deposit to its author.
// Example payload: {"id":"0"}
func ProposalsRescind(payload *string) *string {
	abortOnError(ledger().Rescind(sdk.Caller(), decodeIDArg(payload)))
	return respondOK()
}

// ProposalsList returns proposals, optionally filtered by lifecycle state.
// Example payload: {"status":"pending"} (also all/accepted/rejected/rescinded/expired)
func ProposalsList(payload *string) *string {
	status := "all"
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if key == "status" {
			status = in.String()
		} else {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)

	l := ledger()
	var list []Proposal[BadgeAction]
	var err error
	switch status {
	case "all":
		list, err = l.Proposals()
	case "pending":
		list, err = l.Pending()
	case "expired":
		list, err = l.Expired()
	case "accepted":
		list, err = l.ByStatus(StatusAccepted)
	case "rejected":
		list, err = l.ByStatus(StatusRejected)
	case "rescinded":
		list, err = l.ByStatus(StatusRescinded)
	default:
		abortOnError(fmt.Errorf("unknown proposal filter %q", status))
	}
	abortOnError(err)
	return respond(encodeProposalList(badgeActionCodec{}, list))
}

// ProposalsGet returns one proposal by id.
// Example payload: {"id":"3"}
func ProposalsGet(payload *string) *string {
	p, err := ledger().Get(decodeIDArg(payload))
	abortOnError(err)
	return respond(marshalProposal[BadgeAction](badgeActionCodec{}, &p))
}

// TagsGet returns the recognized tag set.
func TagsGet(_ *string) *string {
	return respond(encodeStringList(ledger().Tags()))
}

// TotalsGet returns the running deposit aggregates.
func TotalsGet(_ *string) *string {
	return respond(encodeTotals(ledger().Totals()))
}

// TagsAdd widens the recognized tag set.
// Example payload: {"tags":["badge_revoke"]}
func TagsAdd(payload *string) *string {
	abortOnError(ledger().AddTags(sdk.Caller(), decodeTagsArg(payload)))
	return respondOK()
}

// TagsRemove shrinks the recognized tag set.
// Example payload: {"tags":["badge_revoke"]}
func TagsRemove(payload *string) *string {
	abortOnError(ledger().RemoveTags(sdk.Caller(), decodeTagsArg(payload)))
	return respondOK()
}

// ProposalsSetDuration caps the review window of future submissions.
// Example payload: {"duration":"604800000000000"}
func ProposalsSetDuration(payload *string) *string {
	var d uint64
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if key == "duration" {
			d = in.Uint64Str()
		} else {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)
	abortOnError(ledger().SetDefaultDuration(sdk.Caller(), d))
	return respondOK()
}

// -----------------------------------------------------------------------------
// Badges
// -----------------------------------------------------------------------------

// BadgesGet returns one badge by id regardless of enabled/expired state.
// Example payload: {"id":"spring-24"}
func BadgesGet(payload *string) *string {
	b, err := badgeBook().Get(decodeBadgeIDArg(payload))
	abortOnError(err)
	return respond(marshalBadge(&b))
}

// BadgesList returns the public gallery of enabled, unexpired badges.
func BadgesList(_ *string) *string {
	return respond(encodeBadgeList(badgeBook().Active()))
}

// BadgesSetEnabled toggles a badge's visibility.
// Example payload: {"id":"spring-24","enabled":false}
func BadgesSetEnabled(payload *string) *string {
	var id string
	var enabled bool
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			id = in.String()
		case "enabled":
			enabled = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)
	abortOnError(badgeBook().SetEnabled(sdk.Caller(), id, enabled))
	return respondOK()
}

// BadgesInsert places a badge record directly, bypassing the proposal flow.
// Example payload: {"id":"og","group_id":"core","name":"OG","description":"","is_enabled":true,"created_at":"0","start_at":"0","duration":null}
func BadgesInsert(payload *string) *string {
	if payload == nil || *payload == "" {
		abortOnError(ErrMissingPayload)
	}
	b, err := unmarshalBadge(*payload)
	abortOnError(err)
	abortOnError(badgeBook().Insert(sdk.Caller(), b))
	return respondOK()
}

// BadgesRemove deletes a badge outright.
// Example payload: {"id":"spring-24"}
func BadgesRemove(payload *string) *string {
	abortOnError(badgeBook().Remove(sdk.Caller(), decodeBadgeIDArg(payload)))
	return respondOK()
}

// BadgesSetRate reprices future badge durations.
// Example payload: {"rate_per_day":"12"}
func BadgesSetRate(payload *string) *string {
	v := decodeU64Field(payload, "rate_per_day")
	abortOnError(badgeBook().SetRatePerDay(sdk.Caller(), sdk.Amount(v)))
	return respondOK()
}

// BadgesSetMaxDuration caps how far into the future any badge may run.
// Example payload: {"max_active_duration":"63072000000000000"}
func BadgesSetMaxDuration(payload *string) *string {
	v := decodeU64Field(payload, "max_active_duration")
	abortOnError(badgeBook().SetMaxActiveDuration(sdk.Caller(), v))
	return respondOK()
}

// BadgesSetMinDeposit floors the stake on badge creation.
// Example payload: {"min_creation_deposit":"5"}
func BadgesSetMinDeposit(payload *string) *string {
	v := decodeU64Field(payload, "min_creation_deposit")
	abortOnError(badgeBook().SetMinCreationDeposit(sdk.Caller(), sdk.Amount(v)))
	return respondOK()
}

// ConfigGet returns the badge pricing plus the ledger's default duration.
func ConfigGet(_ *string) *string {
	cfg := badgeBook().Config()
	w := jwriter.Writer{}
	w.RawByte('{')
	writeBadgeConfig(&w, cfg)
	w.RawString(`,"default_duration":`)
	writeOptU64(&w, ledger().DefaultDuration())
	w.RawByte('}')
	raw, err := w.BuildBytes()
	abortOnError(err)
	out := string(raw)
	return &out
}

// -----------------------------------------------------------------------------
// Ownership
// -----------------------------------------------------------------------------

// OwnerPropose starts a two-phase authority handoff.
// Example payload: {"to":"hive:bob"}
func OwnerPropose(payload *string) *string {
	var next sdk.Address
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if key == "to" {
			next = sdk.Address(in.String())
		} else {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)

	abortOnError(requireConfirmation())
	abortOnError(ownership.Propose(sdk.Caller(), next))
	emitOwnership("propose", next)
	return respondOK()
}

// OwnerAccept completes a pending handoff under the successor's key.
func OwnerAccept(_ *string) *string {
	abortOnError(requireConfirmation())
	caller := sdk.Caller()
	abortOnError(ownership.Accept(caller))
	emitOwnership("accept", caller)
	return respondOK()
}

// OwnerRenounce removes the authority permanently.
func OwnerRenounce(_ *string) *string {
	abortOnError(requireConfirmation())
	abortOnError(ownership.Renounce(sdk.Caller()))
	emitOwnership("renounce", "")
	return respondOK()
}

// OwnerGet returns the seated and proposed authority.
func OwnerGet(_ *string) *string {
	current, proposed, ok := loadOwnership()
	if !ok {
		abortOnError(ErrNotInitialized)
	}
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"current":`)
	w.String(current.String())
	w.RawString(`,"proposed":`)
	w.String(proposed.String())
	w.RawByte('}')
	raw, err := w.BuildBytes()
	abortOnError(err)
	out := string(raw)
	return &out
}

// -----------------------------------------------------------------------------
// Arg decoding
// -----------------------------------------------------------------------------

func decodeIDArg(payload *string) uint64 {
	var id uint64
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if key == "id" {
			id = in.Uint64Str()
		} else {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)
	return id
}

func decodeBadgeIDArg(payload *string) string {
	var id string
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if key == "id" {
			id = in.String()
		} else {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)
	return id
}

func decodeTagsArg(payload *string) []string {
	var tags []string
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if key == "tags" {
			in.Delim('[')
			for !in.IsDelim(']') {
				tags = append(tags, in.String())
				in.WantComma()
			}
			in.Delim(']')
		} else {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)
	return tags
}

func decodeU64Field(payload *string, field string) uint64 {
	var v uint64
	in := lexPayload(payload)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if key == field {
			v = in.Uint64Str()
		} else {
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in)
	return v
}
