package contract

import (
	"fmt"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"badge_gallery/sdk"
)

// Persisted records and view responses share one JSON dialect: u64 amounts,
// timestamps and durations travel as decimal strings so javascript hosts and
// indexers never lose precision on them.

// PayloadCodec serializes the ledger's opaque payload type. The ledger never
// looks inside T; it only threads the payload through storage and views.
type PayloadCodec[T any] interface {
	EncodePayload(w *jwriter.Writer, v *T)
	DecodePayload(in *jlexer.Lexer) *T
}

// -----------------------------------------------------------------------------
// Proposal
// -----------------------------------------------------------------------------

func encodeProposal[T any](w *jwriter.Writer, codec PayloadCodec[T], p *Proposal[T]) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64Str(p.ID)
	w.RawString(`,"author":`)
	w.String(p.Author.String())
	w.RawString(`,"description":`)
	w.String(p.Description)
	w.RawString(`,"tag":`)
	w.String(p.Tag)
	w.RawString(`,"msg":`)
	if p.Msg == nil {
		w.RawString("null")
	} else {
		codec.EncodePayload(w, p.Msg)
	}
	w.RawString(`,"deposit":`)
	w.Uint64Str(uint64(p.Deposit))
	w.RawString(`,"status":`)
	w.String(p.Status.String())
	w.RawString(`,"created_at":`)
	w.Uint64Str(p.CreatedAt)
	w.RawString(`,"duration":`)
	writeOptU64(w, p.Duration)
	w.RawString(`,"resolved_at":`)
	writeOptU64(w, p.ResolvedAt)
	w.RawByte('}')
}

func decodeProposal[T any](in *jlexer.Lexer, codec PayloadCodec[T], p *Proposal[T]) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			p.ID = in.Uint64Str()
		case "author":
			p.Author = sdk.Address(in.String())
		case "description":
			p.Description = in.String()
		case "tag":
			p.Tag = in.String()
		case "msg":
			if in.IsNull() {
				in.Skip()
			} else {
				p.Msg = codec.DecodePayload(in)
			}
		case "deposit":
			p.Deposit = sdk.Amount(in.Uint64Str())
		case "status":
			p.Status = statusFromString(in, in.String())
		case "created_at":
			p.CreatedAt = in.Uint64Str()
		case "duration":
			p.Duration = readOptU64(in)
		case "resolved_at":
			p.ResolvedAt = readOptU64(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func marshalProposal[T any](codec PayloadCodec[T], p *Proposal[T]) (string, error) {
	w := jwriter.Writer{}
	encodeProposal(&w, codec, p)
	raw, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalProposal[T any](codec PayloadCodec[T], raw string) (Proposal[T], error) {
	var p Proposal[T]
	in := jlexer.Lexer{Data: []byte(raw)}
	decodeProposal(&in, codec, &p)
	in.Consumed()
	if err := in.Error(); err != nil {
		return Proposal[T]{}, err
	}
	return p, nil
}

func statusFromString(in *jlexer.Lexer, s string) ProposalStatus {
	switch s {
	case "pending":
		return StatusPending
	case "accepted":
		return StatusAccepted
	case "rejected":
		return StatusRejected
	case "rescinded":
		return StatusRescinded
	default:
		in.AddError(fmt.Errorf("unknown proposal status %q", s))
		return 0
	}
}

// -----------------------------------------------------------------------------
// Badge Payloads
// -----------------------------------------------------------------------------

// badgeActionCodec is the PayloadCodec wired into the ledger. The action is
// externally tagged: exactly one of "create"/"extend" appears as the key.
type badgeActionCodec struct{}

func (badgeActionCodec) EncodePayload(w *jwriter.Writer, a *BadgeAction) {
	w.RawByte('{')
	switch {
	case a.Create != nil:
		w.RawString(`"create":`)
		encodeBadgeCreate(w, a.Create)
	case a.Extend != nil:
		w.RawString(`"extend":`)
		encodeBadgeExtend(w, a.Extend)
	}
	w.RawByte('}')
}

func (badgeActionCodec) DecodePayload(in *jlexer.Lexer) *BadgeAction {
	var a BadgeAction
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "create":
			a.Create = decodeBadgeCreate(in)
		case "extend":
			a.Extend = decodeBadgeExtend(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	return &a
}

func encodeBadgeCreate(w *jwriter.Writer, c *BadgeCreate) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.String(c.ID)
	w.RawString(`,"group_id":`)
	w.String(c.GroupID)
	w.RawString(`,"name":`)
	w.String(c.Name)
	w.RawString(`,"description":`)
	w.String(c.Description)
	w.RawString(`,"start_at":`)
	writeOptU64(w, c.StartAt)
	w.RawString(`,"duration":`)
	w.Uint64Str(c.Duration)
	w.RawByte('}')
}

func decodeBadgeCreate(in *jlexer.Lexer) *BadgeCreate {
	var c BadgeCreate
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			c.ID = in.String()
		case "group_id":
			c.GroupID = in.String()
		case "name":
			c.Name = in.String()
		case "description":
			c.Description = in.String()
		case "start_at":
			c.StartAt = readOptU64(in)
		case "duration":
			c.Duration = in.Uint64Str()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	return &c
}

func encodeBadgeExtend(w *jwriter.Writer, e *BadgeExtend) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.String(e.ID)
	w.RawString(`,"duration":`)
	w.Uint64Str(e.Duration)
	w.RawByte('}')
}

func decodeBadgeExtend(in *jlexer.Lexer) *BadgeExtend {
	var e BadgeExtend
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			e.ID = in.String()
		case "duration":
			e.Duration = in.Uint64Str()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	return &e
}

// -----------------------------------------------------------------------------
// Badge Records
// -----------------------------------------------------------------------------

func encodeBadge(w *jwriter.Writer, b *Badge) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.String(b.ID)
	w.RawString(`,"group_id":`)
	w.String(b.GroupID)
	w.RawString(`,"name":`)
	w.String(b.Name)
	w.RawString(`,"description":`)
	w.String(b.Description)
	w.RawString(`,"is_enabled":`)
	w.Bool(b.IsEnabled)
	w.RawString(`,"created_at":`)
	w.Uint64Str(b.CreatedAt)
	w.RawString(`,"start_at":`)
	w.Uint64Str(b.StartAt)
	w.RawString(`,"duration":`)
	writeOptU64(w, b.Duration)
	w.RawByte('}')
}

func marshalBadge(b *Badge) (string, error) {
	w := jwriter.Writer{}
	encodeBadge(&w, b)
	raw, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalBadge(raw string) (Badge, error) {
	var b Badge
	in := jlexer.Lexer{Data: []byte(raw)}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			b.ID = in.String()
		case "group_id":
			b.GroupID = in.String()
		case "name":
			b.Name = in.String()
		case "description":
			b.Description = in.String()
		case "is_enabled":
			b.IsEnabled = in.Bool()
		case "created_at":
			b.CreatedAt = in.Uint64Str()
		case "start_at":
			b.StartAt = in.Uint64Str()
		case "duration":
			b.Duration = readOptU64(&in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return Badge{}, err
	}
	return b, nil
}

// -----------------------------------------------------------------------------
// View Responses
// -----------------------------------------------------------------------------

func encodeProposalList[T any](codec PayloadCodec[T], list []Proposal[T]) (string, error) {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i := range list {
		if i > 0 {
			w.RawByte(',')
		}
		encodeProposal(&w, codec, &list[i])
	}
	w.RawByte(']')
	raw, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func encodeBadgeList(list []Badge) (string, error) {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i := range list {
		if i > 0 {
			w.RawByte(',')
		}
		encodeBadge(&w, &list[i])
	}
	w.RawByte(']')
	raw, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func encodeStringList(list []string) (string, error) {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i, s := range list {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(s)
	}
	w.RawByte(']')
	raw, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func encodeTotals(t LedgerTotals) (string, error) {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"total_deposits":`)
	w.Uint64Str(uint64(t.Escrowed))
	w.RawString(`,"total_accepted_deposits":`)
	w.Uint64Str(uint64(t.Accepted))
	w.RawByte('}')
	raw, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// writeBadgeConfig writes the pricing fields without surrounding braces so
// views can append further keys to the same object.
func writeBadgeConfig(w *jwriter.Writer, c BadgeConfig) {
	w.RawString(`"rate_per_day":`)
	w.Uint64Str(uint64(c.RatePerDay))
	w.RawString(`,"max_active_duration":`)
	w.Uint64Str(c.MaxActiveDuration)
	w.RawString(`,"min_creation_deposit":`)
	w.Uint64Str(uint64(c.MinCreationDeposit))
}

// -----------------------------------------------------------------------------
// Optional u64 helpers
// -----------------------------------------------------------------------------

func writeOptU64(w *jwriter.Writer, v *uint64) {
	if v == nil {
		w.RawString("null")
		return
	}
	w.Uint64Str(*v)
}

func readOptU64(in *jlexer.Lexer) *uint64 {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	v := in.Uint64Str()
	return &v
}
