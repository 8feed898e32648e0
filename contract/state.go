package contract

import (
	"fmt"
	"strconv"
	"strings"

	"badge_gallery/sdk"
)

// Singleton records use terse pipe-delimited encodings instead of JSON. They
// are read on almost every call, so the few saved bytes of key and value rent
// add up. Pipe never appears in the stored fields: tags and badge ids are
// validated against it on the way in.

// -----------------------------------------------------------------------------
// Proposal Counter
// -----------------------------------------------------------------------------

// proposalCount returns the next id to assign, which equals how many
// proposals exist. Ids are dense: 0..count-1 all resolve to a record.
func proposalCount() uint64 {
	raw := sdk.StateGetObject(scalarKey(kProposalCount))
	if raw == nil {
		return 0
	}
	v, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt proposal counter: " + err.Error())
	}
	return v
}

func setProposalCount(v uint64) {
	sdk.StateSetObject(scalarKey(kProposalCount), strconv.FormatUint(v, 10))
}

// -----------------------------------------------------------------------------
// Deposit Totals
// -----------------------------------------------------------------------------

func loadTotals() LedgerTotals {
	raw := sdk.StateGetObject(scalarKey(kLedgerTotals))
	if raw == nil {
		return LedgerTotals{}
	}
	parts := strings.SplitN(*raw, "|", 2)
	if len(parts) != 2 {
		sdk.Abort("corrupt ledger totals")
	}
	escrowed, err1 := strconv.ParseUint(parts[0], 10, 64)
	accepted, err2 := strconv.ParseUint(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		sdk.Abort("corrupt ledger totals")
	}
	return LedgerTotals{Escrowed: sdk.Amount(escrowed), Accepted: sdk.Amount(accepted)}
}

func saveTotals(t LedgerTotals) {
	sdk.StateSetObject(scalarKey(kLedgerTotals),
		fmt.Sprintf("%d|%d", uint64(t.Escrowed), uint64(t.Accepted)))
}

// -----------------------------------------------------------------------------
// Ledger Config
// -----------------------------------------------------------------------------

// defaultDuration returns the configured review window cap, or nil when none
// was ever set (proposals then run for exactly what their author requested).
func defaultDuration() *uint64 {
	raw := sdk.StateGetObject(scalarKey(kLedgerConfig))
	if raw == nil {
		return nil
	}
	v, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt ledger config: " + err.Error())
	}
	return &v
}

func setDefaultDurationState(v uint64) {
	sdk.StateSetObject(scalarKey(kLedgerConfig), strconv.FormatUint(v, 10))
}

// -----------------------------------------------------------------------------
// Tag Set
// -----------------------------------------------------------------------------

func loadTags() []string {
	raw := sdk.StateGetObject(scalarKey(kTagSet))
	if raw == nil || *raw == "" {
		return nil
	}
	return strings.Split(*raw, "|")
}

func saveTags(tags []string) {
	if len(tags) == 0 {
		sdk.StateDeleteObject(scalarKey(kTagSet))
		return
	}
	sdk.StateSetObject(scalarKey(kTagSet), strings.Join(tags, "|"))
}

func tagExists(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Badge Config & Index
// -----------------------------------------------------------------------------

func loadBadgeConfig() BadgeConfig {
	raw := sdk.StateGetObject(scalarKey(kBadgeConfig))
	if raw == nil {
		sdk.Abort("badge pricing not configured")
	}
	parts := strings.SplitN(*raw, "|", 3)
	if len(parts) != 3 {
		sdk.Abort("corrupt badge config")
	}
	rate, err1 := strconv.ParseUint(parts[0], 10, 64)
	maxDur, err2 := strconv.ParseUint(parts[1], 10, 64)
	minDep, err3 := strconv.ParseUint(parts[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		sdk.Abort("corrupt badge config")
	}
	return BadgeConfig{
		RatePerDay:         sdk.Amount(rate),
		MaxActiveDuration:  maxDur,
		MinCreationDeposit: sdk.Amount(minDep),
	}
}

func saveBadgeConfig(c BadgeConfig) {
	sdk.StateSetObject(scalarKey(kBadgeConfig),
		fmt.Sprintf("%d|%d|%d", uint64(c.RatePerDay), c.MaxActiveDuration, uint64(c.MinCreationDeposit)))
}

func loadBadgeIndex() []string {
	raw := sdk.StateGetObject(scalarKey(kBadgeIndex))
	if raw == nil || *raw == "" {
		return nil
	}
	return strings.Split(*raw, "|")
}

func saveBadgeIndex(ids []string) {
	if len(ids) == 0 {
		sdk.StateDeleteObject(scalarKey(kBadgeIndex))
		return
	}
	sdk.StateSetObject(scalarKey(kBadgeIndex), strings.Join(ids, "|"))
}

// -----------------------------------------------------------------------------
// Badge Records
// -----------------------------------------------------------------------------

func loadBadge(id string) (Badge, bool) {
	raw := sdk.StateGetObject(badgeKey(id))
	if raw == nil {
		return Badge{}, false
	}
	b, err := unmarshalBadge(*raw)
	if err != nil {
		sdk.Abort("corrupt badge record: " + err.Error())
	}
	return b, true
}

func saveBadge(b *Badge) {
	raw, err := marshalBadge(b)
	if err != nil {
		sdk.Abort("encode badge: " + err.Error())
	}
	sdk.StateSetObject(badgeKey(b.ID), raw)
}

func deleteBadge(id string) {
	sdk.StateDeleteObject(badgeKey(id))
}
