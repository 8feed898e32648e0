package contract_test

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badge_gallery/contract"
	"badge_gallery/sdk"
)

const (
	ownerAddress  = sdk.Address("hive:galleryowner")
	authorAddress = sdk.Address("hive:someone")
	otherAddress  = sdk.Address("hive:someoneelse")
)

const day = uint64(24) * 60 * 60 * 1_000_000_000

// Defaults every test gallery starts with.
const (
	defaultRate       = uint64(10)
	defaultMaxDays    = uint64(30)
	defaultMinDeposit = uint64(5)
)

func u64s(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func ptr(s string) *string { return &s }

// setupGallery resets the mock host and initializes a fresh contract with the
// default pricing, leaving the caller set to the owner with no payment.
func setupGallery(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	sdk.MockSetCaller(ownerAddress)
	payload := fmt.Sprintf(
		`{"owner":%q,"rate_per_day":"%d","max_active_duration":"%d","min_creation_deposit":"%d"}`,
		ownerAddress, defaultRate, defaultMaxDays*day, defaultMinDeposit,
	)
	contract.InitContract(ptr(payload))
	sdk.MockSetPayment(0)
}

// callOK invokes an entry point expecting success and returns the response.
func callOK(t *testing.T, fn func(*string) *string, payload string) string {
	t.Helper()
	out := fn(ptr(payload))
	require.NotNil(t, out)
	return *out
}

// callFail invokes an entry point expecting it to abort with wantSubstr
// somewhere in the abort message.
func callFail(t *testing.T, fn func(*string) *string, payload string, wantSubstr string) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected call to abort")
		msg, ok := r.(string)
		require.True(t, ok, "abort payload should be a string")
		assert.Contains(t, msg, wantSubstr)
	}()
	fn(ptr(payload))
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

// Wire shapes of the view responses. Large numerics arrive as decimal strings.

type proposalView struct {
	ID          string  `json:"id"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Tag         string  `json:"tag"`
	Deposit     string  `json:"deposit"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	Duration    *string `json:"duration"`
	ResolvedAt  *string `json:"resolved_at"`
}

type badgeView struct {
	ID          string  `json:"id"`
	GroupID     string  `json:"group_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	IsEnabled   bool    `json:"is_enabled"`
	CreatedAt   string  `json:"created_at"`
	StartAt     string  `json:"start_at"`
	Duration    *string `json:"duration"`
}

type totalsView struct {
	TotalDeposits         string `json:"total_deposits"`
	TotalAcceptedDeposits string `json:"total_accepted_deposits"`
}

type configView struct {
	RatePerDay         string  `json:"rate_per_day"`
	MaxActiveDuration  string  `json:"max_active_duration"`
	MinCreationDeposit string  `json:"min_creation_deposit"`
	DefaultDuration    *string `json:"default_duration"`
}

type ownerView struct {
	Current  string `json:"current"`
	Proposed string `json:"proposed"`
}

// createMsg builds the payload variant for a badge creation action.
func createMsg(badgeID string, startAt *uint64, duration uint64) string {
	start := "null"
	if startAt != nil {
		start = fmt.Sprintf("%q", u64s(*startAt))
	}
	return fmt.Sprintf(
		`{"create":{"id":%q,"group_id":"events","name":"Badge %s","description":"","start_at":%s,"duration":"%d"}}`,
		badgeID, badgeID, start, duration,
	)
}

// extendMsg builds the payload variant for a badge extension action.
func extendMsg(badgeID string, duration uint64) string {
	return fmt.Sprintf(`{"extend":{"id":%q,"duration":"%d"}}`, badgeID, duration)
}

// submitPayload assembles a full submission. msg is raw JSON ("null" for none),
// duration nil omits the review window request.
func submitPayload(tag, desc string, deposit uint64, duration *uint64, msg string) string {
	dur := "null"
	if duration != nil {
		dur = fmt.Sprintf("%q", u64s(*duration))
	}
	return fmt.Sprintf(
		`{"tag":%q,"description":%q,"deposit":"%d","duration":%s,"msg":%s}`,
		tag, desc, deposit, dur, msg,
	)
}

// submitCreateAs submits a creation proposal as the given caller and returns
// the stored record.
func submitCreateAs(t *testing.T, caller sdk.Address, badgeID string, duration uint64, deposit, payment uint64) proposalView {
	t.Helper()
	sdk.MockSetCaller(caller)
	sdk.MockSetPayment(sdk.Amount(payment))
	raw := callOK(t, contract.ProposalsSubmit,
		submitPayload("badge_create", "badge drive", deposit, nil, createMsg(badgeID, nil, duration)))
	return decode[proposalView](t, raw)
}

// resolveAs calls accept/reject/rescind for id as the given caller with the
// one-unit confirmation attached.
func resolveAs(t *testing.T, fn func(*string) *string, caller sdk.Address, id string) {
	t.Helper()
	sdk.MockSetCaller(caller)
	sdk.MockSetPayment(1)
	callOK(t, fn, fmt.Sprintf(`{"id":%q}`, id))
}

func getProposal(t *testing.T, id string) proposalView {
	t.Helper()
	raw := callOK(t, contract.ProposalsGet, fmt.Sprintf(`{"id":%q}`, id))
	return decode[proposalView](t, raw)
}

func listProposals(t *testing.T, status string) []proposalView {
	t.Helper()
	raw := callOK(t, contract.ProposalsList, fmt.Sprintf(`{"status":%q}`, status))
	return decode[[]proposalView](t, raw)
}

func getTotals(t *testing.T) totalsView {
	t.Helper()
	return decode[totalsView](t, callOK(t, contract.TotalsGet, ""))
}

func getBadge(t *testing.T, id string) badgeView {
	t.Helper()
	raw := callOK(t, contract.BadgesGet, fmt.Sprintf(`{"id":%q}`, id))
	return decode[badgeView](t, raw)
}

func listBadges(t *testing.T) []badgeView {
	t.Helper()
	return decode[[]badgeView](t, callOK(t, contract.BadgesList, ""))
}

// lastTransfer returns the most recent transfer issued, failing when none.
func lastTransfer(t *testing.T) sdk.MockTransfer {
	t.Helper()
	transfers := sdk.MockTransfers()
	require.NotEmpty(t, transfers)
	return transfers[len(transfers)-1]
}
