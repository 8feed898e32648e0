package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"badge_gallery/contract"
	"badge_gallery/sdk"
)

func initPayload(owner sdk.Address) string {
	return fmt.Sprintf(
		`{"owner":%q,"rate_per_day":"10","max_active_duration":"%d","min_creation_deposit":"5"}`,
		owner, 30*day)
}

func TestInitOnlyOnce(t *testing.T) {
	setupGallery(t)
	sdk.MockSetCaller(ownerAddress)
	callFail(t, contract.InitContract, initPayload(ownerAddress), "already initialized")
}

func TestInitRejectsZeroPricing(t *testing.T) {
	sdk.MockReset()
	callFail(t, contract.InitContract,
		fmt.Sprintf(`{"owner":%q,"rate_per_day":"0","max_active_duration":"1","min_creation_deposit":"0"}`, ownerAddress),
		"greater than zero")
}

func TestUninitializedHasNoOwner(t *testing.T) {
	sdk.MockReset()
	callFail(t, contract.OwnerGet, "", "not initialized")
}

func TestOwnershipHandoff(t *testing.T) {
	setupGallery(t)

	sdk.MockSetCaller(ownerAddress)
	sdk.MockSetPayment(1)
	callOK(t, contract.OwnerPropose, fmt.Sprintf(`{"to":%q}`, otherAddress))

	o := decode[ownerView](t, callOK(t, contract.OwnerGet, ""))
	assert.Equal(t, ownerAddress.String(), o.Current)
	assert.Equal(t, otherAddress.String(), o.Proposed)

	// Authority has not moved yet.
	submitCreateAs(t, authorAddress, "ho-1", day, 12, 100000)
	resolveAs(t, contract.ProposalsAccept, ownerAddress, "0")

	sdk.MockSetCaller(otherAddress)
	sdk.MockSetPayment(1)
	callOK(t, contract.OwnerAccept, "")

	o = decode[ownerView](t, callOK(t, contract.OwnerGet, ""))
	assert.Equal(t, otherAddress.String(), o.Current)
	assert.Empty(t, o.Proposed)

	// The old authority is out, the new one resolves proposals.
	submitCreateAs(t, authorAddress, "ho-2", day, 12, 100000)
	sdk.MockSetCaller(ownerAddress)
	sdk.MockSetPayment(1)
	callFail(t, contract.ProposalsAccept, `{"id":"1"}`, "authority only")
	resolveAs(t, contract.ProposalsAccept, otherAddress, "1")
}

func TestProposeRequiresOwner(t *testing.T) {
	setupGallery(t)
	sdk.MockSetCaller(otherAddress)
	sdk.MockSetPayment(1)
	callFail(t, contract.OwnerPropose, fmt.Sprintf(`{"to":%q}`, otherAddress), "authority only")
}

func TestAcceptRequiresProposedAuthority(t *testing.T) {
	setupGallery(t)

	sdk.MockSetCaller(otherAddress)
	sdk.MockSetPayment(1)
	callFail(t, contract.OwnerAccept, "", "proposed authority only")

	sdk.MockSetCaller(ownerAddress)
	sdk.MockSetPayment(1)
	callOK(t, contract.OwnerPropose, fmt.Sprintf(`{"to":%q}`, otherAddress))

	sdk.MockSetCaller(authorAddress)
	sdk.MockSetPayment(1)
	callFail(t, contract.OwnerAccept, "", "proposed authority only")
}

func TestProposeEmptyCancelsHandoff(t *testing.T) {
	setupGallery(t)
	sdk.MockSetCaller(ownerAddress)
	sdk.MockSetPayment(1)
	callOK(t, contract.OwnerPropose, fmt.Sprintf(`{"to":%q}`, otherAddress))
	sdk.MockSetPayment(1)
	callOK(t, contract.OwnerPropose, `{"to":""}`)

	sdk.MockSetCaller(otherAddress)
	sdk.MockSetPayment(1)
	callFail(t, contract.OwnerAccept, "", "proposed authority only")
}

func TestRenounceLocksPrivilegedOps(t *testing.T) {
	setupGallery(t)
	submitCreateAs(t, authorAddress, "rn-1", day, 12, 100000)

	sdk.MockSetCaller(ownerAddress)
	sdk.MockSetPayment(1)
	callOK(t, contract.OwnerRenounce, "")

	o := decode[ownerView](t, callOK(t, contract.OwnerGet, ""))
	assert.Empty(t, o.Current)

	sdk.MockSetCaller(ownerAddress)
	sdk.MockSetPayment(1)
	callFail(t, contract.ProposalsAccept, `{"id":"0"}`, "authority only")
	callFail(t, contract.OwnerPropose, fmt.Sprintf(`{"to":%q}`, otherAddress), "authority only")

	// The author keeps the rescue path.
	resolveAs(t, contract.ProposalsRescind, authorAddress, "0")
	assert.Equal(t, sdk.Amount(12), lastTransfer(t).Amount)
}

func TestOwnerOpsRequireConfirmation(t *testing.T) {
	setupGallery(t)
	sdk.MockSetCaller(ownerAddress)
	sdk.MockSetPayment(0)
	callFail(t, contract.OwnerPropose, fmt.Sprintf(`{"to":%q}`, otherAddress), "exactly 1 unit")
	callFail(t, contract.OwnerAccept, "", "exactly 1 unit")
	callFail(t, contract.OwnerRenounce, "", "exactly 1 unit")
}
