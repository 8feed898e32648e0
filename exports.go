//go:build wasm

package main

import "badge_gallery/contract"

// Thin shims binding the host's exported symbol names to the contract
// package. Keep these one-liners; all behavior lives in contract/.

//go:wasmexport init
func contractInit(payload *string) *string { return contract.InitContract(payload) }

//go:wasmexport proposals_submit
func proposalsSubmit(payload *string) *string { return contract.ProposalsSubmit(payload) }

//go:wasmexport proposals_accept
func proposalsAccept(payload *string) *string { return contract.ProposalsAccept(payload) }

//go:wasmexport proposals_reject
func proposalsReject(payload *string) *string { return contract.ProposalsReject(payload) }

//go:wasmexport proposals_rescind
func proposalsRescind(payload *string) *string { return contract.ProposalsRescind(payload) }

//go:wasmexport proposals_list
func proposalsList(payload *string) *string { return contract.ProposalsList(payload) }

//go:wasmexport proposals_get
func proposalsGet(payload *string) *string { return contract.ProposalsGet(payload) }

//go:wasmexport proposals_set_duration
func proposalsSetDuration(payload *string) *string { return contract.ProposalsSetDuration(payload) }

//go:wasmexport tags_add
func tagsAdd(payload *string) *string { return contract.TagsAdd(payload) }

//go:wasmexport tags_remove
func tagsRemove(payload *string) *string { return contract.TagsRemove(payload) }

//go:wasmexport tags_get
func tagsGet(payload *string) *string { return contract.TagsGet(payload) }

//go:wasmexport totals_get
func totalsGet(payload *string) *string { return contract.TotalsGet(payload) }

//go:wasmexport badges_get
func badgesGet(payload *string) *string { return contract.BadgesGet(payload) }

//go:wasmexport badges_list
func badgesList(payload *string) *string { return contract.BadgesList(payload) }

//go:wasmexport badges_set_enabled
func badgesSetEnabled(payload *string) *string { return contract.BadgesSetEnabled(payload) }

//go:wasmexport badges_insert
func badgesInsert(payload *string) *string { return contract.BadgesInsert(payload) }

//go:wasmexport badges_remove
func badgesRemove(payload *string) *string { return contract.BadgesRemove(payload) }

//go:wasmexport badges_set_rate
func badgesSetRate(payload *string) *string { return contract.BadgesSetRate(payload) }

//go:wasmexport badges_set_max_duration
func badgesSetMaxDuration(payload *string) *string { return contract.BadgesSetMaxDuration(payload) }

//go:wasmexport badges_set_min_deposit
func badgesSetMinDeposit(payload *string) *string { return contract.BadgesSetMinDeposit(payload) }

//go:wasmexport config_get
func configGet(payload *string) *string { return contract.ConfigGet(payload) }

//go:wasmexport owner_propose
func ownerPropose(payload *string) *string { return contract.OwnerPropose(payload) }

//go:wasmexport owner_accept
func ownerAccept(payload *string) *string { return contract.OwnerAccept(payload) }

//go:wasmexport owner_renounce
func ownerRenounce(payload *string) *string { return contract.OwnerRenounce(payload) }

//go:wasmexport owner_get
func ownerGet(payload *string) *string { return contract.OwnerGet(payload) }
