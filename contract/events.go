package contract

import (
	"fmt"

	"badge_gallery/sdk"
)

// Event lines are terse pipe records. Indexers key off the two-letter prefix;
// amounts stay decimal so they grep cleanly.

func emitProposalSubmitted[T any](p *Proposal[T]) {
	sdk.Log(fmt.Sprintf("ps|id:%d|t:%s|a:%s|d:%d", p.ID, p.Tag, p.Author, uint64(p.Deposit)))
}

func emitProposalResolved[T any](p *Proposal[T]) {
	sdk.Log(fmt.Sprintf("pr|id:%d|s:%s", p.ID, p.Status))
}

func emitRefund(to sdk.Address, amount sdk.Amount) {
	sdk.Log(fmt.Sprintf("rf|to:%s|amt:%d", to, uint64(amount)))
}

func emitTagAdded(tag string) {
	sdk.Log("tg|op:add|t:" + tag)
}

func emitTagRemoved(tag string) {
	sdk.Log("tg|op:rm|t:" + tag)
}

func emitDefaultDuration(d uint64) {
	sdk.Log(fmt.Sprintf("cf|dur:%d", d))
}

func emitBadge(op string, id string) {
	sdk.Log("bd|op:" + op + "|id:" + id)
}

func emitBadgeConfig(c BadgeConfig) {
	sdk.Log(fmt.Sprintf("bc|rate:%d|max:%d|min:%d",
		uint64(c.RatePerDay), c.MaxActiveDuration, uint64(c.MinCreationDeposit)))
}

func emitOwnership(op string, addr sdk.Address) {
	if addr == "" {
		sdk.Log("own|op:" + op)
		return
	}
	sdk.Log("own|op:" + op + "|to:" + addr.String())
}
