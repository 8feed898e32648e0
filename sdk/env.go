package sdk

// Amount is a value expressed in the smallest indivisible unit of the
// escrow asset. All monetary math in the contract happens on this type.
type Amount uint64

type Sender struct {
	Address Address `json:"id"`
}

// Env is the execution environment snapshot the host hands to every call.
type Env struct {
	ContractId  string
	TxId        string
	BlockHeight uint64
	// Timestamp is the block time in nanoseconds since the unix epoch.
	Timestamp uint64
	Sender    Sender
	// Payment is the value attached to the current call, already held in
	// the contract's custody when execution starts.
	Payment Amount
}
