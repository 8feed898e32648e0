//go:build wasm

package sdk

import "strconv"

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk db.bytes_used
func storageBytesUsed(arg *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport env abort
func abortImport(msg, file *string, line, column *int32)

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("hello gallery")
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain;
// the host reverts every state write and transfer of the current call.
// Example payload: sdk.Abort("tag does not exist")
func Abort(msg string) {
	ln := int32(0)
	abortImport(&msg, nil, &ln, &ln)
	panic(msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// StorageBytesUsed reports the contract's persistent storage footprint in
// bytes. Snapshotted before/after a write it yields the rent-billable delta.
func StorageBytesUsed() uint64 {
	ptr := storageBytesUsed(nil)
	if ptr == nil {
		return 0
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		Abort("host returned invalid storage usage")
	}
	return v
}

// StorageBytePrice is the host's current rent price per stored byte.
func StorageBytePrice() Amount {
	ptr := getEnvKey(strptr("storage.byte_price"))
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		Abort("host returned invalid storage byte price")
	}
	return Amount(v)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
func GetEnv() Env {
	env, err := parseEnv(*getEnv(nil))
	if err != nil {
		Abort("failed to parse environment: " + err.Error())
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// Now returns the block timestamp in nanoseconds since the unix epoch.
func Now() uint64 {
	ptr := getEnvKey(strptr("block.timestamp"))
	if ptr == nil || *ptr == "" {
		Abort("host did not supply block.timestamp")
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		Abort("host returned invalid block.timestamp")
	}
	return v
}

// Caller returns the address on whose authority the current call runs.
func Caller() Address {
	ptr := getEnvKey(strptr("msg.sender"))
	if ptr == nil || *ptr == "" {
		Abort("host did not supply msg.sender")
	}
	return Address(*ptr)
}

// AttachedPayment returns the value attached to the current call. The host
// already moved it into contract custody before execution started.
func AttachedPayment() Amount {
	ptr := getEnvKey(strptr("msg.payment"))
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		Abort("host returned invalid msg.payment")
	}
	return Amount(v)
}

// Transfer sends value from contract custody towards a user address.
// Fire-and-forget: delivery failures are a host concern.
func Transfer(to Address, amount Amount, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatUint(uint64(amount), 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

func strptr(s string) *string { return &s }
