//go:build !wasm

package sdk

import "strconv"

// In-memory twin of the wasm host, used for native builds and the test
// suite. State, clock, caller and payment are all scriptable through the
// Mock* helpers so scenarios can replay multi-call flows deterministically.

// MockTransfer records one outgoing value transfer issued by the contract.
type MockTransfer struct {
	To     Address
	Amount Amount
	Asset  Asset
}

type mockHost struct {
	state     map[string]string
	bytesUsed uint64
	env       Env
	bytePrice Amount
	transfers []MockTransfer
	logs      []string
}

var host = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		state: map[string]string{},
		env: Env{
			ContractId:  "contract:badge-gallery",
			TxId:        "tx-0",
			BlockHeight: 1,
			Timestamp:   1_000_000_000, // 1s after epoch, tests advance it
			Sender:      Sender{Address: "hive:someone"},
		},
		bytePrice: 1,
	}
}

// MockReset wipes state, transfers and logs and restores the default env.
func MockReset() {
	host = newMockHost()
}

// MockSetTimestamp pins the block time (nanoseconds) for subsequent calls.
func MockSetTimestamp(ns uint64) { host.env.Timestamp = ns }

// MockAdvance moves the block time forward by d nanoseconds.
func MockAdvance(d uint64) { host.env.Timestamp += d }

// MockSetCaller switches the identity the next calls run under.
func MockSetCaller(a Address) { host.env.Sender.Address = a }

// MockSetPayment attaches value to the next calls.
func MockSetPayment(amt Amount) { host.env.Payment = amt }

// MockSetStorageBytePrice overrides the per-byte rent price (default 1).
func MockSetStorageBytePrice(p Amount) { host.bytePrice = p }

// MockTransfers returns every transfer issued since the last reset.
func MockTransfers() []MockTransfer { return host.transfers }

// MockLogs returns every log line emitted since the last reset.
func MockLogs() []string { return host.logs }

func Log(s string) {
	host.logs = append(host.logs, s)
}

// Abort mirrors the wasm host's call-fatal abort by panicking; the real host
// reverts all state, the mock relies on callers validating before writing.
func Abort(msg string) {
	panic("abort: " + msg)
}

func StateSetObject(key string, value string) {
	if old, ok := host.state[key]; ok {
		host.bytesUsed -= uint64(len(key) + len(old))
	}
	host.state[key] = value
	host.bytesUsed += uint64(len(key) + len(value))
}

func StateGetObject(key string) *string {
	v, ok := host.state[key]
	if !ok {
		return nil
	}
	return &v
}

func StateDeleteObject(key string) {
	if old, ok := host.state[key]; ok {
		host.bytesUsed -= uint64(len(key) + len(old))
		delete(host.state, key)
	}
}

func StorageBytesUsed() uint64 {
	return host.bytesUsed
}

func StorageBytePrice() Amount {
	return host.bytePrice
}

func GetEnv() Env {
	return host.env
}

func GetEnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		return strptr(strconv.FormatUint(host.env.Timestamp, 10))
	case "tx.id":
		return strptr(host.env.TxId)
	case "msg.sender":
		return strptr(host.env.Sender.Address.String())
	case "msg.payment":
		return strptr(strconv.FormatUint(uint64(host.env.Payment), 10))
	case "storage.byte_price":
		return strptr(strconv.FormatUint(uint64(host.bytePrice), 10))
	default:
		return nil
	}
}

func Now() uint64 {
	return host.env.Timestamp
}

func Caller() Address {
	return host.env.Sender.Address
}

func AttachedPayment() Amount {
	return host.env.Payment
}

func Transfer(to Address, amount Amount, asset Asset) {
	host.transfers = append(host.transfers, MockTransfer{To: to, Amount: amount, Asset: asset})
}

func strptr(s string) *string { return &s }
