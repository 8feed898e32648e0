package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	raw := `{"contract.id":"contract:gallery","tx.id":"tx-9","block.height":5,` +
		`"block.timestamp":"1756500000000000000","msg.sender":"hive:alice",` +
		`"msg.payment":"42","future.key":{"ignored":true}}`

	env, err := parseEnv(raw)
	require.NoError(t, err)
	assert.Equal(t, "contract:gallery", env.ContractId)
	assert.Equal(t, "tx-9", env.TxId)
	assert.Equal(t, uint64(5), env.BlockHeight)
	assert.Equal(t, uint64(1756500000000000000), env.Timestamp)
	assert.Equal(t, Address("hive:alice"), env.Sender.Address)
	assert.Equal(t, Amount(42), env.Payment)
}

func TestParseEnvDefaults(t *testing.T) {
	env, err := parseEnv(`{}`)
	require.NoError(t, err)
	assert.Zero(t, env.Timestamp)
	assert.Zero(t, env.Payment)
}

func TestParseEnvRejectsGarbageTimestamp(t *testing.T) {
	_, err := parseEnv(`{"block.timestamp":"soon"}`)
	assert.Error(t, err)
}

func TestMockStorageByteAccounting(t *testing.T) {
	MockReset()
	assert.Zero(t, StorageBytesUsed())

	StateSetObject("k", "value")
	used := StorageBytesUsed()
	assert.Equal(t, uint64(len("k")+len("value")), used)

	// Overwriting replaces the old footprint instead of stacking on top.
	StateSetObject("k", "longer-value")
	assert.Equal(t, uint64(len("k")+len("longer-value")), StorageBytesUsed())

	StateDeleteObject("k")
	assert.Zero(t, StorageBytesUsed())
}
