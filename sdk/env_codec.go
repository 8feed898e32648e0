package sdk

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jlexer"
)

// parseEnv maps the flat env JSON blob the host hands us onto the Env struct.
// Large numerics (timestamps, payments) travel as decimal strings so js-side
// hosts never mangle them.
func parseEnv(raw string) (Env, error) {
	var e Env
	in := jlexer.Lexer{Data: []byte(raw)}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "contract.id":
			e.ContractId = in.String()
		case "tx.id":
			e.TxId = in.String()
		case "block.height":
			e.BlockHeight = in.Uint64()
		case "block.timestamp":
			e.Timestamp = parseU64Field(&in, in.String())
		case "msg.sender":
			e.Sender.Address = Address(in.String())
		case "msg.payment":
			e.Payment = Amount(parseU64Field(&in, in.String()))
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return Env{}, err
	}
	return e, nil
}

// parseU64Field folds strconv failures into the lexer error so callers have a
// single error to check.
func parseU64Field(in *jlexer.Lexer, s string) uint64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		in.AddError(err)
		return 0
	}
	return v
}
