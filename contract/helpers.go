package contract

import "badge_gallery/sdk"

// The export layer speaks in aborts: any error escaping an operation kills
// the call so the host reverts every write and transfer it made.

func abortOnError(err error) {
	if err != nil {
		sdk.Abort(err.Error())
	}
}

// respond converts an encode result into the host's return shape.
func respond(raw string, err error) *string {
	abortOnError(err)
	return &raw
}

// respondOK acknowledges a mutation that has no natural return value.
func respondOK() *string {
	ok := `{"ok":true}`
	return &ok
}
