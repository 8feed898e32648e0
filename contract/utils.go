package contract

import (
	"math/bits"

	"badge_gallery/sdk"
)

// addU64 returns a+b and whether it fit without wrapping.
func addU64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// mulU64 returns a*b and whether it fit without wrapping.
func mulU64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// addAmount is the escrow-accounting variant of addU64. Overflow here means
// the books can no longer balance, so it surfaces as an error.
func addAmount(a, b sdk.Amount) (sdk.Amount, error) {
	sum, ok := addU64(uint64(a), uint64(b))
	if !ok {
		return 0, ErrAmountOverflow
	}
	return sdk.Amount(sum), nil
}

// subAmount subtracts with an underflow guard. The aggregates only ever give
// back what was previously added, so underflow signals corrupted state.
func subAmount(a, b sdk.Amount) (sdk.Amount, error) {
	if b > a {
		return 0, ErrAmountOverflow
	}
	return a - b, nil
}

// billableDays converts a nanosecond duration into whole billed days,
// rounding any started day up. Zero duration bills zero days.
func billableDays(duration uint64) uint64 {
	days := duration / OneDay
	if duration%OneDay != 0 {
		days++
	}
	return days
}

// durationPrice is billableDays times the per-day rate, overflow-checked.
func durationPrice(duration uint64, ratePerDay sdk.Amount) (sdk.Amount, error) {
	price, ok := mulU64(billableDays(duration), uint64(ratePerDay))
	if !ok {
		return 0, ErrAmountOverflow
	}
	return sdk.Amount(price), nil
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
