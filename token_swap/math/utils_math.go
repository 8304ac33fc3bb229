package math

import (
	"github.com/krazyTry/symmetry-go/u128"
)

var pow10 = func() [20]uint64 {
	var out [20]uint64
	out[0] = 1
	for i := 1; i < len(out); i++ {
		out[i] = out[i-1] * 10
	}
	return out
}()

// MulDiv returns floor(a*b/c) computed on a 128-bit intermediate. It returns
// 0 when c is zero or when the result does not fit in 64 bits; a zero leg is
// rejected later by the inventory and weight checks.
func MulDiv(a, b, c uint64) uint64 {
	if c == 0 {
		return 0
	}
	q, ok := u128.Mul64(a, b).QuoUint64(c)
	if !ok {
		return 0
	}
	return q
}

// Pow10 returns 10^decimals, or 0 when it does not fit in 64 bits.
func Pow10(decimals uint8) uint64 {
	if int(decimals) >= len(pow10) {
		return 0
	}
	return pow10[decimals]
}

// AmountToValue converts a raw token amount to USD value units.
func AmountToValue(amount uint64, decimals uint8, price uint64) uint64 {
	return MulDiv(amount, price, Pow10(decimals))
}

// ValueToAmount converts USD value units to a raw token amount.
func ValueToAmount(value uint64, decimals uint8, price uint64) uint64 {
	return MulDiv(value, Pow10(decimals), price)
}

func addSat(a, b uint64) uint64 {
	if s := a + b; s >= a {
		return s
	}
	return ^uint64(0)
}

func subSat(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
