package u128

import (
	"math/big"
	"math/bits"

	binary "github.com/gagliardetto/binary"
)

// Uint128 is the double-width intermediate used by every multiply-then-divide
// on 64-bit token amounts, USD values and prices.
type Uint128 binary.Uint128

// Mul64 returns the full 128-bit product of a and b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Lo: lo, Hi: hi}
}

// QuoUint64 divides u by c. ok is false when c is zero or when the quotient
// does not fit in 64 bits.
func (u Uint128) QuoUint64(c uint64) (q uint64, ok bool) {
	if c == 0 || u.Hi >= c {
		return 0, false
	}
	q, _ = bits.Div64(u.Hi, u.Lo, c)
	return q, true
}

// IsUint64 reports whether u fits in 64 bits.
func (u Uint128) IsUint64() bool {
	return u.Hi == 0
}

func (u Uint128) BigInt() *big.Int {
	out := new(big.Int).SetUint64(u.Hi)
	out.Lsh(out, 64)
	return out.Or(out, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.BigInt().String()
}
