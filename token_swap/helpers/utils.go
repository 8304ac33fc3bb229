package helpers

import (
	"github.com/krazyTry/symmetry-go/u128"
)

// GetMinAmountWithSlippage returns amount * (10000 - slippageBps) / 10000.
func GetMinAmountWithSlippage(amount uint64, slippageBps uint64) uint64 {
	if slippageBps == 0 {
		return amount
	}
	if slippageBps >= BasisPointMax {
		return 0
	}
	q, _ := u128.Mul64(amount, BasisPointMax-slippageBps).QuoUint64(BasisPointMax)
	return q
}
