package math

import (
	"github.com/shopspring/decimal"

	"github.com/krazyTry/symmetry-go/token_swap/helpers"
	"github.com/krazyTry/symmetry-go/token_swap/shared"
)

// SplitFees divides totalFees between the protocol, the host and the manager
// by their percent shares; the pool keeps the remainder so the four parts
// always add up to totalFees. Shares summing above 100 leave the pool with
// nothing rather than wrapping.
func SplitFees(totalFees uint64, recipients shared.FeeRecipients) shared.FeeSplit {
	protocolFee := MulDiv(totalFees, recipients.ProtocolBps, helpers.FeeShareBase)
	hostFee := MulDiv(totalFees, recipients.HostBps, helpers.FeeShareBase)
	managerFee := MulDiv(totalFees, recipients.ManagerBps, helpers.FeeShareBase)
	return shared.FeeSplit{
		Protocol: protocolFee,
		Host:     hostFee,
		Manager:  managerFee,
		Pool:     subSat(subSat(subSat(totalFees, protocolFee), hostFee), managerFee),
	}
}

// EffectiveFeeRate returns totalFees over fairAmount scaled by 1_000_000,
// i.e. a percentage with four decimals.
func EffectiveFeeRate(totalFees, fairAmount uint64) uint64 {
	return MulDiv(totalFees, helpers.BasisPointMax*100, fairAmount)
}

// FeePct converts an EffectiveFeeRate to a percentage.
func FeePct(feeRate uint64) decimal.Decimal {
	return decimal.New(int64(feeRate), -4)
}
