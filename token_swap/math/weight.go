package math

import (
	"github.com/krazyTry/symmetry-go/token_swap/helpers"
	"github.com/krazyTry/symmetry-go/token_swap/shared"
)

// WeightLeg is one side of a trade as seen by the weight check.
type WeightLeg struct {
	Holding      uint64
	Decimals     uint8
	AvgPrice     uint64
	TargetWeight uint64
}

func (l WeightLeg) worth(amount uint64) uint64 {
	return AmountToValue(amount, l.Decimals, l.AvgPrice)
}

// Projection is the pool after a trade inflated by the safety margin.
type Projection struct {
	PoolValue       uint64
	FromWorthBefore uint64
	FromWorthAfter  uint64
	ToWorthBefore   uint64
	ToWorthAfter    uint64
	FromWeight      uint64
	ToWeight        uint64
}

// ProjectWeights applies soldAmount and boughtAmount, each inflated by 1%,
// to a pool worth poolValue and returns the resulting weights of both legs
// over helpers.WeightMultiplier. boughtAmount should exclude the share of
// fees the pool retains; the inflated amount is capped at the holding.
func ProjectWeights(poolValue uint64, from, to WeightLeg, soldAmount, boughtAmount uint64) Projection {
	p := Projection{
		FromWorthBefore: from.worth(from.Holding),
		ToWorthBefore:   to.worth(to.Holding),
	}

	safeFromAmount := MulDiv(soldAmount, helpers.SafetyMarginPct, 100)
	p.FromWorthAfter = from.worth(addSat(from.Holding, safeFromAmount))

	safeToAmount := MulDiv(boughtAmount, helpers.SafetyMarginPct, 100)
	if safeToAmount > to.Holding {
		safeToAmount = to.Holding
	}
	p.ToWorthAfter = to.worth(to.Holding - safeToAmount)

	p.PoolValue = addSat(addSat(poolValue, p.FromWorthAfter), p.ToWorthAfter)
	p.PoolValue = subSat(p.PoolValue, p.FromWorthBefore)
	p.PoolValue = subSat(p.PoolValue, p.ToWorthBefore)

	p.FromWeight = MulDiv(p.FromWorthAfter, helpers.WeightMultiplier, p.PoolValue)
	p.ToWeight = MulDiv(p.ToWorthAfter, helpers.WeightMultiplier, p.PoolValue)
	return p
}

// AllowedWeights returns the highest weight the sold token may reach and the
// lowest weight the bought token may fall to. The band is
// rebalanceThreshold*lpOffsetThreshold over 10000^2 around each target.
func AllowedWeights(fromTarget, toTarget, rebalanceThreshold, lpOffsetThreshold uint64) (maxFrom, minTo uint64) {
	const scale = helpers.BasisPointMax * helpers.BasisPointMax
	allowedOffset := MulDiv(rebalanceThreshold, lpOffsetThreshold, 1)

	maxFrom = MulDiv(fromTarget, addSat(scale, allowedOffset), scale)
	if maxFrom > helpers.WeightMultiplier {
		maxFrom = helpers.WeightMultiplier
	}
	minTo = MulDiv(toTarget, subSat(scale, allowedOffset), scale)
	return maxFrom, minTo
}

// IsRemovingDust reports whether a trade sells the base token into a token
// whose target weight is zero.
func IsRemovingDust(fromTokenID, toTargetWeight uint64) bool {
	return fromTokenID == helpers.BaseTokenID && toTargetWeight == 0
}

// CheckWeights rejects a projected trade that pushes the sold token above its
// allowed weight or the bought token below it. Removing dust lifts the
// ceiling on the sold token only.
func CheckWeights(p Projection, fromTarget, toTarget, rebalanceThreshold, lpOffsetThreshold uint64, removingDust bool) error {
	maxFrom, minTo := AllowedWeights(fromTarget, toTarget, rebalanceThreshold, lpOffsetThreshold)
	if p.FromWeight > maxFrom && !removingDust {
		return shared.ErrSellerWeightExceeded
	}
	if p.ToWeight < minTo {
		return shared.ErrBuyerWeightBelowMinimum
	}
	return nil
}

// PoolValue sums the worth of every holding at its average price.
func PoolValue(legs []WeightLeg) uint64 {
	var total uint64
	for _, leg := range legs {
		total = addSat(total, leg.worth(leg.Holding))
	}
	return total
}

// TargetAmount is the raw holding that would put leg exactly at its target
// weight in a pool worth poolValue.
func TargetAmount(leg WeightLeg, poolValue, weightSum uint64) uint64 {
	return ValueToAmount(MulDiv(leg.TargetWeight, poolValue, weightSum), leg.Decimals, leg.AvgPrice)
}
