package math

import (
	"github.com/krazyTry/symmetry-go/token_swap/helpers"
	"github.com/krazyTry/symmetry-go/token_swap/shared"
)

// curveWalk steps through every curve point and then one synthetic final
// segment. Thresholds are consumed by offset first; whatever is left of a
// segment is handed to consume at the effective price of that segment.
type curveWalk struct {
	points   []shared.CurvePoint
	useCurve bool
	price    uint64
	offset   uint64
	// adopt reports whether the curve price replaces the running price.
	// Prices only ever move against the trader.
	adopt func(curvePrice, price uint64) bool
	// final sizes the last segment at the running price.
	final func(price uint64) uint64
	// consume prices one segment and reports whether the trade is filled.
	consume func(amount, price uint64) bool
}

func (w *curveWalk) run() {
	points := w.points
	if len(points) > helpers.MaxCurvePoints {
		points = points[:helpers.MaxCurvePoints]
	}
	price, offset := w.price, w.offset
	for step := 0; step <= len(points); step++ {
		var stepAmount uint64
		if step < len(points) {
			stepAmount = points[step].Amount
			if w.useCurve && w.adopt(points[step].Price, price) {
				price = points[step].Price
			}
		} else {
			stepAmount = w.final(price)
			offset = 0
		}
		if stepAmount <= offset {
			offset -= stepAmount
			continue
		}
		amount := stepAmount - offset
		offset = 0
		if w.consume(amount, price) {
			return
		}
	}
}

func feeOnValues(valueBefore, valueAfter uint64, settings shared.AssetSettings) uint64 {
	return MulDiv(valueBefore, uint64(settings.FeeBeforeTargetBps), helpers.BasisPointMax) +
		MulDiv(valueAfter, uint64(settings.FeeAfterTargetBps), helpers.BasisPointMax)
}

// SellValue returns the USD value, net of fees, the pool pays for amount of
// the sold token. startAmount and targetAmount are the pool's current and
// target holdings of that token.
func SellValue(
	amount uint64,
	settings shared.AssetSettings,
	price shared.OraclePrice,
	startAmount, targetAmount uint64,
	curve []shared.CurvePoint,
) uint64 {
	var (
		current  = startAmount
		left     = amount
		outValue uint64
	)

	w := &curveWalk{
		points:   curve,
		useCurve: settings.UseCurvePrice,
		price:    price.SellPrice,
		offset:   subSat(startAmount, targetAmount),
		adopt: func(curvePrice, price uint64) bool {
			return curvePrice < price
		},
		final: func(uint64) uint64 {
			return left
		},
		consume: func(amountInInterval, price uint64) bool {
			if amountInInterval > left {
				amountInInterval = left
			}

			// up to the target the pool moves towards balance
			amountBefore := amountInInterval
			if current >= targetAmount {
				amountBefore = 0
			} else if addSat(current, amountInInterval) >= targetAmount {
				amountBefore = targetAmount - current
			}
			amountAfter := amountInInterval - amountBefore

			valueBefore := AmountToValue(amountBefore, settings.Decimals, price)
			valueAfter := AmountToValue(amountAfter, settings.Decimals, price)
			fees := feeOnValues(valueBefore, valueAfter, settings)

			outValue = addSat(outValue, subSat(addSat(valueBefore, valueAfter), fees))
			left -= amountInInterval
			current = addSat(current, amountInInterval)
			return left == 0
		},
	}
	w.run()

	return outValue
}

// BuyAmount returns the raw amount of the bought token the pool pays out for
// a USD value budget. startAmount and targetAmount are the pool's current and
// target holdings of that token.
func BuyAmount(
	value uint64,
	settings shared.AssetSettings,
	price shared.OraclePrice,
	startAmount, targetAmount uint64,
	curve []shared.CurvePoint,
) uint64 {
	var (
		current   = startAmount
		left      = value
		outAmount uint64
	)

	w := &curveWalk{
		points:   curve,
		useCurve: settings.UseCurvePrice,
		price:    price.BuyPrice,
		offset:   subSat(targetAmount, startAmount),
		adopt: func(curvePrice, price uint64) bool {
			return curvePrice > price
		},
		final: func(price uint64) uint64 {
			return ValueToAmount(MulDiv(left, 2, 1), settings.Decimals, price)
		},
		consume: func(amountInInterval, price uint64) bool {
			valueInInterval := AmountToValue(amountInInterval, settings.Decimals, price)
			if valueInInterval > left {
				valueInInterval = left
				amountInInterval = ValueToAmount(valueInInterval, settings.Decimals, price)
			}

			// above the target the pool moves towards balance
			valueBefore := valueInInterval
			if current <= targetAmount {
				valueBefore = 0
			} else if current <= addSat(targetAmount, amountInInterval) {
				valueBefore = subSat(valueBefore, AmountToValue(addSat(targetAmount, amountInInterval)-current, settings.Decimals, price))
			}
			valueAfter := valueInInterval - valueBefore
			fees := feeOnValues(valueBefore, valueAfter, settings)

			bought := ValueToAmount(subSat(valueInInterval, fees), settings.Decimals, price)
			outAmount = addSat(outAmount, bought)
			left -= valueInInterval
			current = subSat(current, bought)
			return left == 0
		},
	}
	w.run()

	return outAmount
}
