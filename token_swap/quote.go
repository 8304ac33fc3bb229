package tokenswap

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/symmetry-go/token_swap/math"
)

// assetPair is a trade resolved against the token list.
type assetPair struct {
	fromID uint64
	toID   uint64
}

func resolveAssets(snapshot *Snapshot, inputMint, outputMint solanago.PublicKey) (assetPair, error) {
	fromID, ok := snapshot.AssetID(inputMint)
	if !ok {
		return assetPair{}, &AssetError{Side: SideInput, Mint: inputMint, Err: ErrAssetNotSupported}
	}
	toID, ok := snapshot.AssetID(outputMint)
	if !ok {
		return assetPair{}, &AssetError{Side: SideOutput, Mint: outputMint, Err: ErrAssetNotSupported}
	}
	if fromID == toID {
		return assetPair{}, ErrIdenticalAssets
	}
	return assetPair{fromID: fromID, toID: toID}, nil
}

// convert prices amount of one token in another through a USD value.
func convert(amount uint64, fromDecimals uint8, fromPrice uint64, toDecimals uint8, toPrice uint64) uint64 {
	return math.ValueToAmount(math.AmountToValue(amount, fromDecimals, fromPrice), toDecimals, toPrice)
}

// GetQuote prices selling params.InAmount of params.InputMint for
// params.OutputMint against the pool in snapshot. The snapshot is only read.
//
// The quote is rejected when liquidity provision is off, when either mint is
// unknown or not held, when any held token has a stale oracle, or when the
// trade would move the pool weights outside the rebalance band.
func GetQuote(snapshot *Snapshot, params QuoteParams) (*QuoteResult, error) {
	if snapshot != nil && snapshot.Pool.LpDisabled {
		return nil, ErrLiquidityProvisionDisabled
	}
	if err := ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}
	pool := snapshot.Pool

	pair, err := resolveAssets(snapshot, params.InputMint, params.OutputMint)
	if err != nil {
		return nil, err
	}
	fromPos, ok := pool.IndexOf(pair.fromID)
	if !ok {
		return nil, &AssetError{Side: SideInput, Mint: params.InputMint, Err: ErrAssetNotInComposition}
	}
	toPos, ok := pool.IndexOf(pair.toID)
	if !ok {
		return nil, &AssetError{Side: SideOutput, Mint: params.OutputMint, Err: ErrAssetNotInComposition}
	}

	legs := make([]math.WeightLeg, len(pool.Tokens))
	for i, id := range pool.Tokens {
		oracle := snapshot.Oracles[id]
		if !oracle.Live {
			return nil, fmt.Errorf("%w: token %s", ErrOracleStale, snapshot.Assets[id].Mint)
		}
		legs[i] = math.WeightLeg{
			Holding:      pool.Amounts[i],
			Decimals:     snapshot.Assets[id].Decimals,
			AvgPrice:     oracle.AvgPrice,
			TargetWeight: pool.TargetWeights[i],
		}
	}
	poolValue := math.PoolValue(legs)

	fromLeg, toLeg := legs[fromPos], legs[toPos]
	fromSettings, toSettings := snapshot.Assets[pair.fromID], snapshot.Assets[pair.toID]
	fromOracle, toOracle := snapshot.Oracles[pair.fromID], snapshot.Oracles[pair.toID]

	fromTarget := math.TargetAmount(fromLeg, poolValue, pool.WeightSum)
	toTarget := math.TargetAmount(toLeg, poolValue, pool.WeightSum)

	value := math.SellValue(params.InAmount, fromSettings, fromOracle, fromLeg.Holding, fromTarget, snapshot.Curve(pair.fromID).Sell)
	outAmount := math.BuyAmount(value, toSettings, toOracle, toLeg.Holding, toTarget, snapshot.Curve(pair.toID).Buy)

	// spot conversion without curves or fees, bounded by inventory
	amountWithoutFees := convert(params.InAmount, fromSettings.Decimals, fromOracle.SellPrice, toSettings.Decimals, toOracle.BuyPrice)
	if amountWithoutFees > toLeg.Holding {
		amountWithoutFees = toLeg.Holding
	}
	fairAmount := convert(params.InAmount, fromSettings.Decimals, fromOracle.AvgPrice, toSettings.Decimals, toOracle.AvgPrice)
	if outAmount > amountWithoutFees {
		outAmount = amountWithoutFees
	}

	totalFees := amountWithoutFees - outAmount
	fees := math.SplitFees(totalFees, snapshot.FeeRecipients)
	feeRate := math.EffectiveFeeRate(totalFees, fairAmount)

	projection := math.ProjectWeights(poolValue, fromLeg, toLeg, params.InAmount, amountWithoutFees-fees.Pool)
	removingDust := math.IsRemovingDust(pair.fromID, toLeg.TargetWeight)
	if err := math.CheckWeights(projection, fromLeg.TargetWeight, toLeg.TargetWeight,
		pool.RebalanceThreshold, pool.LpOffsetThreshold, removingDust); err != nil {
		return nil, err
	}

	return &QuoteResult{
		InAmount:   params.InAmount,
		OutAmount:  outAmount,
		FeeAmount:  totalFees,
		FeeMint:    params.OutputMint,
		FeeRate:    feeRate,
		FeePct:     math.FeePct(feeRate),
		Fees:       fees,
		FairAmount: fairAmount,
	}, nil
}

// DescribeTrade returns the legs an instruction encoder needs to execute the
// trade. Only the token list is consulted; pricing is left to GetQuote.
func DescribeTrade(snapshot *Snapshot, params QuoteParams) ([]TradeLeg, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	pair, err := resolveAssets(snapshot, params.InputMint, params.OutputMint)
	if err != nil {
		return nil, err
	}
	return []TradeLeg{{
		FromTokenID: pair.fromID,
		ToTokenID:   pair.toID,
		Amount:      params.InAmount,
	}}, nil
}
