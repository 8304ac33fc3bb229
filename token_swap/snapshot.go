package tokenswap

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/tidwall/gjson"

	"github.com/krazyTry/symmetry-go/token_swap/helpers"
)

// LoadSnapshotJSON parses a snapshot exported as JSON. Amounts and prices
// may be given as numbers or decimal strings; missing accounts stay zero.
//
//	{
//	  "pool": {
//	    "manager": "...", "host": "...", "lpDisabled": false,
//	    "weightSum": 10000, "rebalanceThreshold": 2000, "lpOffsetThreshold": 10000,
//	    "tokens": [{"id": 0, "amount": "2000000000", "targetWeight": 5000}]
//	  },
//	  "assets": [{
//	    "mint": "...", "decimals": 6, "feeBeforeTargetBps": 10, "feeAfterTargetBps": 30,
//	    "useCurvePrice": false, "lpDisabled": false,
//	    "oracleAccount": "...", "pdaTokenAccount": "...",
//	    "oracle": {"buyPrice": 1000000, "sellPrice": 1000000, "avgPrice": 1000000, "live": true},
//	    "curve": {"buy": [{"amount": 0, "price": 0}], "sell": []}
//	  }],
//	  "feeRecipients": {"protocol": 20, "host": 10, "manager": 10}
//	}
func LoadSnapshotJSON(data []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidSnapshot)
	}
	root := gjson.ParseBytes(data)

	snapshot := &Snapshot{}
	var err error

	pool := root.Get("pool")
	if snapshot.Pool.Manager, err = parsePublicKey(pool, "manager"); err != nil {
		return nil, err
	}
	if snapshot.Pool.Host, err = parsePublicKey(pool, "host"); err != nil {
		return nil, err
	}
	snapshot.Pool.LpDisabled = pool.Get("lpDisabled").Bool()
	snapshot.Pool.WeightSum = pool.Get("weightSum").Uint()
	snapshot.Pool.RebalanceThreshold = pool.Get("rebalanceThreshold").Uint()
	snapshot.Pool.LpOffsetThreshold = pool.Get("lpOffsetThreshold").Uint()
	for _, token := range pool.Get("tokens").Array() {
		snapshot.Pool.Tokens = append(snapshot.Pool.Tokens, token.Get("id").Uint())
		snapshot.Pool.Amounts = append(snapshot.Pool.Amounts, token.Get("amount").Uint())
		snapshot.Pool.TargetWeights = append(snapshot.Pool.TargetWeights, token.Get("targetWeight").Uint())
	}

	for i, asset := range root.Get("assets").Array() {
		settings, err := parseAssetSettings(asset)
		if err != nil {
			return nil, fmt.Errorf("asset %d: %w", i, err)
		}
		snapshot.Assets = append(snapshot.Assets, settings)

		oracle := asset.Get("oracle")
		snapshot.Oracles = append(snapshot.Oracles, OraclePrice{
			BuyPrice:  oracle.Get("buyPrice").Uint(),
			SellPrice: oracle.Get("sellPrice").Uint(),
			AvgPrice:  oracle.Get("avgPrice").Uint(),
			Live:      oracle.Get("live").Bool(),
		})

		curve := asset.Get("curve")
		buy, err := parseCurve(curve.Get("buy"))
		if err != nil {
			return nil, fmt.Errorf("asset %d buy curve: %w", i, err)
		}
		sell, err := parseCurve(curve.Get("sell"))
		if err != nil {
			return nil, fmt.Errorf("asset %d sell curve: %w", i, err)
		}
		snapshot.Curves = append(snapshot.Curves, CurveData{Buy: buy, Sell: sell})
	}

	fees := root.Get("feeRecipients")
	snapshot.FeeRecipients = FeeRecipients{
		ProtocolBps: fees.Get("protocol").Uint(),
		HostBps:     fees.Get("host").Uint(),
		ManagerBps:  fees.Get("manager").Uint(),
	}

	if err := ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func parseAssetSettings(asset gjson.Result) (AssetSettings, error) {
	decimals := asset.Get("decimals").Uint()
	if decimals > 19 {
		return AssetSettings{}, fmt.Errorf("%w: decimals %d", ErrInvalidSnapshot, decimals)
	}
	feeBefore := asset.Get("feeBeforeTargetBps").Uint()
	feeAfter := asset.Get("feeAfterTargetBps").Uint()
	if feeBefore > helpers.BasisPointMax || feeAfter > helpers.BasisPointMax {
		return AssetSettings{}, fmt.Errorf("%w: fee bps %d/%d", ErrInvalidSnapshot, feeBefore, feeAfter)
	}

	settings := AssetSettings{
		Decimals:           uint8(decimals),
		FeeBeforeTargetBps: uint16(feeBefore),
		FeeAfterTargetBps:  uint16(feeAfter),
		UseCurvePrice:      asset.Get("useCurvePrice").Bool(),
		LpDisabled:         asset.Get("lpDisabled").Bool(),
	}
	var err error
	if settings.Mint, err = parsePublicKey(asset, "mint"); err != nil {
		return AssetSettings{}, err
	}
	if settings.OracleAccount, err = parsePublicKey(asset, "oracleAccount"); err != nil {
		return AssetSettings{}, err
	}
	if settings.PdaTokenAccount, err = parsePublicKey(asset, "pdaTokenAccount"); err != nil {
		return AssetSettings{}, err
	}
	return settings, nil
}

func parseCurve(points gjson.Result) ([]CurvePoint, error) {
	list := points.Array()
	if len(list) == 0 {
		return nil, nil
	}
	if len(list) > helpers.MaxCurvePoints {
		return nil, fmt.Errorf("%w: %d curve points, max %d", ErrInvalidSnapshot, len(list), helpers.MaxCurvePoints)
	}
	out := make([]CurvePoint, 0, len(list))
	for _, point := range list {
		out = append(out, CurvePoint{
			Amount: point.Get("amount").Uint(),
			Price:  point.Get("price").Uint(),
		})
	}
	return out, nil
}

func parsePublicKey(obj gjson.Result, path string) (solanago.PublicKey, error) {
	raw := obj.Get(path).String()
	if raw == "" {
		return solanago.PublicKey{}, nil
	}
	key, err := solanago.PublicKeyFromBase58(raw)
	if err != nil {
		return solanago.PublicKey{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidSnapshot, path, raw, err)
	}
	return key, nil
}
