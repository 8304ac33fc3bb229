package tokenswap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assetJSON(a AssetSettings, o OraclePrice, curve string) string {
	return fmt.Sprintf(`{
		"mint": %q, "decimals": %d, "feeBeforeTargetBps": %d, "feeAfterTargetBps": %d,
		"oracleAccount": %q, "pdaTokenAccount": %q,
		"oracle": {"buyPrice": %d, "sellPrice": "%d", "avgPrice": %d, "live": %t},
		"curve": %s
	}`, a.Mint, a.Decimals, a.FeeBeforeTargetBps, a.FeeAfterTargetBps, a.OracleAccount, a.PdaTokenAccount,
		o.BuyPrice, o.SellPrice, o.AvgPrice, o.Live, curve)
}

func twoAssetSnapshotJSON() string {
	s := twoAssetSnapshot()
	assets := make([]string, len(s.Assets))
	for i := range s.Assets {
		assets[i] = assetJSON(s.Assets[i], s.Oracles[i], `{"buy": [], "sell": []}`)
	}
	return fmt.Sprintf(`{
		"pool": {
			"manager": %q, "host": %q, "lpDisabled": false,
			"weightSum": 10000, "rebalanceThreshold": 2000, "lpOffsetThreshold": 10000,
			"tokens": [
				{"id": 0, "amount": "2000000000", "targetWeight": 5000},
				{"id": 1, "amount": 100000000000, "targetWeight": 5000}
			]
		},
		"assets": [%s],
		"feeRecipients": {"protocol": 20, "host": 10, "manager": 10}
	}`, s.Pool.Manager, s.Pool.Host, strings.Join(assets, ","))
}

func TestLoadSnapshotJSON(t *testing.T) {
	snapshot, err := LoadSnapshotJSON([]byte(twoAssetSnapshotJSON()))
	require.NoError(t, err)
	assert.Equal(t, twoAssetSnapshot(), snapshot)

	quote, err := GetQuote(snapshot, QuoteParams{InputMint: wsolMint, OutputMint: usdcMint, InAmount: 10_000_000_000})
	require.NoError(t, err)
	assert.Equal(t, uint64(198_801_800), quote.OutAmount)
}

func TestLoadSnapshotJSONCurves(t *testing.T) {
	s := twoAssetSnapshot()
	curve := `{"buy": [{"amount": 500000000, "price": 1010000}], "sell": [{"amount": "500000000", "price": "990000"}]}`
	raw := fmt.Sprintf(`{
		"pool": {"weightSum": 10000, "tokens": [{"id": 0, "amount": 1, "targetWeight": 10000}]},
		"assets": [%s]
	}`, assetJSON(s.Assets[0], s.Oracles[0], curve))

	snapshot, err := LoadSnapshotJSON([]byte(raw))
	require.NoError(t, err)
	require.Len(t, snapshot.Curves, 1)
	assert.Equal(t, CurveData{
		Buy:  []CurvePoint{{Amount: 500_000_000, Price: 1_010_000}},
		Sell: []CurvePoint{{Amount: 500_000_000, Price: 990_000}},
	}, snapshot.Curves[0])
	assert.True(t, snapshot.Pool.Manager.IsZero())
}

func TestLoadSnapshotJSONErrors(t *testing.T) {
	tooLong := `[` + strings.TrimSuffix(strings.Repeat(`{"amount": 1, "price": 1},`, 11), ",") + `]`

	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", `{"pool": `},
		{"bad mint", `{"pool": {"weightSum": 1}, "assets": [{"mint": "not-a-key"}]}`},
		{"bad manager", `{"pool": {"manager": "0OIl", "weightSum": 1}}`},
		{"decimals out of range", `{"pool": {"weightSum": 1}, "assets": [{"decimals": 20}]}`},
		{"fee above 100%", `{"pool": {"weightSum": 1}, "assets": [{"feeAfterTargetBps": 10001}]}`},
		{"too many curve points", `{"pool": {"weightSum": 1}, "assets": [{"curve": {"sell": ` + tooLong + `}}]}`},
		{"zero weight sum", `{"pool": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSnapshotJSON([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}
