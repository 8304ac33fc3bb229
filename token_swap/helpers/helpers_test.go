package helpers

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMinAmountWithSlippage(t *testing.T) {
	assert.Equal(t, uint64(1000), GetMinAmountWithSlippage(1000, 0))
	assert.Equal(t, uint64(995), GetMinAmountWithSlippage(1000, 50))
	assert.Equal(t, uint64(0), GetMinAmountWithSlippage(1000, 10_000))
	assert.Equal(t, uint64(math.MaxUint64/10_000*9_999), GetMinAmountWithSlippage(math.MaxUint64/10_000*10_000, 1))
}

func TestUiAmount(t *testing.T) {
	assert.Equal(t, "10.5", ToUiAmount(10_500_000_000, 9).String())
	assert.Equal(t, "0.000001", ToUiAmount(1, 6).String())

	raw, err := FromUiAmount(decimal.RequireFromString("200.1234567"), 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(200_123_456), raw)

	_, err = FromUiAmount(decimal.NewFromInt(-1), 6)
	assert.Error(t, err)

	_, err = FromUiAmount(decimal.RequireFromString("1e30"), 9)
	assert.Error(t, err)
}
