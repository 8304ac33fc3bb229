package u128

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul64(t *testing.T) {
	got := Mul64(math.MaxUint64, math.MaxUint64)
	want := new(big.Int).Mul(new(big.Int).SetUint64(math.MaxUint64), new(big.Int).SetUint64(math.MaxUint64))
	assert.Equal(t, want.String(), got.String())
	assert.False(t, got.IsUint64())
	assert.True(t, Mul64(1<<32, 1<<31).IsUint64())
}

func TestQuoUint64(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint64
		c      uint64
		want   uint64
		wantOk bool
	}{
		{"exact", 20, 30, 6, 100, true},
		{"floor", 10, 10, 3, 33, true},
		{"wide intermediate", math.MaxUint64, 1_000_000_000, 1_000_000_000, math.MaxUint64, true},
		{"quotient overflow", math.MaxUint64, 2, 1, 0, false},
		{"zero divisor", 5, 5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mul64(tt.a, tt.b).QuoUint64(tt.c)
			require.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
