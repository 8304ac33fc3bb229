package helpers

import (
	"errors"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// ToUiAmount converts a raw token amount to whole units.
func ToUiAmount(amount uint64, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals))
}

// FromUiAmount converts whole units to a raw token amount, truncating any
// precision beyond decimals.
func FromUiAmount(amount decimal.Decimal, decimals uint8) (uint64, error) {
	if amount.IsNegative() {
		return 0, errors.New("amount cannot be negative")
	}
	raw := amount.Shift(int32(decimals)).Truncate(0).BigInt()
	if !raw.IsUint64() {
		return 0, errors.New("amount overflows uint64")
	}
	return raw.Uint64(), nil
}

// PriceToUi converts a USD fixed-point price or value with priceDecimals
// fractional digits.
func PriceToUi(price uint64, priceDecimals uint8) decimal.Decimal {
	return ToUiAmount(price, priceDecimals)
}

// FindAssociatedTokenAddress derives the SPL associated token account of
// wallet for mint.
func FindAssociatedTokenAddress(wallet, mint, tokenProgram solanago.PublicKey) (solanago.PublicKey, error) {
	ata, _, err := solanago.FindProgramAddress([][]byte{wallet.Bytes(), tokenProgram.Bytes(), mint.Bytes()}, solanago.SPLAssociatedTokenAccountProgramID)
	return ata, err
}
