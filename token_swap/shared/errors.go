package shared

import (
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
)

var (
	ErrLiquidityProvisionDisabled = errors.New("manager has disabled liquidity provision on this fund")
	ErrAssetNotSupported          = errors.New("token not found in supported tokens")
	ErrAssetNotInComposition      = errors.New("token not found in the fund composition")
	ErrOracleStale                = errors.New("one of the tokens has offline oracle status")
	ErrSellerWeightExceeded       = errors.New("from token weight exceeds max allowed weight")
	ErrBuyerWeightBelowMinimum    = errors.New("to token weight falls below min allowed weight")
	ErrIdenticalAssets            = errors.New("input and output tokens are the same")

	ErrInvalidSnapshot      = errors.New("invalid snapshot")
	ErrInvalidFeeRecipients = errors.New("fee recipient shares exceed 100")
	ErrSnapshotNotLoaded    = errors.New("pool snapshot not loaded")
)

// AssetError names the asset behind an ErrAssetNotSupported or
// ErrAssetNotInComposition rejection.
type AssetError struct {
	Side Side
	Mint solanago.PublicKey
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s token %s: %v", e.Side, e.Mint, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
