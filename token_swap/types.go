package tokenswap

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/symmetry-go/token_swap/shared"
)

type Side = shared.Side

const (
	SideInput  = shared.SideInput
	SideOutput = shared.SideOutput
)

type AssetSettings = shared.AssetSettings

type OraclePrice = shared.OraclePrice

type CurvePoint = shared.CurvePoint

type CurveData = shared.CurveData

type PoolComposition = shared.PoolComposition

type FeeRecipients = shared.FeeRecipients

type Snapshot = shared.Snapshot

type QuoteParams = shared.QuoteParams

type QuoteResult = shared.QuoteResult

type FeeSplit = shared.FeeSplit

type TradeLeg = shared.TradeLeg

type AssetError = shared.AssetError

// Errors.
var (
	ErrLiquidityProvisionDisabled = shared.ErrLiquidityProvisionDisabled
	ErrAssetNotSupported          = shared.ErrAssetNotSupported
	ErrAssetNotInComposition      = shared.ErrAssetNotInComposition
	ErrOracleStale                = shared.ErrOracleStale
	ErrSellerWeightExceeded       = shared.ErrSellerWeightExceeded
	ErrBuyerWeightBelowMinimum    = shared.ErrBuyerWeightBelowMinimum
	ErrIdenticalAssets            = shared.ErrIdenticalAssets
	ErrInvalidSnapshot            = shared.ErrInvalidSnapshot
	ErrInvalidFeeRecipients       = shared.ErrInvalidFeeRecipients
	ErrSnapshotNotLoaded          = shared.ErrSnapshotNotLoaded
)

// SwapParams describes one swap instruction.
type SwapParams struct {
	SourceMint              solanago.PublicKey
	DestinationMint         solanago.PublicKey
	SourceTokenAccount      solanago.PublicKey
	DestinationTokenAccount solanago.PublicKey
	UserTransferAuthority   solanago.PublicKey
	InAmount                uint64
	// MinimumAmountOut is encoded as is; zero disables the on-chain check.
	MinimumAmountOut uint64
}
