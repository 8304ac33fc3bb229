package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
)

var (
	// ProgramID is the Symmetry funds program.
	ProgramID = solanago.MustPublicKeyFromBase58("2KehYt3KsEQR53jYcxjbQp2d2kCp4AkuQW68atufRwSr")
	// TokenListAddress holds the supported token settings.
	TokenListAddress = solanago.MustPublicKeyFromBase58("3SnUughtueoVrhevXTLMf586qvKNNXggNsc7NgoMUU1t")
	// CurveDataAddress holds the buy/sell curves of every token.
	CurveDataAddress = solanago.MustPublicKeyFromBase58("4QMjSHuM3iS7Fdfi8kZJfHRKoEJSDHEtEwqbChsTcUVK")
	// PdaAddress is the program authority owning the fund token accounts.
	PdaAddress = solanago.MustPublicKeyFromBase58("BLBYiq48WcLQ5SxiftyKmPtmsZPUBEnDEjqEnKGAR4zx")
	// SwapFeeAddress receives the protocol share of swap fees.
	SwapFeeAddress = solanago.MustPublicKeyFromBase58("AWfpfzA6FYbqx4JLz75PDgsjH7jtBnnmJ6MXW5zNY2Ei")
)

const (
	Label = "Symmetry"

	// SwapInstructionID is the 8-byte discriminator of the swap instruction.
	SwapInstructionID uint64 = 219478785678209410

	// MaxTokensInAssetPool bounds the token list and the fund composition.
	MaxTokensInAssetPool = 20
	// MaxCurvePoints bounds each buy/sell curve.
	MaxCurvePoints = 10

	BasisPointMax    = 10_000
	WeightMultiplier = 10_000
	// FeeShareBase is the base of the protocol/host/manager fee shares.
	FeeShareBase = 100

	// BaseTokenID is the reserve asset; selling it into a zero-weight token
	// removes dust.
	BaseTokenID uint64 = 0

	// SafetyMarginPct inflates both legs of a trade before the weight check.
	SafetyMarginPct = 101
)
