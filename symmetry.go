package symmetry

import (
	tokenswap "github.com/krazyTry/symmetry-go/token_swap"
)

// NewTokenSwap creates a pricing source for one Symmetry fund.
//
// Example:
//
// swap := NewTokenSwap(fundKey, tokenswap.WithLogger(logger))
//
// swap.Update(snapshot)
//
// swap.Quote(tokenswap.QuoteParams{InputMint: wsol, OutputMint: usdc, InAmount: 1_000_000_000})
var NewTokenSwap = tokenswap.NewTokenSwap

// GetQuote prices a swap against a snapshot without holding any state.
var GetQuote = tokenswap.GetQuote
