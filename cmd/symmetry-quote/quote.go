package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krazyTry/symmetry-go/internal/config"
	tokenswap "github.com/krazyTry/symmetry-go/token_swap"
	"github.com/krazyTry/symmetry-go/token_swap/helpers"
)

type quoteOutput struct {
	InputMint    string          `json:"inputMint"`
	OutputMint   string          `json:"outputMint"`
	InAmount     uint64          `json:"inAmount"`
	OutAmount    uint64          `json:"outAmount"`
	MinOutAmount uint64          `json:"minOutAmount"`
	InUiAmount   decimal.Decimal `json:"inUiAmount"`
	OutUiAmount  decimal.Decimal `json:"outUiAmount"`
	FeeAmount    uint64          `json:"feeAmount"`
	FeeMint      string          `json:"feeMint"`
	FeePct       decimal.Decimal `json:"feePct"`
	FeeBps       decimal.Decimal `json:"feeBps"`
	Fees         feesOutput      `json:"fees"`
	FairAmount   uint64          `json:"fairAmount"`
}

type feesOutput struct {
	Protocol uint64 `json:"protocol"`
	Host     uint64 `json:"host"`
	Manager  uint64 `json:"manager"`
	Pool     uint64 `json:"pool"`
}

// session is a loaded fund plus the trade the command was asked about.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	swap   *tokenswap.TokenSwap
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(cfg.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snapshot, err := tokenswap.LoadSnapshotJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", cfg.Snapshot, err)
	}

	swap := tokenswap.NewTokenSwap(cfg.Pool, tokenswap.WithLogger(logger))
	if err := swap.Update(snapshot); err != nil {
		return nil, err
	}
	logger.Debug("snapshot loaded",
		zap.String("path", cfg.Snapshot),
		zap.String("pool", cfg.Pool.String()),
	)
	return &session{cfg: cfg, logger: logger, swap: swap}, nil
}

func (s *session) quote() (*tokenswap.QuoteResult, uint8, uint8, error) {
	snapshot := s.swap.Snapshot()
	fromID, ok := snapshot.AssetID(s.cfg.InputMint)
	if !ok {
		return nil, 0, 0, &tokenswap.AssetError{Side: tokenswap.SideInput, Mint: s.cfg.InputMint, Err: tokenswap.ErrAssetNotSupported}
	}
	toID, ok := snapshot.AssetID(s.cfg.OutputMint)
	if !ok {
		return nil, 0, 0, &tokenswap.AssetError{Side: tokenswap.SideOutput, Mint: s.cfg.OutputMint, Err: tokenswap.ErrAssetNotSupported}
	}
	fromDecimals, toDecimals := snapshot.Assets[fromID].Decimals, snapshot.Assets[toID].Decimals

	inAmount, err := helpers.FromUiAmount(s.cfg.Amount, fromDecimals)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("amount: %w", err)
	}
	quote, err := s.swap.Quote(tokenswap.QuoteParams{
		InputMint:  s.cfg.InputMint,
		OutputMint: s.cfg.OutputMint,
		InAmount:   inAmount,
	})
	if err != nil {
		return nil, 0, 0, err
	}
	return quote, fromDecimals, toDecimals, nil
}

func runQuote(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	quote, fromDecimals, toDecimals, err := s.quote()
	if err != nil {
		return err
	}

	return writeJSON(cmd, quoteOutput{
		InputMint:    s.cfg.InputMint.String(),
		OutputMint:   s.cfg.OutputMint.String(),
		InAmount:     quote.InAmount,
		OutAmount:    quote.OutAmount,
		MinOutAmount: helpers.GetMinAmountWithSlippage(quote.OutAmount, s.cfg.SlippageBps),
		InUiAmount:   helpers.ToUiAmount(quote.InAmount, fromDecimals),
		OutUiAmount:  helpers.ToUiAmount(quote.OutAmount, toDecimals),
		FeeAmount:    quote.FeeAmount,
		FeeMint:      quote.FeeMint.String(),
		FeePct:       quote.FeePct,
		FeeBps:       quote.FeeBps(),
		Fees: feesOutput{
			Protocol: quote.Fees.Protocol,
			Host:     quote.Fees.Host,
			Manager:  quote.Fees.Manager,
			Pool:     quote.Fees.Pool,
		},
		FairAmount: quote.FairAmount,
	})
}
