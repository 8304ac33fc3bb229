package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "symmetry-quote",
		Short:        "Quote swaps against a Symmetry fund snapshot",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("snapshot", "./snapshot.json", "fund snapshot JSON path")
	root.PersistentFlags().String("pool", "", "fund state account")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a swap",
		RunE:  runQuote,
	}
	addTradeFlags(quoteCmd)
	root.AddCommand(quoteCmd)

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Build the swap instruction for a quoted trade",
		RunE:  runDescribe,
	}
	addTradeFlags(describeCmd)
	describeCmd.Flags().String("user", "", "wallet signing the swap")
	root.AddCommand(describeCmd)

	mintsCmd := &cobra.Command{
		Use:   "mints",
		Short: "List tradable mints and the accounts a refresh needs",
		RunE:  runMints,
	}
	root.AddCommand(mintsCmd)

	return root
}

func addTradeFlags(cmd *cobra.Command) {
	cmd.Flags().String("input-mint", "", "mint sold to the fund")
	cmd.Flags().String("output-mint", "", "mint bought from the fund")
	cmd.Flags().String("amount", "", "amount sold, in whole tokens (e.g. 1.5)")
	cmd.Flags().Uint64("slippage-bps", 50, "slippage tolerance for the minimum out amount")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
