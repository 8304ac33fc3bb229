package main

import (
	"encoding/base64"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	tokenswap "github.com/krazyTry/symmetry-go/token_swap"
	"github.com/krazyTry/symmetry-go/token_swap/helpers"
)

type accountOutput struct {
	Pubkey     string `json:"pubkey"`
	IsWritable bool   `json:"isWritable"`
	IsSigner   bool   `json:"isSigner"`
}

type instructionOutput struct {
	ProgramID string                        `json:"programId"`
	Legs      []tokenswap.TradeLeg          `json:"legs"`
	Data      string                        `json:"data"`
	Decoded   tokenswap.SwapInstructionData `json:"decoded"`
	Accounts  []accountOutput               `json:"accounts"`
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	if s.cfg.User.IsZero() {
		return fmt.Errorf("user is required")
	}

	quote, _, _, err := s.quote()
	if err != nil {
		return err
	}
	legs, err := tokenswap.DescribeTrade(s.swap.Snapshot(), tokenswap.QuoteParams{
		InputMint:  s.cfg.InputMint,
		OutputMint: s.cfg.OutputMint,
		InAmount:   quote.InAmount,
	})
	if err != nil {
		return err
	}

	sourceAccount, err := helpers.FindAssociatedTokenAddress(s.cfg.User, s.cfg.InputMint, solanago.TokenProgramID)
	if err != nil {
		return err
	}
	destinationAccount, err := helpers.FindAssociatedTokenAddress(s.cfg.User, s.cfg.OutputMint, solanago.TokenProgramID)
	if err != nil {
		return err
	}

	ix, err := s.swap.SwapInstruction(tokenswap.SwapParams{
		SourceMint:              s.cfg.InputMint,
		DestinationMint:         s.cfg.OutputMint,
		SourceTokenAccount:      sourceAccount,
		DestinationTokenAccount: destinationAccount,
		UserTransferAuthority:   s.cfg.User,
		InAmount:                quote.InAmount,
		MinimumAmountOut:        helpers.GetMinAmountWithSlippage(quote.OutAmount, s.cfg.SlippageBps),
	})
	if err != nil {
		return err
	}
	data, err := ix.Data()
	if err != nil {
		return err
	}
	decoded, err := tokenswap.DecodeSwapInstructionData(data)
	if err != nil {
		return err
	}

	out := instructionOutput{
		ProgramID: ix.ProgramID().String(),
		Legs:      legs,
		Data:      base64.StdEncoding.EncodeToString(data),
		Decoded:   decoded,
	}
	for _, meta := range ix.Accounts() {
		out.Accounts = append(out.Accounts, accountOutput{
			Pubkey:     meta.PublicKey.String(),
			IsWritable: meta.IsWritable,
			IsSigner:   meta.IsSigner,
		})
	}
	return writeJSON(cmd, out)
}
