package tokenswap

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/symmetry-go/token_swap/helpers"
)

// SwapInstructionData is the payload of the fund swap instruction.
type SwapInstructionData struct {
	Instruction      uint64
	FromTokenID      uint64
	ToTokenID        uint64
	InAmount         uint64
	MinimumAmountOut uint64
}

func encodeSwapInstructionData(leg TradeLeg, minimumAmountOut uint64) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	err := enc.Encode(SwapInstructionData{
		Instruction:      helpers.SwapInstructionID,
		FromTokenID:      leg.FromTokenID,
		ToTokenID:        leg.ToTokenID,
		InAmount:         leg.Amount,
		MinimumAmountOut: minimumAmountOut,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeSwapInstructionData parses the payload built by SwapInstruction.
func DecodeSwapInstructionData(data []byte) (SwapInstructionData, error) {
	var out SwapInstructionData
	if err := bin.NewBorshDecoder(data).Decode(&out); err != nil {
		return SwapInstructionData{}, err
	}
	if out.Instruction != helpers.SwapInstructionID {
		return SwapInstructionData{}, fmt.Errorf("unexpected instruction id %d", out.Instruction)
	}
	return out, nil
}

// swapAccounts returns the account metas of the swap instruction. Fees are
// paid in the destination mint to the associated token accounts of the
// protocol, the host and the manager; the oracles of every held token follow
// as remaining accounts.
func (t *TokenSwap) swapAccounts(snapshot *Snapshot, leg TradeLeg, params SwapParams) (solanago.AccountMetaSlice, error) {
	tokenProgram := solanago.TokenProgramID
	swapFee, err := helpers.FindAssociatedTokenAddress(helpers.SwapFeeAddress, params.DestinationMint, tokenProgram)
	if err != nil {
		return nil, err
	}
	hostFee, err := helpers.FindAssociatedTokenAddress(snapshot.Pool.Host, params.DestinationMint, tokenProgram)
	if err != nil {
		return nil, err
	}
	managerFee, err := helpers.FindAssociatedTokenAddress(snapshot.Pool.Manager, params.DestinationMint, tokenProgram)
	if err != nil {
		return nil, err
	}

	accounts := solanago.AccountMetaSlice{
		solanago.NewAccountMeta(params.UserTransferAuthority, true, true),
		solanago.NewAccountMeta(t.key, true, false),
		solanago.NewAccountMeta(helpers.PdaAddress, false, false),
		solanago.NewAccountMeta(snapshot.Assets[leg.FromTokenID].PdaTokenAccount, true, false),
		solanago.NewAccountMeta(params.SourceTokenAccount, true, false),
		solanago.NewAccountMeta(snapshot.Assets[leg.ToTokenID].PdaTokenAccount, true, false),
		solanago.NewAccountMeta(params.DestinationTokenAccount, true, false),
		solanago.NewAccountMeta(swapFee, true, false),
		solanago.NewAccountMeta(hostFee, true, false),
		solanago.NewAccountMeta(managerFee, true, false),
		solanago.NewAccountMeta(helpers.TokenListAddress, false, false),
		solanago.NewAccountMeta(helpers.CurveDataAddress, false, false),
		solanago.NewAccountMeta(tokenProgram, false, false),
	}
	for _, id := range snapshot.Pool.Tokens {
		accounts = append(accounts, solanago.NewAccountMeta(snapshot.Assets[id].OracleAccount, false, false))
	}
	return accounts, nil
}

// SwapInstruction builds the fund swap instruction for params against the
// current snapshot. It does not price the trade; call Quote for that.
func (t *TokenSwap) SwapInstruction(params SwapParams) (solanago.Instruction, error) {
	snapshot := t.snapshot.Load()
	if snapshot == nil {
		return nil, ErrSnapshotNotLoaded
	}
	legs, err := DescribeTrade(snapshot, QuoteParams{
		InputMint:  params.SourceMint,
		OutputMint: params.DestinationMint,
		InAmount:   params.InAmount,
	})
	if err != nil {
		return nil, err
	}
	leg := legs[0]

	accounts, err := t.swapAccounts(snapshot, leg, params)
	if err != nil {
		return nil, err
	}
	data, err := encodeSwapInstructionData(leg, params.MinimumAmountOut)
	if err != nil {
		return nil, err
	}
	return solanago.NewInstruction(t.programID, accounts, data), nil
}
