package tokenswap

import (
	"fmt"
	"sync/atomic"

	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/symmetry-go/token_swap/helpers"
)

// TokenSwap exposes one Symmetry fund as a pricing source. It holds the
// latest snapshot handed to Update; quotes always read one snapshot whole.
type TokenSwap struct {
	key       solanago.PublicKey
	label     string
	programID solanago.PublicKey
	logger    *zap.Logger
	snapshot  atomic.Pointer[Snapshot]
}

type Option func(*TokenSwap)

func WithLogger(logger *zap.Logger) Option {
	return func(t *TokenSwap) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func WithLabel(label string) Option {
	return func(t *TokenSwap) {
		t.label = label
	}
}

func WithProgramID(programID solanago.PublicKey) Option {
	return func(t *TokenSwap) {
		t.programID = programID
	}
}

// NewTokenSwap creates a pricing source for the fund state account key.
func NewTokenSwap(key solanago.PublicKey, opts ...Option) *TokenSwap {
	t := &TokenSwap{
		key:       key,
		label:     helpers.Label,
		programID: helpers.ProgramID,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(zap.String("fund", key.String()))
	return t
}

func (t *TokenSwap) Label() string {
	return t.label
}

func (t *TokenSwap) Key() solanago.PublicKey {
	return t.key
}

func (t *TokenSwap) ProgramID() solanago.PublicKey {
	return t.programID
}

// Update validates snapshot and makes it the one subsequent quotes read.
// The caller must not modify it afterwards.
func (t *TokenSwap) Update(snapshot *Snapshot) error {
	if err := ValidateSnapshot(snapshot); err != nil {
		return err
	}
	if err := ValidateFeeRecipients(snapshot.FeeRecipients); err != nil {
		return err
	}
	t.snapshot.Store(snapshot)
	t.logger.Debug("snapshot updated",
		zap.Int("assets", len(snapshot.Assets)),
		zap.Int("held", len(snapshot.Pool.Tokens)),
		zap.Bool("lpDisabled", snapshot.Pool.LpDisabled),
	)
	return nil
}

// Snapshot returns the current snapshot, or nil before the first Update.
func (t *TokenSwap) Snapshot() *Snapshot {
	return t.snapshot.Load()
}

// ReserveMints lists the mints the fund holds and accepts swaps for.
func (t *TokenSwap) ReserveMints() []solanago.PublicKey {
	snapshot := t.snapshot.Load()
	if snapshot == nil {
		return nil
	}
	mints := make([]solanago.PublicKey, 0, len(snapshot.Pool.Tokens))
	for _, id := range snapshot.Pool.Tokens {
		settings := snapshot.Assets[id]
		if !settings.LpDisabled {
			mints = append(mints, settings.Mint)
		}
	}
	return mints
}

// AccountsToUpdate lists the accounts a refresh has to fetch: the curve data,
// the fund state and every configured oracle.
func (t *TokenSwap) AccountsToUpdate() []solanago.PublicKey {
	accounts := []solanago.PublicKey{helpers.CurveDataAddress, t.key}
	snapshot := t.snapshot.Load()
	if snapshot == nil {
		return accounts
	}
	for _, settings := range snapshot.Assets {
		if !settings.OracleAccount.IsZero() {
			accounts = append(accounts, settings.OracleAccount)
		}
	}
	return accounts
}

// Quote prices params against the current snapshot.
func (t *TokenSwap) Quote(params QuoteParams) (*QuoteResult, error) {
	snapshot := t.snapshot.Load()
	if snapshot == nil {
		return nil, ErrSnapshotNotLoaded
	}
	quote, err := GetQuote(snapshot, params)
	if err != nil {
		t.logger.Debug("quote rejected",
			zap.Stringer("inputMint", params.InputMint),
			zap.Stringer("outputMint", params.OutputMint),
			zap.Uint64("inAmount", params.InAmount),
			zap.Error(err),
		)
		return nil, fmt.Errorf("quote %s: %w", t.label, err)
	}
	t.logger.Debug("quote",
		zap.Uint64("inAmount", quote.InAmount),
		zap.Uint64("outAmount", quote.OutAmount),
		zap.Uint64("feeAmount", quote.FeeAmount),
		zap.Stringer("feePct", quote.FeePct),
	)
	return quote, nil
}
