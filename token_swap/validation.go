package tokenswap

import (
	"fmt"

	"github.com/krazyTry/symmetry-go/token_swap/helpers"
)

// ValidateSnapshot checks the structural assumptions GetQuote relies on:
// a non-zero weight sum, a composition whose slices line up and whose token
// ids all have settings and an oracle entry.
func ValidateSnapshot(snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if len(snapshot.Assets) > helpers.MaxTokensInAssetPool {
		return fmt.Errorf("%w: %d assets, max %d", ErrInvalidSnapshot, len(snapshot.Assets), helpers.MaxTokensInAssetPool)
	}
	if len(snapshot.Oracles) < len(snapshot.Assets) {
		return fmt.Errorf("%w: %d oracle prices for %d assets", ErrInvalidSnapshot, len(snapshot.Oracles), len(snapshot.Assets))
	}

	pool := snapshot.Pool
	if pool.WeightSum == 0 {
		return fmt.Errorf("%w: weight sum is zero", ErrInvalidSnapshot)
	}
	n := len(pool.Tokens)
	if n > helpers.MaxTokensInAssetPool {
		return fmt.Errorf("%w: %d held tokens, max %d", ErrInvalidSnapshot, n, helpers.MaxTokensInAssetPool)
	}
	if len(pool.Amounts) != n || len(pool.TargetWeights) != n {
		return fmt.Errorf("%w: composition has %d tokens, %d amounts, %d target weights",
			ErrInvalidSnapshot, n, len(pool.Amounts), len(pool.TargetWeights))
	}
	for i, id := range pool.Tokens {
		if id >= uint64(len(snapshot.Assets)) {
			return fmt.Errorf("%w: held token %d at position %d has no settings", ErrInvalidSnapshot, id, i)
		}
	}
	return nil
}

// ValidateFeeRecipients rejects fee shares that add up to more than 100.
func ValidateFeeRecipients(recipients FeeRecipients) error {
	p, h, m := recipients.ProtocolBps, recipients.HostBps, recipients.ManagerBps
	if p > helpers.FeeShareBase || h > helpers.FeeShareBase || m > helpers.FeeShareBase || p+h+m > helpers.FeeShareBase {
		return fmt.Errorf("%w: protocol %d, host %d, manager %d",
			ErrInvalidFeeRecipients, p, h, m)
	}
	return nil
}
