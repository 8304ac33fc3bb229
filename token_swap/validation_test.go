package tokenswap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Snapshot)
		wantErr bool
	}{
		{"valid", func(s *Snapshot) {}, false},
		{"zero weight sum", func(s *Snapshot) { s.Pool.WeightSum = 0 }, true},
		{"short amounts", func(s *Snapshot) { s.Pool.Amounts = s.Pool.Amounts[:1] }, true},
		{"short target weights", func(s *Snapshot) { s.Pool.TargetWeights = nil }, true},
		{"held token without settings", func(s *Snapshot) { s.Pool.Tokens[1] = 7 }, true},
		{"missing oracle", func(s *Snapshot) { s.Oracles = s.Oracles[:2] }, true},
		{"too many assets", func(s *Snapshot) {
			s.Assets = make([]AssetSettings, 21)
			s.Oracles = make([]OraclePrice, 21)
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := twoAssetSnapshot()
			tt.mutate(snapshot)
			err := ValidateSnapshot(snapshot)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSnapshot)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.ErrorIs(t, ValidateSnapshot(nil), ErrInvalidSnapshot)
}

func TestValidateFeeRecipients(t *testing.T) {
	assert.NoError(t, ValidateFeeRecipients(FeeRecipients{ProtocolBps: 20, HostBps: 10, ManagerBps: 10}))
	assert.NoError(t, ValidateFeeRecipients(FeeRecipients{ProtocolBps: 100}))
	assert.NoError(t, ValidateFeeRecipients(FeeRecipients{}))
	assert.ErrorIs(t, ValidateFeeRecipients(FeeRecipients{ProtocolBps: 50, HostBps: 30, ManagerBps: 21}), ErrInvalidFeeRecipients)
	assert.ErrorIs(t, ValidateFeeRecipients(FeeRecipients{HostBps: ^uint64(0), ManagerBps: 2}), ErrInvalidFeeRecipients)
}
