package shared

import (
	solanago "github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// Side tells which leg of a trade an asset plays.
type Side uint8

const (
	SideInput  Side = 0
	SideOutput Side = 1
)

func (s Side) String() string {
	if s == SideInput {
		return "from"
	}
	return "to"
}

// AssetSettings is the per-asset configuration of the token list. The index
// of an entry in Snapshot.Assets is the asset id.
type AssetSettings struct {
	Mint               solanago.PublicKey
	Decimals           uint8
	FeeBeforeTargetBps uint16
	FeeAfterTargetBps  uint16
	UseCurvePrice      bool
	LpDisabled         bool
	OracleAccount      solanago.PublicKey
	PdaTokenAccount    solanago.PublicKey
}

// OraclePrice is a live price snapshot in USD fixed point.
type OraclePrice struct {
	BuyPrice  uint64
	SellPrice uint64
	AvgPrice  uint64
	Live      bool
}

// CurvePoint is a cumulative amount threshold and the price reached there.
type CurvePoint struct {
	Amount uint64
	Price  uint64
}

// CurveData holds the buy and sell price curves of one asset.
type CurveData struct {
	Buy  []CurvePoint
	Sell []CurvePoint
}

// PoolComposition is the fund state: held asset ids, raw holdings and
// target weights, all indexed by composition position.
type PoolComposition struct {
	Manager            solanago.PublicKey
	Host               solanago.PublicKey
	Tokens             []uint64
	Amounts            []uint64
	TargetWeights      []uint64
	WeightSum          uint64
	RebalanceThreshold uint64
	LpOffsetThreshold  uint64
	LpDisabled         bool
}

// IndexOf returns the composition position of an asset id.
func (p PoolComposition) IndexOf(tokenID uint64) (int, bool) {
	for i, id := range p.Tokens {
		if id == tokenID {
			return i, true
		}
	}
	return 0, false
}

// FeeRecipients are the shares of collected fees, in percent (base 100).
type FeeRecipients struct {
	ProtocolBps uint64
	HostBps     uint64
	ManagerBps  uint64
}

// Snapshot is everything a quote reads. It is refreshed wholesale by the
// caller and never mutated while quoting.
type Snapshot struct {
	Pool          PoolComposition
	Assets        []AssetSettings
	Oracles       []OraclePrice
	Curves        []CurveData
	FeeRecipients FeeRecipients
}

// AssetID returns the asset id of a mint.
func (s *Snapshot) AssetID(mint solanago.PublicKey) (uint64, bool) {
	for i := range s.Assets {
		if s.Assets[i].Mint.Equals(mint) {
			return uint64(i), true
		}
	}
	return 0, false
}

// Curve returns the curve data of an asset, or empty curves when none was
// supplied.
func (s *Snapshot) Curve(tokenID uint64) CurveData {
	if tokenID < uint64(len(s.Curves)) {
		return s.Curves[tokenID]
	}
	return CurveData{}
}

type QuoteParams struct {
	InputMint  solanago.PublicKey
	OutputMint solanago.PublicKey
	InAmount   uint64
}

type FeeSplit struct {
	Protocol uint64
	Host     uint64
	Manager  uint64
	Pool     uint64
}

// Total returns the sum of all shares.
func (f FeeSplit) Total() uint64 {
	return f.Protocol + f.Host + f.Manager + f.Pool
}

type QuoteResult struct {
	InAmount  uint64
	OutAmount uint64
	FeeAmount uint64
	FeeMint   solanago.PublicKey
	// FeeRate is FeeAmount over FairAmount scaled by 1_000_000.
	FeeRate uint64
	// FeePct is FeeRate as a percentage.
	FeePct     decimal.Decimal
	Fees       FeeSplit
	FairAmount uint64
}

// FeeBps returns the effective fee rate in basis points.
func (q *QuoteResult) FeeBps() decimal.Decimal {
	return decimal.New(int64(q.FeeRate), -2)
}

// TradeLeg is what an instruction encoder needs for one swap.
type TradeLeg struct {
	FromTokenID uint64
	ToTokenID   uint64
	Amount      uint64
}
