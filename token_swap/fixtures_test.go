package tokenswap

import (
	solanago "github.com/gagliardetto/solana-go"
)

var (
	usdcMint = solanago.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	wsolMint = solanago.WrappedSol
	msolMint = solanago.MustPublicKeyFromBase58("mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So")
	usdtMint = solanago.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")

	fundKey = testKey(0xf0)

	testMints = map[string]solanago.PublicKey{
		"usdc": usdcMint,
		"wsol": wsolMint,
		"msol": msolMint,
		"usdt": usdtMint,
	}
)

func testKey(seed byte) solanago.PublicKey {
	var key solanago.PublicKey
	for i := range key {
		key[i] = seed + byte(i)
	}
	return key
}

func flatOracle(price uint64) OraclePrice {
	return OraclePrice{BuyPrice: price, SellPrice: price, AvgPrice: price, Live: true}
}

func testAsset(mint solanago.PublicKey, decimals uint8, seed byte) AssetSettings {
	return AssetSettings{
		Mint:               mint,
		Decimals:           decimals,
		FeeBeforeTargetBps: 10,
		FeeAfterTargetBps:  30,
		OracleAccount:      testKey(seed),
		PdaTokenAccount:    testKey(seed + 0x40),
	}
}

// twoAssetSnapshot is a balanced pool: $2000 of USDC and 100 SOL at $20,
// each targeted at 50%.
func twoAssetSnapshot() *Snapshot {
	return &Snapshot{
		Pool: PoolComposition{
			Manager:            testKey(0x10),
			Host:               testKey(0x20),
			Tokens:             []uint64{0, 1},
			Amounts:            []uint64{2_000_000_000, 100_000_000_000},
			TargetWeights:      []uint64{5000, 5000},
			WeightSum:          10_000,
			RebalanceThreshold: 2000,
			LpOffsetThreshold:  10_000,
		},
		Assets: []AssetSettings{
			testAsset(usdcMint, 6, 0x30),
			testAsset(wsolMint, 9, 0x31),
			testAsset(msolMint, 9, 0x32),
		},
		Oracles:       []OraclePrice{flatOracle(1_000_000), flatOracle(20_000_000), flatOracle(22_000_000)},
		Curves:        []CurveData{{}, {}, {}},
		FeeRecipients: FeeRecipients{ProtocolBps: 20, HostBps: 10, ManagerBps: 10},
	}
}

// dustSnapshot holds $5000 of USDC, 50 SOL at $100 and $100 of a token
// with no target weight.
func dustSnapshot(targetWeights []uint64) *Snapshot {
	return &Snapshot{
		Pool: PoolComposition{
			Manager:           testKey(0x10),
			Host:              testKey(0x20),
			Tokens:            []uint64{0, 1, 2},
			Amounts:           []uint64{5_000_000_000, 50_000_000_000, 100_000_000},
			TargetWeights:     targetWeights,
			WeightSum:         10_000,
			LpOffsetThreshold: 10_000,
		},
		Assets: []AssetSettings{
			testAsset(usdcMint, 6, 0x30),
			testAsset(wsolMint, 9, 0x31),
			testAsset(msolMint, 6, 0x32),
		},
		Oracles:       []OraclePrice{flatOracle(1_000_000), flatOracle(100_000_000), flatOracle(1_000_000)},
		FeeRecipients: FeeRecipients{ProtocolBps: 20, HostBps: 10, ManagerBps: 10},
	}
}
