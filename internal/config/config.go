package config

import (
	"fmt"
	"strings"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Snapshot    string
	Pool        solanago.PublicKey
	InputMint   solanago.PublicKey
	OutputMint  solanago.PublicKey
	Amount      decimal.Decimal
	SlippageBps uint64
	User        solanago.PublicKey
	LogLevel    string
}

// Load merges config file, environment variables, and flags into Config.
// Environment variables use the SYMMETRY_ prefix, e.g. SYMMETRY_INPUT_MINT.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SYMMETRY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("snapshot", "./snapshot.json")
	v.SetDefault("slippage-bps", 50)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("symmetry")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Snapshot:    v.GetString("snapshot"),
		SlippageBps: v.GetUint64("slippage-bps"),
		LogLevel:    v.GetString("log-level"),
	}

	var err error
	if cfg.Pool, err = parsePublicKey("pool", v.GetString("pool")); err != nil {
		return Config{}, err
	}
	if cfg.InputMint, err = parsePublicKey("input-mint", v.GetString("input-mint")); err != nil {
		return Config{}, err
	}
	if cfg.OutputMint, err = parsePublicKey("output-mint", v.GetString("output-mint")); err != nil {
		return Config{}, err
	}
	if cfg.User, err = parsePublicKey("user", v.GetString("user")); err != nil {
		return Config{}, err
	}

	if raw := strings.TrimSpace(v.GetString("amount")); raw != "" {
		cfg.Amount, err = decimal.NewFromString(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse amount %q: %w", raw, err)
		}
	}
	if cfg.SlippageBps > 10_000 {
		return Config{}, fmt.Errorf("slippage-bps %d exceeds 10000", cfg.SlippageBps)
	}

	return cfg, nil
}

func parsePublicKey(name, raw string) (solanago.PublicKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return solanago.PublicKey{}, nil
	}
	key, err := solanago.PublicKeyFromBase58(raw)
	if err != nil {
		return solanago.PublicKey{}, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	return key, nil
}
