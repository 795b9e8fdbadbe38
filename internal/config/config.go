package config

import "caixa/internal/constants"

type Config struct {
	Branch     BranchConfig  `mapstructure:"branch"`
	Limits     LimitsConfig  `mapstructure:"limits"`
	Logging    LoggingConfig `mapstructure:"logging"`
	ConfigPath string        `mapstructure:"-"`
}

type BranchConfig struct {
	Code string `mapstructure:"code"`
}

type LimitsConfig struct {
	// WithdrawalAmount caps a single withdrawal, in currency units.
	WithdrawalAmount float64 `mapstructure:"withdrawal_amount"`
	// MaxWithdrawals caps the lifetime withdrawal count per account.
	MaxWithdrawals int `mapstructure:"max_withdrawals"`
	// DailyTransactions caps movements per account per calendar day.
	DailyTransactions int `mapstructure:"daily_transactions"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Branch: BranchConfig{Code: constants.BranchCode},
		Limits: LimitsConfig{
			WithdrawalAmount:  constants.DefaultWithdrawalLimit,
			MaxWithdrawals:    constants.AccountMaxWithdrawals,
			DailyTransactions: constants.DefaultDailyTransactions,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
