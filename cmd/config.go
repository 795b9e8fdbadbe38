package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewConfigCmd shows the effective configuration after file and environment
// overrides are applied.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "config",
		Short:        "Show the effective configuration.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tableData := pterm.TableData{
				{"Key", "Value"},
				{"branch.code", cfg.Branch.Code},
				{"limits.withdrawal_amount", fmt.Sprintf("%.2f", cfg.Limits.WithdrawalAmount)},
				{"limits.max_withdrawals", fmt.Sprintf("%d", cfg.Limits.MaxWithdrawals)},
				{"limits.daily_transactions", fmt.Sprintf("%d", cfg.Limits.DailyTransactions)},
				{"logging.level", cfg.Logging.Level},
				{"logging.file", cfg.Logging.File},
			}

			pterm.DefaultSection.Printf("Configuration")
			if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
				return err
			}

			if cfg.ConfigPath != "" {
				pterm.Info.Printf("Loaded from: %s\n", cfg.ConfigPath)
			}
			return nil
		},
	}
}
