package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the caixa version.",
		Run: func(cmd *cobra.Command, args []string) {
			pterm.Info.Printf("caixa %s\n", Version)
		},
	}
}
