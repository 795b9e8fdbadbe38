package views

import (
	"fmt"
	"iter"

	"github.com/pterm/pterm"

	"caixa/internal/bank"
	"caixa/internal/utils"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts iter.Seq[bank.Account]) error {
	headers := []string{"Branch", "Number", "Holder", "Balance"}
	tableData := pterm.TableData{headers}

	total := 0
	for acc := range accounts {
		total++
		tableData = append(tableData, []string{
			acc.Branch(),
			fmt.Sprintf("%d", acc.Number()),
			acc.Owner().Name(),
			utils.FormatAmount(acc.Balance()),
		})
	}

	if total == 0 {
		pterm.Warning.Println("No accounts registered yet")
		return nil
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", total)

	return nil
}
