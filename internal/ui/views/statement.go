package views

import (
	"github.com/pterm/pterm"

	"caixa/internal/bank"
	"caixa/internal/utils"
)

type StatementView struct{}

func NewStatementView() *StatementView {
	return &StatementView{}
}

func (v *StatementView) Render(acc bank.Account, records []bank.Record) error {
	pterm.DefaultSection.Printf("Statement — branch %s, account %d", acc.Branch(), acc.Number())

	if len(records) == 0 {
		pterm.Warning.Println("No movements on this account")
	} else {
		tableData := pterm.TableData{{"Date", "Kind", "Amount"}}

		for _, rec := range records {
			var coloredKind, coloredAmount string

			switch rec.Kind {
			case bank.KindDeposit:
				coloredKind = pterm.Green("Deposit")
				coloredAmount = pterm.Green(utils.FormatAmount(rec.Amount))
			case bank.KindWithdrawal:
				coloredKind = pterm.Red("Withdrawal")
				coloredAmount = pterm.Red(utils.FormatAmount(rec.Amount))
			default:
				coloredKind = string(rec.Kind)
				coloredAmount = utils.FormatAmount(rec.Amount)
			}

			tableData = append(tableData, []string{rec.FormattedTime(), coloredKind, coloredAmount})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
	}

	pterm.Info.Printf("Current balance: %s\n", utils.FormatAmount(acc.Balance()))
	return nil
}
