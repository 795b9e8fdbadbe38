package cmd

import (
	"slices"

	"github.com/pterm/pterm"

	"caixa/internal/app"
	"caixa/internal/errhandler"
	"caixa/internal/ui"
	"caixa/internal/ui/prompts"
	"caixa/internal/ui/views"
	"caixa/internal/utils"
)

// runSession drives the interactive menu loop. All ledger state lives only
// for the duration of the loop; quitting discards it.
func runSession(application *app.App) error {
	ui.PrintBanner("caixa — branch %s", application.Config.Branch.Code)

	for {
		choice, err := prompts.PromptMenu()
		if err != nil {
			errhandler.HandleError(err)
			continue
		}

		switch choice {
		case prompts.MenuDeposit:
			runDeposit(application)
		case prompts.MenuWithdraw:
			runWithdraw(application)
		case prompts.MenuStatement:
			runStatement(application)
		case prompts.MenuNewClient:
			runNewClient(application)
		case prompts.MenuNewAccount:
			runNewAccount(application)
		case prompts.MenuListAccounts:
			runListAccounts(application)
		case prompts.MenuQuit:
			pterm.Info.Println("Session closed, see you next time")
			return nil
		}
	}
}

func runDeposit(application *app.App) {
	taxID, err := prompts.PromptTaxID()
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	amount, err := prompts.PromptAmount("Deposit amount:")
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	acc, err := application.Ledger.Deposit(taxID, amount)
	if err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		return
	}

	pterm.Success.Printf("Deposit of %s applied, balance is now %s\n",
		utils.FormatAmount(amount), utils.FormatAmount(acc.Balance()))
}

func runWithdraw(application *app.App) {
	taxID, err := prompts.PromptTaxID()
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	amount, err := prompts.PromptAmount("Withdrawal amount:")
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	acc, err := application.Ledger.Withdraw(taxID, amount)
	if err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		return
	}

	pterm.Success.Printf("Withdrawal of %s applied, balance is now %s\n",
		utils.FormatAmount(amount), utils.FormatAmount(acc.Balance()))
}

func runStatement(application *app.App) {
	taxID, err := prompts.PromptTaxID()
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	kind, err := prompts.PromptStatementFilter()
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	acc, _, err := application.Ledger.Statement(taxID)
	if err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		return
	}

	records := slices.Collect(acc.History().Report(kind))
	if err := views.NewStatementView().Render(acc, records); err != nil {
		errhandler.HandleError(err)
	}
}

func runNewClient(application *app.App) {
	in, err := prompts.PromptNewClient()
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	c, err := application.Ledger.CreateClient(in.TaxID, in.Name, in.BirthDate, in.Address)
	if err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		return
	}

	pterm.Success.Printf("Client %s registered\n", c.Name())
}

func runNewAccount(application *app.App) {
	taxID, err := prompts.PromptTaxID()
	if err != nil {
		errhandler.HandleError(err)
		return
	}

	c := application.Ledger.FindClient(taxID)
	if c == nil {
		pterm.Error.Println("Client not found")
		return
	}

	acc := application.Ledger.CreateAccount(c)
	pterm.Success.Printf("Account %d opened at branch %s for %s\n",
		acc.Number(), acc.Branch(), c.Name())
}

func runListAccounts(application *app.App) {
	if err := views.NewAccountListView().Render(application.Ledger.Accounts()); err != nil {
		errhandler.HandleError(err)
	}
}
