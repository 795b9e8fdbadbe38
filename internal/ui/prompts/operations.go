package prompts

import (
	"github.com/shopspring/decimal"

	"caixa/internal/bank"
	"caixa/internal/utils"
	"caixa/internal/validation"
)

// Menu choices of the interactive session.
const (
	MenuDeposit      = "Deposit"
	MenuWithdraw     = "Withdraw"
	MenuStatement    = "Statement"
	MenuNewClient    = "New client"
	MenuNewAccount   = "New account"
	MenuListAccounts = "List accounts"
	MenuQuit         = "Quit"
)

// PromptMenu shows the session menu and returns the chosen operation.
func PromptMenu() (string, error) {
	options := []string{
		MenuDeposit,
		MenuWithdraw,
		MenuStatement,
		MenuNewClient,
		MenuNewAccount,
		MenuListAccounts,
		MenuQuit,
	}

	return PromptSelect("Choose an operation:", options, MenuDeposit)
}

// PromptAmount asks for a positive monetary amount.
func PromptAmount(message string) (decimal.Decimal, error) {
	input, err := PromptInput(message, "", validation.ValidateAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(input)
}

// PromptStatementFilter asks which movements the statement should show and
// returns the matching history kind (empty = all).
func PromptStatementFilter() (bank.Kind, error) {
	const (
		optAll         = "All movements"
		optDeposits    = "Deposits only"
		optWithdrawals = "Withdrawals only"
	)

	selected, err := PromptSelect("Statement filter:", []string{optAll, optDeposits, optWithdrawals}, optAll)
	if err != nil {
		return "", err
	}

	switch selected {
	case optDeposits:
		return bank.KindDeposit, nil
	case optWithdrawals:
		return bank.KindWithdrawal, nil
	default:
		return "", nil
	}
}
