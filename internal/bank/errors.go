// Package bank implements the account and transaction rules of the ledger:
// balance mutation, withdrawal limits, the daily transaction cap and the
// append-only movement history.
package bank

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrWithdrawalLimit    = errors.New("amount exceeds the withdrawal limit")
	ErrTooManyWithdrawals = errors.New("maximum number of withdrawals reached")
	ErrDailyLimit         = errors.New("daily transaction limit reached")
	ErrDuplicateClient    = errors.New("a client with this tax id already exists")
	ErrClientNotFound     = errors.New("client not found")
	ErrNoAccounts         = errors.New("client has no accounts")
)
