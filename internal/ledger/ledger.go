// Package ledger holds the in-memory registries of clients and accounts and
// the operations the terminal session calls into. State lives for the
// process lifetime only; lookups are linear scans over ordered lists.
package ledger

import (
	"iter"
	"log/slog"

	"github.com/shopspring/decimal"

	"caixa/internal/bank"
	"caixa/internal/config"
)

type Ledger struct {
	cfg    *config.Config
	clock  bank.Clock
	logger *slog.Logger

	clients  []*bank.Client
	accounts []bank.Account
}

func New(cfg *config.Config, clock bank.Clock, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{cfg: cfg, clock: clock, logger: logger}
}

// FindClient returns the client registered under taxID, or nil.
func (l *Ledger) FindClient(taxID string) *bank.Client {
	for _, c := range l.clients {
		if c.TaxID() == taxID {
			return c
		}
	}
	return nil
}

// CreateClient registers a new client. The tax id must not be in use.
func (l *Ledger) CreateClient(taxID, name, birthDate, address string) (*bank.Client, error) {
	if l.FindClient(taxID) != nil {
		return nil, bank.ErrDuplicateClient
	}

	c := bank.NewClient(taxID, name, birthDate, address, l.cfg.Limits.DailyTransactions, l.clock)
	l.clients = append(l.clients, c)

	l.logger.Info("client created", "tax_id", taxID, "name", name)
	return c, nil
}

// CreateAccount opens a checking account for the client, numbered
// sequentially from 1, with the branch and limit policy from configuration.
func (l *Ledger) CreateAccount(c *bank.Client) *bank.CheckingAccount {
	number := len(l.accounts) + 1
	acc := bank.NewCheckingAccount(
		number,
		l.cfg.Branch.Code,
		c,
		decimal.NewFromFloat(l.cfg.Limits.WithdrawalAmount),
		l.cfg.Limits.MaxWithdrawals,
		l.clock,
	)

	l.accounts = append(l.accounts, acc)
	c.AddAccount(acc)

	l.logger.Info("account created", "number", number, "tax_id", c.TaxID())
	return acc
}

// PrimaryAccount returns the first account in the client's list.
func (l *Ledger) PrimaryAccount(c *bank.Client) (bank.Account, error) {
	accounts := c.Accounts()
	if len(accounts) == 0 {
		return nil, bank.ErrNoAccounts
	}
	return accounts[0], nil
}

// Accounts yields every account in creation order.
func (l *Ledger) Accounts() iter.Seq[bank.Account] {
	return func(yield func(bank.Account) bool) {
		for _, acc := range l.accounts {
			if !yield(acc) {
				return
			}
		}
	}
}

func (l *Ledger) AccountCount() int { return len(l.accounts) }
func (l *Ledger) ClientCount() int  { return len(l.clients) }

// Deposit credits amount to the client's primary account through the
// client's daily-cap policy.
func (l *Ledger) Deposit(taxID string, amount decimal.Decimal) (bank.Account, error) {
	return l.realize(taxID, bank.NewDeposit(amount))
}

// Withdraw debits amount from the client's primary account through the
// client's daily-cap policy and the account's withdrawal rules.
func (l *Ledger) Withdraw(taxID string, amount decimal.Decimal) (bank.Account, error) {
	return l.realize(taxID, bank.NewWithdrawal(amount))
}

func (l *Ledger) realize(taxID string, tx bank.Transaction) (bank.Account, error) {
	c := l.FindClient(taxID)
	if c == nil {
		return nil, bank.ErrClientNotFound
	}

	acc, err := l.PrimaryAccount(c)
	if err != nil {
		return nil, err
	}

	if err := c.RealizeTransaction(acc, tx); err != nil {
		l.logger.Warn("transaction rejected",
			"tax_id", taxID, "kind", tx.Kind(), "amount", tx.Amount(), "reason", err)
		return nil, err
	}

	l.logger.Info("transaction applied",
		"tax_id", taxID, "kind", tx.Kind(), "amount", tx.Amount(), "balance", acc.Balance())
	return acc, nil
}

// Statement returns the client's primary account together with its full
// ordered history, for display.
func (l *Ledger) Statement(taxID string) (bank.Account, []bank.Record, error) {
	c := l.FindClient(taxID)
	if c == nil {
		return nil, nil, bank.ErrClientNotFound
	}

	acc, err := l.PrimaryAccount(c)
	if err != nil {
		return nil, nil, err
	}

	l.logger.Info("statement issued", "tax_id", taxID, "number", acc.Number())
	return acc, acc.History().All(), nil
}
