package bank

import (
	"time"

	"github.com/shopspring/decimal"

	"caixa/internal/constants"
)

// Kind classifies a monetary movement.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Record is one applied movement in an account's history. It is a value:
// once appended it is never mutated or shared.
type Record struct {
	Kind      Kind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// FormattedTime returns the timestamp in dd-mm-yyyy HH:MM:SS form.
func (r Record) FormattedTime() string {
	return r.Timestamp.Format(constants.TimeLayout)
}

// Transaction is a movement waiting to be applied to an account.
// The two implementations are Deposit and Withdrawal.
type Transaction interface {
	Kind() Kind
	Amount() decimal.Decimal
	// Register applies the movement to the account and, only on success,
	// appends a record to the account's history. A failed registration
	// leaves balance and history untouched.
	Register(acc Account) error
}

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) *Deposit {
	return &Deposit{amount: amount}
}

func (d *Deposit) Kind() Kind              { return KindDeposit }
func (d *Deposit) Amount() decimal.Decimal { return d.amount }

func (d *Deposit) Register(acc Account) error {
	if err := acc.Deposit(d.amount); err != nil {
		return err
	}
	acc.History().Append(KindDeposit, d.amount)
	return nil
}

type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) *Withdrawal {
	return &Withdrawal{amount: amount}
}

func (w *Withdrawal) Kind() Kind              { return KindWithdrawal }
func (w *Withdrawal) Amount() decimal.Decimal { return w.amount }

func (w *Withdrawal) Register(acc Account) error {
	if err := acc.Withdraw(w.amount); err != nil {
		return err
	}
	acc.History().Append(KindWithdrawal, w.amount)
	return nil
}
