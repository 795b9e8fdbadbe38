package bank

import (
	"github.com/shopspring/decimal"
)

// Account is the balance-holding side of the ledger. BankAccount implements
// the base deposit/withdraw rules; CheckingAccount layers the withdrawal
// limit rules on top. No other variants exist.
type Account interface {
	Number() int
	Branch() string
	Owner() *Client
	Balance() decimal.Decimal
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// BankAccount holds a non-negative balance and its movement history.
// The owner back-reference is set at creation and never reassigned.
type BankAccount struct {
	number  int
	branch  string
	owner   *Client
	balance decimal.Decimal
	history *History
}

func NewBankAccount(number int, branch string, owner *Client, clock Clock) *BankAccount {
	return &BankAccount{
		number:  number,
		branch:  branch,
		owner:   owner,
		balance: decimal.Zero,
		history: NewHistory(clock),
	}
}

func (a *BankAccount) Number() int              { return a.number }
func (a *BankAccount) Branch() string           { return a.branch }
func (a *BankAccount) Owner() *Client           { return a.owner }
func (a *BankAccount) Balance() decimal.Decimal { return a.balance }
func (a *BankAccount) History() *History        { return a.history }

// Deposit credits amount to the balance. The history is not touched here;
// recording is the registering transaction's job.
func (a *BankAccount) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits amount from the balance, rejecting overdrafts so the
// balance stays non-negative.
func (a *BankAccount) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount caps single-withdrawal amounts and the lifetime count of
// withdrawals on top of the base rules.
type CheckingAccount struct {
	BankAccount
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

func NewCheckingAccount(number int, branch string, owner *Client, withdrawalLimit decimal.Decimal, maxWithdrawals int, clock Clock) *CheckingAccount {
	return &CheckingAccount{
		BankAccount:     *NewBankAccount(number, branch, owner, clock),
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

func (a *CheckingAccount) WithdrawalLimit() decimal.Decimal { return a.withdrawalLimit }
func (a *CheckingAccount) MaxWithdrawals() int              { return a.maxWithdrawals }

// Withdraw enforces the checking-account rules before delegating to the
// base logic. The amount-limit check runs before the count check; when both
// would fail the limit error is the one surfaced. The prior-withdrawal
// count is recomputed from the history on every call.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	prior := a.history.CountKind(KindWithdrawal)
	if amount.GreaterThan(a.withdrawalLimit) {
		return ErrWithdrawalLimit
	}
	if prior >= a.maxWithdrawals {
		return ErrTooManyWithdrawals
	}
	return a.BankAccount.Withdraw(amount)
}
