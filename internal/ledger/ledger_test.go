package ledger

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caixa/internal/bank"
	"caixa/internal/config"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestLedger() (*Ledger, *testClock) {
	clk := &testClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.DiscardHandler)
	return New(config.NewDefault(), clk.Now, logger), clk
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCreateClientRejectsDuplicateTaxID(t *testing.T) {
	l, _ := newTestLedger()

	_, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)

	_, err = l.CreateClient("12345678901", "Outra Pessoa", "05-06-1985", "Rua B, 200")

	require.ErrorIs(t, err, bank.ErrDuplicateClient)
	assert.Equal(t, 1, l.ClientCount())
}

func TestFindClientLinearScan(t *testing.T) {
	l, _ := newTestLedger()

	_, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)
	_, err = l.CreateClient("10987654321", "Joao Lima", "05-06-1985", "Rua B, 200")
	require.NoError(t, err)

	c := l.FindClient("10987654321")
	require.NotNil(t, c)
	assert.Equal(t, "Joao Lima", c.Name())

	assert.Nil(t, l.FindClient("00000000000"))
}

func TestCreateAccountAppliesBranchPolicy(t *testing.T) {
	l, _ := newTestLedger()
	c, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)

	first := l.CreateAccount(c)
	second := l.CreateAccount(c)

	assert.Equal(t, 1, first.Number())
	assert.Equal(t, 2, second.Number())
	assert.Equal(t, "1008", first.Branch())
	assert.True(t, first.WithdrawalLimit().Equal(d(500)))
	assert.Equal(t, 50, first.MaxWithdrawals())
	assert.Same(t, c, first.Owner())
	assert.Len(t, c.Accounts(), 2)
	assert.Equal(t, 2, l.AccountCount())
}

func TestPrimaryAccountReturnsFirst(t *testing.T) {
	l, _ := newTestLedger()
	c, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)

	_, err = l.PrimaryAccount(c)
	require.ErrorIs(t, err, bank.ErrNoAccounts)

	first := l.CreateAccount(c)
	l.CreateAccount(c)

	acc, err := l.PrimaryAccount(c)
	require.NoError(t, err)
	assert.Equal(t, first.Number(), acc.Number())
}

func TestDepositUnknownClient(t *testing.T) {
	l, _ := newTestLedger()

	_, err := l.Deposit("00000000000", d(100))

	require.ErrorIs(t, err, bank.ErrClientNotFound)
}

func TestDepositAndWithdrawFlow(t *testing.T) {
	l, _ := newTestLedger()
	c, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)
	l.CreateAccount(c)

	acc, err := l.Deposit("12345678901", d(1000))
	require.NoError(t, err)
	assert.True(t, acc.Balance().Equal(d(1000)))

	acc, err = l.Withdraw("12345678901", d(400))
	require.NoError(t, err)
	assert.True(t, acc.Balance().Equal(d(600)))

	// Third movement on the same day trips the client's daily cap.
	_, err = l.Withdraw("12345678901", d(10))
	require.ErrorIs(t, err, bank.ErrDailyLimit)
}

func TestWithdrawAgainstBranchLimit(t *testing.T) {
	l, _ := newTestLedger()
	c, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)
	l.CreateAccount(c)

	_, err = l.Deposit("12345678901", d(1000))
	require.NoError(t, err)

	_, err = l.Withdraw("12345678901", d(600))
	require.ErrorIs(t, err, bank.ErrWithdrawalLimit)
}

func TestStatementReturnsOrderedHistory(t *testing.T) {
	l, _ := newTestLedger()
	c, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)
	l.CreateAccount(c)

	_, err = l.Deposit("12345678901", d(300))
	require.NoError(t, err)
	_, err = l.Withdraw("12345678901", d(100))
	require.NoError(t, err)

	acc, records, err := l.Statement("12345678901")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, bank.KindDeposit, records[0].Kind)
	assert.Equal(t, bank.KindWithdrawal, records[1].Kind)
	assert.True(t, acc.Balance().Equal(d(200)))

	_, _, err = l.Statement("00000000000")
	require.ErrorIs(t, err, bank.ErrClientNotFound)
}

func TestAccountsIteratesInCreationOrder(t *testing.T) {
	l, _ := newTestLedger()
	c1, err := l.CreateClient("12345678901", "Maria Souza", "01-02-1990", "Rua A, 100")
	require.NoError(t, err)
	c2, err := l.CreateClient("10987654321", "Joao Lima", "05-06-1985", "Rua B, 200")
	require.NoError(t, err)

	l.CreateAccount(c1)
	l.CreateAccount(c2)
	l.CreateAccount(c1)

	var numbers []int
	for acc := range l.Accounts() {
		numbers = append(numbers, acc.Number())
	}

	assert.Equal(t, []int{1, 2, 3}, numbers)
}
