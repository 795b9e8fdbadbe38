package bank

import "time"

// Client owns an ordered list of accounts and applies the daily
// transaction-count policy before any movement reaches an account.
type Client struct {
	taxID     string
	name      string
	birthDate string
	address   string

	accounts   []Account
	dailyLimit int
	clock      Clock
}

func NewClient(taxID, name, birthDate, address string, dailyLimit int, clock Clock) *Client {
	if clock == nil {
		clock = time.Now
	}
	return &Client{
		taxID:      taxID,
		name:       name,
		birthDate:  birthDate,
		address:    address,
		dailyLimit: dailyLimit,
		clock:      clock,
	}
}

func (c *Client) TaxID() string     { return c.taxID }
func (c *Client) Name() string      { return c.name }
func (c *Client) BirthDate() string { return c.birthDate }
func (c *Client) Address() string   { return c.address }

// Accounts returns the owned accounts in the order they were added.
func (c *Client) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// AddAccount appends to the owned list. Uniqueness is the registry's
// concern, not re-checked here.
func (c *Client) AddAccount(acc Account) {
	c.accounts = append(c.accounts, acc)
}

// RealizeTransaction applies tx to acc unless the account already reached
// the daily transaction cap. The cap is checked first; when it trips, the
// transaction is never registered and the account is left untouched.
func (c *Client) RealizeTransaction(acc Account, tx Transaction) error {
	today := c.clock()
	if acc.History().CountOnDate(today) >= c.dailyLimit {
		return ErrDailyLimit
	}
	return tx.Register(acc)
}
