package constants

const (
	// BranchCode is shared by every account in the simulation.
	BranchCode = "1008"

	// TimeLayout is the display layout for transaction timestamps.
	TimeLayout = "02-01-2006 15:04:05"
	// DateLayout is the display layout for dates (birth dates, statements).
	DateLayout = "02-01-2006"

	TaxIDLength = 11
	MaxNameLen  = 100
)

const (
	// Defaults of the CheckingAccount type itself.
	DefaultWithdrawalLimit = 500
	DefaultMaxWithdrawals  = 3

	// Defaults applied by the account-creation policy.
	AccountMaxWithdrawals    = 50
	DefaultDailyTransactions = 2
)

const CurrencySymbol = "R$"
