package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"caixa/internal/constants"
)

// FormatAmount renders a monetary value for display, e.g. "R$ 1500.00".
func FormatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", constants.CurrencySymbol, amount.StringFixed(2))
}

// ParseAmount parses user input such as "150", "150.5" or "150.50" into a
// currency-precision value. The sign is preserved; business rules decide
// whether non-positive amounts are acceptable.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", input)
	}

	// Truncate sub-cent digits rather than rounding them up.
	return amount.Truncate(2), nil
}
