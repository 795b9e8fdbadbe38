package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"caixa/internal/constants"
	"caixa/internal/utils"
)

// Validators in this package follow the func(string) error shape expected
// by the interactive prompts, so they can be passed straight through.

// ValidateTaxID checks the 11-digit numeric tax identifier format.
func ValidateTaxID(val string) error {
	taxID := strings.TrimSpace(val)

	if taxID == "" {
		return fmt.Errorf("tax id is required")
	}
	if len(taxID) != constants.TaxIDLength {
		return fmt.Errorf("tax id must have exactly %d digits", constants.TaxIDLength)
	}
	for _, r := range taxID {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("tax id must contain only digits")
		}
	}
	return nil
}

// ValidateName checks a client's full name.
func ValidateName(val string) error {
	name := strings.TrimSpace(val)

	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateBirthDate checks a dd-mm-yyyy date that is not in the future.
func ValidateBirthDate(val string) error {
	input := strings.TrimSpace(val)

	if input == "" {
		return fmt.Errorf("birth date is required")
	}

	date, err := time.Parse(constants.DateLayout, input)
	if err != nil {
		return fmt.Errorf("birth date must be in dd-mm-yyyy format")
	}
	if date.After(time.Now()) {
		return fmt.Errorf("birth date cannot be in the future")
	}
	return nil
}

// ValidateAddress checks a client's address line.
func ValidateAddress(val string) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

// ValidateAmount checks that the input parses as a positive monetary value.
func ValidateAmount(val string) error {
	amount, err := utils.ParseAmount(val)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}
