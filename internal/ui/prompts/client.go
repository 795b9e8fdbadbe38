package prompts

import (
	"caixa/internal/validation"
)

// ClientInput carries the answers of the new-client prompt flow.
type ClientInput struct {
	TaxID     string
	Name      string
	BirthDate string
	Address   string
}

// PromptTaxID asks for the 11-digit tax identifier used as lookup key.
func PromptTaxID() (string, error) {
	return PromptInput("Client tax id (11 digits):", "", validation.ValidateTaxID)
}

// PromptNewClient runs the full registration flow for a new client.
func PromptNewClient() (ClientInput, error) {
	var in ClientInput
	var err error

	if in.TaxID, err = PromptTaxID(); err != nil {
		return in, err
	}
	if in.Name, err = PromptInput("Full name:", "", validation.ValidateName); err != nil {
		return in, err
	}
	if in.BirthDate, err = PromptInput("Birth date (dd-mm-yyyy):", "", validation.ValidateBirthDate); err != nil {
		return in, err
	}
	if in.Address, err = PromptInput("Address:", "", validation.ValidateAddress); err != nil {
		return in, err
	}

	return in, nil
}
