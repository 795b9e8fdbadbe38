package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("150.5")
	require.NoError(t, err)
	assert.Equal(t, "150.50", amount.StringFixed(2))

	// Sub-cent digits are truncated, not rounded up.
	amount, err = ParseAmount("10.999")
	require.NoError(t, err)
	assert.Equal(t, "10.99", amount.StringFixed(2))

	_, err = ParseAmount("")
	assert.Error(t, err)
	_, err = ParseAmount("ten")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "R$ 1500.00", FormatAmount(decimal.NewFromInt(1500)))
}
