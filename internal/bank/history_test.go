package bank

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendKeepsChronologicalOrder(t *testing.T) {
	clk := newTestClock()
	h := NewHistory(clk.Now)

	h.Append(KindDeposit, d(100))
	clk.Advance(time.Minute)
	h.Append(KindWithdrawal, d(40))
	clk.Advance(time.Minute)
	h.Append(KindDeposit, d(10))

	records := h.All()
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Timestamp.Before(records[i-1].Timestamp),
			"entry %d is earlier than entry %d", i, i-1)
	}
	assert.Equal(t, KindWithdrawal, records[1].Kind)
}

func TestHistoryAllReturnsCopy(t *testing.T) {
	clk := newTestClock()
	h := NewHistory(clk.Now)
	h.Append(KindDeposit, d(100))

	records := h.All()
	records[0].Amount = d(9999)

	assert.True(t, h.All()[0].Amount.Equal(d(100)))
}

func TestHistoryOnDateCountsOnlyThatDay(t *testing.T) {
	clk := newTestClock()
	h := NewHistory(clk.Now)

	// Two entries yesterday, three today.
	clk.Advance(-24 * time.Hour)
	h.Append(KindDeposit, d(1))
	h.Append(KindWithdrawal, d(1))
	clk.Advance(24 * time.Hour)
	for range 3 {
		h.Append(KindDeposit, d(1))
		clk.Advance(time.Hour)
	}

	today := clk.Now()
	assert.Equal(t, 3, h.CountOnDate(today))
	assert.Equal(t, 2, h.CountOnDate(today.AddDate(0, 0, -1)))
	assert.Equal(t, 0, h.CountOnDate(today.AddDate(0, 0, 1)))

	onDate := slices.Collect(h.OnDate(today))
	require.Len(t, onDate, 3)
}

func TestHistoryOnDateIsRestartable(t *testing.T) {
	clk := newTestClock()
	h := NewHistory(clk.Now)
	h.Append(KindDeposit, d(1))
	h.Append(KindDeposit, d(2))

	seq := h.OnDate(clk.Now())

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.True(t, first[0].Amount.Equal(second[0].Amount))
}

func TestHistoryReportFiltersByKind(t *testing.T) {
	clk := newTestClock()
	h := NewHistory(clk.Now)
	h.Append(KindDeposit, d(100))
	h.Append(KindWithdrawal, d(30))
	h.Append(KindDeposit, d(50))

	withdrawals := slices.Collect(h.Report(KindWithdrawal))
	require.Len(t, withdrawals, 1)
	assert.True(t, withdrawals[0].Amount.Equal(d(30)))

	all := slices.Collect(h.Report(""))
	assert.Len(t, all, 3)

	assert.Equal(t, 2, h.CountKind(KindDeposit))
}

func TestRecordFormattedTime(t *testing.T) {
	clk := newTestClock()
	h := NewHistory(clk.Now)

	rec := h.Append(KindDeposit, d(1))

	assert.Equal(t, "10-03-2025 09:00:00", rec.FormattedTime())
}
