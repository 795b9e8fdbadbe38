package bank

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Clock supplies the current time. Injected so that the daily-cap rule and
// record timestamps are testable; defaults to time.Now.
type Clock func() time.Time

// History is the append-only log of applied movements for one account.
// Entries are kept in insertion order, which is also chronological order.
type History struct {
	clock   Clock
	entries []Record
}

func NewHistory(clock Clock) *History {
	if clock == nil {
		clock = time.Now
	}
	return &History{clock: clock}
}

// Append records a movement stamped with the current time and returns the
// stored record. Callers are trusted: validation happened before the
// movement was applied.
func (h *History) Append(kind Kind, amount decimal.Decimal) Record {
	rec := Record{Kind: kind, Amount: amount, Timestamp: h.clock()}
	h.entries = append(h.entries, rec)
	return rec
}

// All returns the full log in order. The slice is a copy; mutating it does
// not touch the history.
func (h *History) All() []Record {
	out := make([]Record, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }

// Report yields entries of the given kind in order. An empty kind yields
// every entry. The sequence is restartable.
func (h *History) Report(kind Kind) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range h.entries {
			if kind != "" && rec.Kind != kind {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// OnDate yields the entries whose timestamp falls on the same calendar day
// as date, in order.
func (h *History) OnDate(date time.Time) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range h.entries {
			if !sameDay(rec.Timestamp, date) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// CountOnDate counts entries on the given calendar day, any kind.
func (h *History) CountOnDate(date time.Time) int {
	n := 0
	for _, rec := range h.entries {
		if sameDay(rec.Timestamp, date) {
			n++
		}
	}
	return n
}

// CountKind counts entries of the given kind over the account's lifetime.
func (h *History) CountKind(kind Kind) int {
	n := 0
	for _, rec := range h.entries {
		if rec.Kind == kind {
			n++
		}
	}
	return n
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
