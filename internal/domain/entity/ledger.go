// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryKind is the polarity of a cash-flow entry.
type LedgerEntryKind string

const (
	// LedgerInflow is revenue from a completed appointment.
	LedgerInflow LedgerEntryKind = "Entrada"
	// LedgerOutflow is an expense.
	LedgerOutflow LedgerEntryKind = "Saída"
)

// LedgerEntry is a derived cash-flow line. Entries are never stored; the
// ledger projection recomputes them on demand from the appointment and
// expense collections.
type LedgerEntry struct {
	SourceID    uuid.UUID
	Instant     time.Time // zero value == invalid instant sentinel
	DateLabel   string
	Description string
	Detail      string
	Kind        LedgerEntryKind
	Amount      decimal.Decimal
}

// HasValidInstant reports whether the entry's instant carries a real
// timestamp rather than the invalid-instant sentinel.
func (e LedgerEntry) HasValidInstant() bool {
	return !e.Instant.IsZero()
}
