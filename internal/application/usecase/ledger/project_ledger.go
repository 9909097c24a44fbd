// Package ledger contains the cash-flow projection use cases.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// AllFilter is the content-filter sentinel meaning "no restriction".
const AllFilter = "Todos"

// Filter is the committed filter state for one projection query. The date
// range is active only when both Start and End are set; each content filter
// defaults to the AllFilter sentinel and applies to inflow entries only.
type Filter struct {
	Start   time.Time
	End     time.Time
	Service string
	Barber  string
	Payment string
}

// dateRangeActive reports whether the date axis participates in filtering.
func (f Filter) dateRangeActive() bool {
	return !f.Start.IsZero() && !f.End.IsZero()
}

// normalized fills empty content filters with the AllFilter sentinel.
func (f Filter) normalized() Filter {
	if f.Service == "" {
		f.Service = AllFilter
	}
	if f.Barber == "" {
		f.Barber = AllFilter
	}
	if f.Payment == "" {
		f.Payment = AllFilter
	}
	return f
}

// EntryOutput is one line of the projected cash flow.
type EntryOutput struct {
	SourceID    uuid.UUID
	Instant     time.Time
	DateLabel   string
	Description string
	Detail      string
	Kind        entity.LedgerEntryKind
	Amount      decimal.Decimal
	AmountText  string // signed display: "+ R$ 50,00" / "- R$ 15,00"
}

// ProjectLedgerOutput is the filtered, sorted projection plus its running total.
type ProjectLedgerOutput struct {
	Entries   []*EntryOutput
	Total     decimal.Decimal
	TotalText string
}

// ProjectLedgerUseCase merges completed appointments and expenses into a
// single chronological cash-flow view. The projection owns no state: it is a
// pure function of the two collections at call time, recomputed on every query.
type ProjectLedgerUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	expenseRepo     adapter.ExpenseRepository
}

// NewProjectLedgerUseCase creates a new ProjectLedgerUseCase instance.
func NewProjectLedgerUseCase(
	appointmentRepo adapter.AppointmentRepository,
	expenseRepo adapter.ExpenseRepository,
) *ProjectLedgerUseCase {
	return &ProjectLedgerUseCase{
		appointmentRepo: appointmentRepo,
		expenseRepo:     expenseRepo,
	}
}

// ledgerLine pairs a derived entry with the content-filter dimensions of its
// source appointment. Outflow lines have no such dimensions and always pass
// content filters.
type ledgerLine struct {
	entry    entity.LedgerEntry
	services string
	barber   string
	payment  string
	inflow   bool
}

// Execute derives the ledger: every completed appointment contributes an
// inflow, every expense an outflow, sorted most recent first. The two filter
// axes combine by logical AND; the running total is Σ inflow − Σ outflow
// over the filtered set.
func (uc *ProjectLedgerUseCase) Execute(ctx context.Context, filter Filter) (*ProjectLedgerOutput, error) {
	lines, err := uc.deriveLines(ctx)
	if err != nil {
		return nil, err
	}

	filter = filter.normalized()

	var rangeStart, rangeEnd time.Time
	if filter.dateRangeActive() {
		rangeStart = time.Date(filter.Start.Year(), filter.Start.Month(), filter.Start.Day(), 0, 0, 0, 0, filter.Start.Location())
		rangeEnd = time.Date(filter.End.Year(), filter.End.Month(), filter.End.Day(), 0, 0, 0, 0, filter.End.Location()).Add(24*time.Hour - time.Millisecond)
	}

	total := decimal.Zero
	output := &ProjectLedgerOutput{}
	for _, line := range lines {
		if filter.dateRangeActive() {
			// Entries carrying the invalid-instant sentinel never match an
			// active date range.
			if !line.entry.HasValidInstant() {
				continue
			}
			if line.entry.Instant.Before(rangeStart) || line.entry.Instant.After(rangeEnd) {
				continue
			}
		}

		if line.inflow {
			if filter.Service != AllFilter && line.services != filter.Service {
				continue
			}
			if filter.Barber != AllFilter && line.barber != filter.Barber {
				continue
			}
			if filter.Payment != AllFilter && line.payment != filter.Payment {
				continue
			}
			total = total.Add(line.entry.Amount)
		} else {
			total = total.Sub(line.entry.Amount)
		}

		output.Entries = append(output.Entries, toEntryOutput(line.entry))
	}

	output.Total = total
	output.TotalText = valueobject.FormatBRL(total)
	return output, nil
}

// deriveLines builds the unfiltered merged sequence, descending by instant.
func (uc *ProjectLedgerUseCase) deriveLines(ctx context.Context) ([]ledgerLine, error) {
	appointments, err := uc.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	lines := make([]ledgerLine, 0, len(appointments)+len(expenses))
	for _, a := range appointments {
		// Pending appointments never reach the ledger.
		if a.Status != entity.AppointmentStatusCompleted {
			continue
		}
		lines = append(lines, appointmentLine(a))
	}
	for _, e := range expenses {
		lines = append(lines, expenseLine(e))
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].entry.Instant.After(lines[j].entry.Instant)
	})
	return lines, nil
}

// appointmentLine derives the inflow entry for one completed appointment:
// the description is the joined service text, the detail names client and
// barber, the amount is the stored aggregate price.
func appointmentLine(a *entity.Appointment) ledgerLine {
	services := a.ServiceText()
	return ledgerLine{
		entry: entity.LedgerEntry{
			SourceID:    a.ID,
			Instant:     a.Schedule,
			DateLabel:   a.Schedule.Format("02/01/2006 às 15:04"),
			Description: services,
			Detail:      fmt.Sprintf("Cliente: %s | Barbeiro: %s", a.Client, a.Barber),
			Kind:        entity.LedgerInflow,
			Amount:      a.Price,
		},
		services: services,
		barber:   a.Barber,
		payment:  a.Payment,
		inflow:   true,
	}
}

// expenseLine derives the outflow entry for one expense, anchored at the
// start of its day.
func expenseLine(e *entity.Expense) ledgerLine {
	day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, e.Date.Location())
	return ledgerLine{
		entry: entity.LedgerEntry{
			SourceID:    e.ID,
			Instant:     day,
			DateLabel:   valueobject.FormatDayLabel(day),
			Description: e.Description,
			Detail:      fmt.Sprintf("Categoria: %s", e.Category),
			Kind:        entity.LedgerOutflow,
			Amount:      e.Amount,
		},
	}
}

func toEntryOutput(e entity.LedgerEntry) *EntryOutput {
	sign := "+ "
	if e.Kind == entity.LedgerOutflow {
		sign = "- "
	}
	return &EntryOutput{
		SourceID:    e.SourceID,
		Instant:     e.Instant,
		DateLabel:   e.DateLabel,
		Description: e.Description,
		Detail:      e.Detail,
		Kind:        e.Kind,
		Amount:      e.Amount,
		AmountText:  sign + valueobject.FormatBRL(e.Amount),
	}
}
