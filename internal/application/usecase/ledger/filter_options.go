package ledger

import (
	"context"
	"fmt"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
)

// FilterOptionsOutput enumerates the selectable values for each content
// filter. Every list starts with the AllFilter sentinel; the remaining
// values keep first-seen order over the completed appointments.
type FilterOptionsOutput struct {
	Services []string
	Barbers  []string
	Payments []string
}

// ListFilterOptionsUseCase collects the distinct filter values currently
// present in the ledger's inflow sources.
type ListFilterOptionsUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewListFilterOptionsUseCase creates a new ListFilterOptionsUseCase instance.
func NewListFilterOptionsUseCase(appointmentRepo adapter.AppointmentRepository) *ListFilterOptionsUseCase {
	return &ListFilterOptionsUseCase{appointmentRepo: appointmentRepo}
}

// Execute scans completed appointments and returns the distinct service
// texts, barbers and payment methods, each prefixed with AllFilter.
func (uc *ListFilterOptionsUseCase) Execute(ctx context.Context) (*FilterOptionsOutput, error) {
	appointments, err := uc.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	services := newDistinctList()
	barbers := newDistinctList()
	payments := newDistinctList()
	for _, a := range appointments {
		if a.Status != entity.AppointmentStatusCompleted {
			continue
		}
		services.add(a.ServiceText())
		barbers.add(a.Barber)
		payments.add(a.Payment)
	}

	return &FilterOptionsOutput{
		Services: services.values,
		Barbers:  barbers.values,
		Payments: payments.values,
	}, nil
}

// distinctList accumulates unique non-empty strings in insertion order,
// seeded with the AllFilter sentinel.
type distinctList struct {
	values []string
	seen   map[string]bool
}

func newDistinctList() *distinctList {
	return &distinctList{values: []string{AllFilter}, seen: map[string]bool{}}
}

func (l *distinctList) add(v string) {
	if v == "" || l.seen[v] {
		return
	}
	l.seen[v] = true
	l.values = append(l.values, v)
}
