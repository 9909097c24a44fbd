// Package catalog contains service catalog use cases.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/domain/entity"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// ServiceOutput is the use-case view of a catalog service. PriceText and
// DurationText carry the canonical display renderings alongside the raw
// values.
type ServiceOutput struct {
	ID              uuid.UUID
	Code            string
	Description     string
	Price           decimal.Decimal
	PriceText       string
	DurationMinutes int
	DurationText    string
}

func toServiceOutput(service *entity.Service) *ServiceOutput {
	return &ServiceOutput{
		ID:              service.ID,
		Code:            service.Code,
		Description:     service.Description,
		Price:           service.Price,
		PriceText:       valueobject.FormatBRL(service.Price),
		DurationMinutes: service.DurationMinutes,
		DurationText:    valueobject.FormatDurationMinutes(service.DurationMinutes),
	}
}
