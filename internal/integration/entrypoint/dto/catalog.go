package dto

import (
	"github.com/barber-manager/backend/internal/application/usecase/catalog"
)

// CreateServiceRequest represents the request body for service creation.
// Price and duration arrive as display text and run through the lenient
// parsers.
type CreateServiceRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Price       string `json:"price" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
}

// UpdateServiceRequest represents the request body for service update.
type UpdateServiceRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Price       string `json:"price" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
}

// ServiceResponse represents a catalog service in API responses.
type ServiceResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	PriceText       string `json:"price_text"`
	DurationMinutes int    `json:"duration_minutes"`
	DurationText    string `json:"duration_text"`
}

// ServiceListResponse represents the response for listing catalog services.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ToServiceResponse converts a ServiceOutput to a ServiceResponse DTO.
func ToServiceResponse(svc *catalog.ServiceOutput) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID.String(),
		Code:            svc.Code,
		Description:     svc.Description,
		Price:           svc.Price.StringFixed(2),
		PriceText:       svc.PriceText,
		DurationMinutes: svc.DurationMinutes,
		DurationText:    svc.DurationText,
	}
}

// ToServiceListResponse converts a ListServicesOutput to a ServiceListResponse DTO.
func ToServiceListResponse(output *catalog.ListServicesOutput) ServiceListResponse {
	services := make([]ServiceResponse, len(output.Services))
	for i, svc := range output.Services {
		services[i] = ToServiceResponse(svc)
	}
	return ServiceListResponse{Services: services}
}
