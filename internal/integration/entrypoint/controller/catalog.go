// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/usecase/catalog"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/integration/entrypoint/dto"
)

// CatalogController handles service catalog endpoints.
type CatalogController struct {
	createUseCase *catalog.CreateServiceUseCase
	updateUseCase *catalog.UpdateServiceUseCase
	deleteUseCase *catalog.DeleteServiceUseCase
	listUseCase   *catalog.ListServicesUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	createUseCase *catalog.CreateServiceUseCase,
	updateUseCase *catalog.UpdateServiceUseCase,
	deleteUseCase *catalog.DeleteServiceUseCase,
	listUseCase *catalog.ListServicesUseCase,
) *CatalogController {
	return &CatalogController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /services requests.
func (c *CatalogController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve services",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceListResponse(output))
}

// Create handles POST /services requests.
func (c *CatalogController) Create(ctx *gin.Context) {
	var req dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeServiceMissingFields),
		})
		return
	}

	input := catalog.CreateServiceInput{
		Description:  req.Description,
		PriceText:    req.Price,
		DurationText: req.Duration,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceResponse(output.Service))
}

// Update handles PUT /services/:id requests.
func (c *CatalogController) Update(ctx *gin.Context) {
	serviceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid service ID format",
		})
		return
	}

	var req dto.UpdateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeServiceMissingFields),
		})
		return
	}

	input := catalog.UpdateServiceInput{
		ID:           serviceID,
		Description:  req.Description,
		PriceText:    req.Price,
		DurationText: req.Duration,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(output.Service))
}

// Delete handles DELETE /services/:id requests.
func (c *CatalogController) Delete(ctx *gin.Context) {
	serviceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid service ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), catalog.DeleteServiceInput{ID: serviceID}); err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCatalogError maps catalog errors to HTTP responses.
func (c *CatalogController) handleCatalogError(ctx *gin.Context, err error) {
	var catErr *domainerror.CatalogError
	if errors.As(err, &catErr) {
		status := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeServiceNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
