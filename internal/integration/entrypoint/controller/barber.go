// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/usecase/registry"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/integration/entrypoint/dto"
)

// BarberController handles barber registry endpoints.
type BarberController struct {
	createUseCase *registry.CreateBarberUseCase
	updateUseCase *registry.UpdateBarberUseCase
	deleteUseCase *registry.DeleteBarberUseCase
	listUseCase   *registry.ListBarbersUseCase
}

// NewBarberController creates a new barber controller instance.
func NewBarberController(
	createUseCase *registry.CreateBarberUseCase,
	updateUseCase *registry.UpdateBarberUseCase,
	deleteUseCase *registry.DeleteBarberUseCase,
	listUseCase *registry.ListBarbersUseCase,
) *BarberController {
	return &BarberController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /barbers requests.
func (c *BarberController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve barbers",
		})
		return
	}

	barbers := make([]dto.BarberResponse, len(output.Barbers))
	for i, b := range output.Barbers {
		barbers[i] = dto.ToBarberResponse(b)
	}
	ctx.JSON(http.StatusOK, dto.BarberListResponse{Barbers: barbers})
}

// Create handles POST /barbers requests.
func (c *BarberController) Create(ctx *gin.Context) {
	var req dto.CreateBarberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeRegistryMissingFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), registry.CreateBarberInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		handleRegistryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBarberResponse(output.Barber))
}

// Update handles PUT /barbers/:id requests.
func (c *BarberController) Update(ctx *gin.Context) {
	barberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid barber ID format",
		})
		return
	}

	var req dto.UpdateBarberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeRegistryMissingFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), registry.UpdateBarberInput{
		ID:    barberID,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		handleRegistryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBarberResponse(output.Barber))
}

// Delete handles DELETE /barbers/:id requests.
func (c *BarberController) Delete(ctx *gin.Context) {
	barberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid barber ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), registry.DeleteBarberInput{ID: barberID}); err != nil {
		handleRegistryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRegistryError maps barber/client registry errors to HTTP responses.
func handleRegistryError(ctx *gin.Context, err error) {
	var regErr *domainerror.RegistryError
	if errors.As(err, &regErr) {
		status := http.StatusBadRequest
		if regErr.Code == domainerror.ErrCodeBarberNotFound || regErr.Code == domainerror.ErrCodeClientNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: regErr.Message,
			Code:  string(regErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
