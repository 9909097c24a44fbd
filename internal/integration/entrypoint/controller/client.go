package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/usecase/registry"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client registry endpoints.
type ClientController struct {
	createUseCase *registry.CreateClientUseCase
	updateUseCase *registry.UpdateClientUseCase
	deleteUseCase *registry.DeleteClientUseCase
	listUseCase   *registry.ListClientsUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	createUseCase *registry.CreateClientUseCase,
	updateUseCase *registry.UpdateClientUseCase,
	deleteUseCase *registry.DeleteClientUseCase,
	listUseCase *registry.ListClientsUseCase,
) *ClientController {
	return &ClientController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve clients",
		})
		return
	}

	clients := make([]dto.ClientResponse, len(output.Clients))
	for i, cl := range output.Clients {
		clients[i] = dto.ToClientResponse(cl)
	}
	ctx.JSON(http.StatusOK, dto.ClientListResponse{Clients: clients})
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeRegistryMissingFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), registry.CreateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		handleRegistryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// Update handles PUT /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeRegistryMissingFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), registry.UpdateClientInput{
		ID:    clientID,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		handleRegistryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), registry.DeleteClientInput{ID: clientID}); err != nil {
		handleRegistryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
