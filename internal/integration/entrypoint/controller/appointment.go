// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/usecase/appointment"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/domain/valueobject"
	"github.com/barber-manager/backend/internal/integration/entrypoint/dto"
)

// entityStatus converts the optional status field; an empty string keeps the
// stored status.
func entityStatus(s string) entity.AppointmentStatus {
	return entity.AppointmentStatus(s)
}

// AppointmentController handles appointment endpoints.
type AppointmentController struct {
	bookUseCase     *appointment.BookAppointmentUseCase
	updateUseCase   *appointment.UpdateAppointmentUseCase
	completeUseCase *appointment.CompleteAppointmentUseCase
	deleteUseCase   *appointment.DeleteAppointmentUseCase
	listUseCase     *appointment.ListAppointmentsUseCase
}

// NewAppointmentController creates a new appointment controller instance.
func NewAppointmentController(
	bookUseCase *appointment.BookAppointmentUseCase,
	updateUseCase *appointment.UpdateAppointmentUseCase,
	completeUseCase *appointment.CompleteAppointmentUseCase,
	deleteUseCase *appointment.DeleteAppointmentUseCase,
	listUseCase *appointment.ListAppointmentsUseCase,
) *AppointmentController {
	return &AppointmentController{
		bookUseCase:     bookUseCase,
		updateUseCase:   updateUseCase,
		completeUseCase: completeUseCase,
		deleteUseCase:   deleteUseCase,
		listUseCase:     listUseCase,
	}
}

// List handles GET /appointments requests. The period query parameter
// selects the filter: empty for all, "daily", "weekly" or "range" (range
// requires start and end in YYYY-MM-DD).
func (c *AppointmentController) List(ctx *gin.Context) {
	now := time.Now()
	input := appointment.ListAppointmentsInput{
		Kind:      appointment.PeriodKind(ctx.Query("period")),
		Reference: now,
	}

	// The daily view matches on the exact date label; callers may override
	// the server's notion of today, e.g. across timezones.
	input.Today = ctx.Query("today")
	if input.Today == "" {
		input.Today = valueobject.FormatDayLabel(now)
	}

	if startStr := ctx.Query("start"); startStr != "" {
		if start, err := time.Parse("2006-01-02", startStr); err == nil {
			input.Start = start
		}
	}
	if endStr := ctx.Query("end"); endStr != "" {
		if end, err := time.Parse("2006-01-02", endStr); err == nil {
			input.End = end
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(output))
}

// Book handles POST /appointments requests.
func (c *AppointmentController) Book(ctx *gin.Context) {
	var req dto.BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeAppointmentMissingFields),
		})
		return
	}

	schedule, _ := valueobject.ParseScheduleLabel(req.Schedule)
	input := appointment.BookAppointmentInput{
		Client:              req.Client,
		Barber:              req.Barber,
		Schedule:            schedule,
		Payment:             req.Payment,
		ServiceDescriptions: req.Services,
	}

	output, err := c.bookUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAppointmentResponse(output.Appointment))
}

// Update handles PUT /appointments/:id requests.
func (c *AppointmentController) Update(ctx *gin.Context) {
	appointmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid appointment ID format",
		})
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeAppointmentMissingFields),
		})
		return
	}

	schedule, _ := valueobject.ParseScheduleLabel(req.Schedule)
	input := appointment.UpdateAppointmentInput{
		ID:                  appointmentID,
		Client:              req.Client,
		Barber:              req.Barber,
		Schedule:            schedule,
		Payment:             req.Payment,
		ServiceDescriptions: req.Services,
		Status:              entityStatus(req.Status),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(output.Appointment))
}

// Complete handles POST /appointments/:id/complete requests. Completing an
// already-completed appointment succeeds without change.
func (c *AppointmentController) Complete(ctx *gin.Context) {
	appointmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid appointment ID format",
		})
		return
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), appointment.CompleteAppointmentInput{ID: appointmentID})
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(output.Appointment))
}

// Delete handles DELETE /appointments/:id requests.
func (c *AppointmentController) Delete(ctx *gin.Context) {
	appointmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid appointment ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), appointment.DeleteAppointmentInput{ID: appointmentID}); err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAppointmentError maps appointment errors to HTTP responses.
func (c *AppointmentController) handleAppointmentError(ctx *gin.Context, err error) {
	var aptErr *domainerror.AppointmentError
	if errors.As(err, &aptErr) {
		status := http.StatusBadRequest
		if aptErr.Code == domainerror.ErrCodeAppointmentNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: aptErr.Message,
			Code:  string(aptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
