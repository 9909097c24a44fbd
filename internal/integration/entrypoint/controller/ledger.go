package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barber-manager/backend/internal/application/usecase/ledger"
	"github.com/barber-manager/backend/internal/application/usecase/report"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/integration/entrypoint/dto"
)

// LedgerController handles cash ledger projection and export endpoints.
type LedgerController struct {
	projectUseCase    *ledger.ProjectLedgerUseCase
	optionsUseCase    *ledger.ListFilterOptionsUseCase
	exportCSVUseCase  *report.ExportCSVUseCase
	exportPDFUseCase  *report.ExportPDFUseCase
	exportXLSXUseCase *report.ExportXLSXUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	projectUseCase *ledger.ProjectLedgerUseCase,
	optionsUseCase *ledger.ListFilterOptionsUseCase,
	exportCSVUseCase *report.ExportCSVUseCase,
	exportPDFUseCase *report.ExportPDFUseCase,
	exportXLSXUseCase *report.ExportXLSXUseCase,
) *LedgerController {
	return &LedgerController{
		projectUseCase:    projectUseCase,
		optionsUseCase:    optionsUseCase,
		exportCSVUseCase:  exportCSVUseCase,
		exportPDFUseCase:  exportPDFUseCase,
		exportXLSXUseCase: exportXLSXUseCase,
	}
}

// List handles GET /ledger requests.
func (c *LedgerController) List(ctx *gin.Context) {
	output, err := c.projectUseCase.Execute(ctx.Request.Context(), filterFromQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to project ledger",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output))
}

// FilterOptions handles GET /ledger/options requests.
func (c *LedgerController) FilterOptions(ctx *gin.Context) {
	output, err := c.optionsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve filter options",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFilterOptionsResponse(output))
}

// Export handles GET /ledger/export requests. The format query parameter
// selects the file type; the filter parameters mirror the List endpoint.
func (c *LedgerController) Export(ctx *gin.Context) {
	input := report.ExportInput{
		Filter: filterFromQuery(ctx),
		Today:  time.Now(),
	}

	var (
		output *report.ExportOutput
		err    error
	)
	switch ctx.DefaultQuery("format", report.FormatCSV) {
	case report.FormatCSV:
		output, err = c.exportCSVUseCase.Execute(ctx.Request.Context(), input)
	case report.FormatPDF:
		output, err = c.exportPDFUseCase.Execute(ctx.Request.Context(), input)
	case report.FormatXLSX:
		output, err = c.exportXLSXUseCase.Execute(ctx.Request.Context(), input)
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown export format",
			Code:  string(domainerror.ErrCodeUnknownExportFormat),
		})
		return
	}
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// filterFromQuery assembles the ledger filter from the request query string.
// Dates use the 2006-01-02 layout; malformed values are ignored so a broken
// bound never silently narrows the projection to an arbitrary range.
func filterFromQuery(ctx *gin.Context) ledger.Filter {
	filter := ledger.Filter{
		Service: ctx.Query("service"),
		Barber:  ctx.Query("barber"),
		Payment: ctx.Query("payment"),
	}
	if raw := ctx.Query("start"); raw != "" {
		if start, err := time.Parse("2006-01-02", raw); err == nil {
			filter.Start = start
		}
	}
	if raw := ctx.Query("end"); raw != "" {
		if end, err := time.Parse("2006-01-02", raw); err == nil {
			filter.End = end
		}
	}
	return filter
}

// handleReportError maps export errors to HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
