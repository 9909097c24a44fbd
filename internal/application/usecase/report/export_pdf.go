package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/barber-manager/backend/internal/application/usecase/ledger"
)

var pdfColumnWidths = []float64{35, 45, 65, 20, 25}

// ExportPDFUseCase renders the filtered projection as a paginated striped
// table with a title, the committed period and a bold total row.
type ExportPDFUseCase struct {
	projector *ledger.ProjectLedgerUseCase
}

// NewExportPDFUseCase creates a new ExportPDFUseCase instance.
func NewExportPDFUseCase(projector *ledger.ProjectLedgerUseCase) *ExportPDFUseCase {
	return &ExportPDFUseCase{projector: projector}
}

// Execute builds the PDF document for the committed filter state.
func (uc *ExportPDFUseCase) Execute(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	projection, err := project(ctx, uc.projector, input.Filter)
	if err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, tr("Relatório de Caixa"))
	doc.Ln(10)
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(100, 100, 100)
	doc.Cell(0, 8, tr(fmt.Sprintf("Período: %s", periodTitle(input.Filter))))
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(44, 44, 44)
	doc.SetTextColor(255, 255, 255)
	for i, col := range reportColumns {
		doc.CellFormat(pdfColumnWidths[i], 8, tr(col), "", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	for rowIdx, row := range projectionRows(projection) {
		fill := rowIdx%2 == 1
		doc.SetFillColor(240, 240, 240)
		for i, cell := range row {
			doc.CellFormat(pdfColumnWidths[i], 7, tr(cell), "", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(44, 44, 44)
	doc.SetTextColor(255, 255, 255)
	for i := 0; i < 3; i++ {
		doc.CellFormat(pdfColumnWidths[i], 8, "", "", 0, "L", true, 0, "")
	}
	doc.CellFormat(pdfColumnWidths[3], 8, tr("Total em Caixa:"), "", 0, "L", true, 0, "")
	doc.CellFormat(pdfColumnWidths[4], 8, tr(projection.TotalText), "", 0, "L", true, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}

	return &ExportOutput{
		Filename:    exportFilename(input.Today, "pdf"),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
