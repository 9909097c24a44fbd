package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/barber-manager/backend/internal/application/usecase/ledger"
	"github.com/barber-manager/backend/internal/domain/entity"
)

// ExportXLSXUseCase renders the filtered projection as a spreadsheet with a
// styled header and the running total in the last row.
type ExportXLSXUseCase struct {
	projector *ledger.ProjectLedgerUseCase
}

// NewExportXLSXUseCase creates a new ExportXLSXUseCase instance.
func NewExportXLSXUseCase(projector *ledger.ProjectLedgerUseCase) *ExportXLSXUseCase {
	return &ExportXLSXUseCase{projector: projector}
}

// Execute builds the XLSX document for the committed filter state.
func (uc *ExportXLSXUseCase) Execute(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	projection, err := project(ctx, uc.projector, input.Filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Caixa"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create report sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for c, col := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, col)
	}

	for r, e := range projection.Entries {
		row := r + 2
		amount := e.Amount.InexactFloat64()
		if e.Kind == entity.LedgerOutflow {
			amount = -amount
		}
		values := []any{
			e.DateLabel,
			e.Description,
			e.Detail,
			string(e.Kind),
			amount,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	totalRow := len(projection.Entries) + 2
	cell, _ := excelize.CoordinatesToCellName(4, totalRow)
	_ = f.SetCellValue(sheet, cell, "Total em Caixa:")
	cell, _ = excelize.CoordinatesToCellName(5, totalRow)
	_ = f.SetCellValue(sheet, cell, projection.TotalText)

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 40)
	_ = f.SetColWidth(sheet, "D", "D", 10)
	_ = f.SetColWidth(sheet, "E", "E", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2C2C2C"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "E1", headerStyle)

	start, _ := excelize.CoordinatesToCellName(1, totalRow)
	end, _ := excelize.CoordinatesToCellName(5, totalRow)
	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheet, start, end, totalStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render report spreadsheet: %w", err)
	}

	return &ExportOutput{
		Filename:    exportFilename(input.Today, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}
