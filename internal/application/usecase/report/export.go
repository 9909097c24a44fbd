// Package report renders the projected cash flow into downloadable documents.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/barber-manager/backend/internal/application/usecase/ledger"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// Export formats supported by the report endpoints.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ExportInput selects the projection slice to render. Today anchors the
// generated filename.
type ExportInput struct {
	Filter ledger.Filter
	Today  time.Time
}

// ExportOutput carries the rendered document and its download metadata.
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// reportColumns is the header shared by every rendering.
var reportColumns = []string{"Data", "Descrição", "Detalhes", "Tipo", "Valor"}

// projectionRows flattens the filtered projection into display rows. The
// amount column is signed text, positive for inflows and negative for
// outflows.
func projectionRows(projection *ledger.ProjectLedgerOutput) [][]string {
	rows := make([][]string, 0, len(projection.Entries))
	for _, e := range projection.Entries {
		rows = append(rows, []string{
			e.DateLabel,
			e.Description,
			e.Detail,
			string(e.Kind),
			e.AmountText,
		})
	}
	return rows
}

// signedPlainAmount renders the entry amount as a bare signed comma-decimal,
// the form the delimited export uses.
func signedPlainAmount(e *ledger.EntryOutput) string {
	text := strings.Replace(e.Amount.StringFixed(2), ".", ",", 1)
	if e.Kind == entity.LedgerOutflow {
		return "-" + text
	}
	return text
}

// periodTitle describes the committed date range, or "Todos" when the range
// filter is inactive.
func periodTitle(filter ledger.Filter) string {
	if !filter.Start.IsZero() && !filter.End.IsZero() {
		return fmt.Sprintf("de %s a %s",
			valueobject.FormatDayLabel(filter.Start),
			valueobject.FormatDayLabel(filter.End))
	}
	return "Todos"
}

// exportFilename builds "relatorio_caixa_DD-MM-YYYY.<ext>" from the anchor
// date.
func exportFilename(today time.Time, ext string) string {
	return fmt.Sprintf("relatorio_caixa_%s.%s", today.Format("02-01-2006"), ext)
}

// project runs the ledger projection and rejects empty result sets, which
// have nothing to render.
func project(ctx context.Context, uc *ledger.ProjectLedgerUseCase, filter ledger.Filter) (*ledger.ProjectLedgerOutput, error) {
	projection, err := uc.Execute(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(projection.Entries) == 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeNoDataToExport,
			"no data to export",
			domainerror.ErrNoDataToExport,
		)
	}
	return projection, nil
}
