package report

import (
	"context"
	"strings"

	"github.com/barber-manager/backend/internal/application/usecase/ledger"
)

// utf8BOM prefixes the delimited export so spreadsheet tools detect the
// encoding.
const utf8BOM = "\xEF\xBB\xBF"

// ExportCSVUseCase renders the filtered projection as delimited text. Every
// field is quoted, embedded quotes are doubled, and the document ends with a
// running-total footer row.
type ExportCSVUseCase struct {
	projector *ledger.ProjectLedgerUseCase
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(projector *ledger.ProjectLedgerUseCase) *ExportCSVUseCase {
	return &ExportCSVUseCase{projector: projector}
}

// Execute builds the CSV document for the committed filter state.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	projection, err := project(ctx, uc.projector, input.Filter)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(strings.Join(reportColumns, ","))
	b.WriteString("\n")

	for _, e := range projection.Entries {
		fields := []string{
			e.DateLabel,
			e.Description,
			e.Detail,
			string(e.Kind),
			signedPlainAmount(e),
		}
		b.WriteString(joinQuoted(fields))
		b.WriteString("\n")
	}

	footer := []string{"", "", "", quote("Total em Caixa:"), quote(projection.TotalText)}
	b.WriteString(strings.Join(footer, ","))

	return &ExportOutput{
		Filename:    exportFilename(input.Today, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte(b.String()),
	}, nil
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	return strings.Join(quoted, ",")
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
