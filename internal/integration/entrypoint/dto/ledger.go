package dto

import (
	"github.com/barber-manager/backend/internal/application/usecase/ledger"
)

// LedgerEntryResponse represents one cash-flow line in API responses.
type LedgerEntryResponse struct {
	SourceID    string `json:"source_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	AmountText  string `json:"amount_text"`
}

// LedgerResponse represents the filtered cash flow plus its running total.
type LedgerResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	Total     string                `json:"total"`
	TotalText string                `json:"total_text"`
}

// FilterOptionsResponse enumerates the selectable content-filter values.
type FilterOptionsResponse struct {
	Services []string `json:"services"`
	Barbers  []string `json:"barbers"`
	Payments []string `json:"payments"`
}

// ToLedgerResponse converts a ProjectLedgerOutput to a LedgerResponse DTO.
func ToLedgerResponse(output *ledger.ProjectLedgerOutput) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = LedgerEntryResponse{
			SourceID:    e.SourceID.String(),
			Date:        e.DateLabel,
			Description: e.Description,
			Detail:      e.Detail,
			Kind:        string(e.Kind),
			Amount:      e.Amount.StringFixed(2),
			AmountText:  e.AmountText,
		}
	}

	return LedgerResponse{
		Entries:   entries,
		Total:     output.Total.StringFixed(2),
		TotalText: output.TotalText,
	}
}

// ToFilterOptionsResponse converts a FilterOptionsOutput to a FilterOptionsResponse DTO.
func ToFilterOptionsResponse(output *ledger.FilterOptionsOutput) FilterOptionsResponse {
	return FilterOptionsResponse{
		Services: output.Services,
		Barbers:  output.Barbers,
		Payments: output.Payments,
	}
}
