package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// UpsertMacroRecordRequest records an indicator value for a date.
// Date defaults to today when omitted.
type UpsertMacroRecordRequest struct {
	Date  string          `json:"date" binding:"omitempty,dateonly"`
	Value decimal.Decimal `json:"value" binding:"required"`
	Note  string          `json:"note"`
}

// MacroRecordResponse defines the data returned for a macro record.
type MacroRecordResponse struct {
	Date  domain.Date     `json:"date"`
	Value decimal.Decimal `json:"value"`
	Note  string          `json:"note,omitempty"`
}

// ToMacroRecordResponse converts a domain.MacroRecord to its response DTO.
func ToMacroRecordResponse(r *domain.MacroRecord) MacroRecordResponse {
	return MacroRecordResponse{Date: r.Date, Value: r.Value, Note: r.Note}
}

// ToListMacroRecordResponse converts macro records to response DTOs.
func ToListMacroRecordResponse(records []domain.MacroRecord) []MacroRecordResponse {
	res := make([]MacroRecordResponse, len(records))
	for i := range records {
		res[i] = ToMacroRecordResponse(&records[i])
	}
	return res
}
