package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to log a transaction.
// Date defaults to today when omitted.
type CreateTransactionRequest struct {
	Date     string                 `json:"date" binding:"omitempty,dateonly"`
	Type     domain.TransactionType `json:"type" binding:"required,txntype"`
	Amount   decimal.Decimal        `json:"amount" binding:"required"`
	Category string                 `json:"category" binding:"required"`
	Note     string                 `json:"note"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"id"`
	Date          domain.Date            `json:"date"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	Category      string                 `json:"category"`
	Note          string                 `json:"note,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Type:          t.Type,
		Amount:        t.Amount,
		Category:      t.Category,
		Note:          t.Note,
	}
}

// ToListTransactionResponse converts transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// SetBudgetRequest upserts the budget amount for one month.
type SetBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse defines the data returned for a single month's budget.
type BudgetResponse struct {
	Month  string          `json:"month"` // "YYYY-MM"
	Amount decimal.Decimal `json:"amount"`
}
