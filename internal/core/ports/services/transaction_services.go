package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// TransactionSvcFacade covers the transaction log and the monthly budgets
// consumption transactions are measured against.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// SetMonthlyBudget upserts the budget for a "YYYY-MM" month key,
	// last write wins.
	SetMonthlyBudget(ctx context.Context, month string, amount decimal.Decimal) error
	GetMonthlyBudget(ctx context.Context, month string) (decimal.Decimal, error)
	ListMonthlyBudgets(ctx context.Context) (map[string]decimal.Decimal, error)
}
