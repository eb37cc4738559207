package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wfbarn/wfbarn_app/internal/apperrors"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	documentCommitter
}

// NewTransactionService creates the transaction service over the shared
// state container and local store.
func NewTransactionService(container *state.Container, store portsrepo.DocumentStore) portssvc.TransactionSvcFacade {
	return &transactionServiceImpl{
		documentCommitter: documentCommitter{container: container, store: store},
	}
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnDate := domain.Today()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
		}
		txnDate = parsed
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          txnDate,
		Type:          req.Type,
		Amount:        req.Amount,
		Category:      req.Category,
		Note:          req.Note,
	}

	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		doc.Transactions = append(doc.Transactions, txn)
		return doc, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category))
	return &txn, nil
}

func (s *transactionServiceImpl) DeleteTransaction(ctx context.Context, transactionID string) error {
	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		if doc.FindTransaction(transactionID) == nil {
			return doc, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		txns := doc.Transactions[:0]
		for _, t := range doc.Transactions {
			if t.TransactionID != transactionID {
				txns = append(txns, t)
			}
		}
		doc.Transactions = txns
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to persist transaction deletion", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.snapshot().Transactions, nil
}

// SetMonthlyBudget upserts the budget for the month, last write wins.
func (s *transactionServiceImpl) SetMonthlyBudget(ctx context.Context, month string, amount decimal.Decimal) error {
	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		doc.MonthlyBudgets[month] = amount
		return doc, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist budget", slog.String("month", month))
		return err
	}

	s.LogInfo(ctx, "Monthly budget set", slog.String("month", month))
	return nil
}

func (s *transactionServiceImpl) GetMonthlyBudget(ctx context.Context, month string) (decimal.Decimal, error) {
	amount, ok := s.snapshot().MonthlyBudgets[month]
	if !ok {
		return decimal.Zero, fmt.Errorf("budget for %s: %w", month, apperrors.ErrNotFound)
	}
	return amount, nil
}

func (s *transactionServiceImpl) ListMonthlyBudgets(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.snapshot().MonthlyBudgets, nil
}
