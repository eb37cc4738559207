package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wfbarn/wfbarn_app/internal/apperrors"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	container *state.Container
	mockStore *MockDocumentStore
	service   portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.container = state.NewContainer(domain.NewDocument())
	suite.mockStore = new(MockDocumentStore)
	suite.mockStore.On("Save", mock.Anything, mock.Anything).Return(nil)
	suite.service = services.NewTransactionService(suite.container, suite.mockStore)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	txn, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Type:     domain.TxnConsumption,
		Amount:   decimal.RequireFromString("42.10"),
		Category: "groceries",
		Date:     "2024-03-05",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("2024-03-05", txn.Date.String())

	doc := suite.container.Snapshot()
	suite.Require().Len(doc.Transactions, 1)
	suite.mockStore.AssertNumberOfCalls(suite.T(), "Save", 1)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsToToday() {
	txn, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Type:   domain.TxnIncome,
		Amount: decimal.RequireFromString("1000"),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.Today(), txn.Date)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	_, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Type:   domain.TxnExpense,
		Amount: decimal.RequireFromString("5"),
		Date:   "05/03/2024",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(suite.container.Snapshot().Transactions)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	txn, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Type:   domain.TxnExpense,
		Amount: decimal.RequireFromString("5"),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteTransaction(context.Background(), txn.TransactionID))
	suite.Empty(suite.container.Snapshot().Transactions)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	err := suite.service.DeleteTransaction(context.Background(), "missing-id")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestSetMonthlyBudget_LastWriteWins() {
	ctx := context.Background()

	suite.Require().NoError(suite.service.SetMonthlyBudget(ctx, "2024-03", decimal.RequireFromString("1500")))
	suite.Require().NoError(suite.service.SetMonthlyBudget(ctx, "2024-03", decimal.RequireFromString("1800")))

	amount, err := suite.service.GetMonthlyBudget(ctx, "2024-03")
	suite.Require().NoError(err)
	suite.True(amount.Equal(decimal.RequireFromString("1800")))
}

func (suite *TransactionServiceTestSuite) TestGetMonthlyBudget_NotFound() {
	_, err := suite.service.GetMonthlyBudget(context.Background(), "2031-01")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
