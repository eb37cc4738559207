package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wfbarn/wfbarn_app/internal/apperrors"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/dto"
	"github.com/wfbarn/wfbarn_app/internal/handlers"
	"github.com/wfbarn/wfbarn_app/internal/platform/config"
)

// --- Mock PortfolioService ---
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockPortfolioService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	args := m.Called(ctx, assetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockPortfolioService) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}
func (m *MockPortfolioService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockPortfolioService) RecordDailyReview(ctx context.Context, assetID string, req dto.DailyReviewRequest) (*domain.DailyRecord, error) {
	args := m.Called(ctx, assetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRecord), args.Error(1)
}
func (m *MockPortfolioService) DeleteDailyRecord(ctx context.Context, date domain.Date, assetID string) error {
	args := m.Called(ctx, date, assetID)
	return args.Error(0)
}
func (m *MockPortfolioService) ListDailyRecords(ctx context.Context) ([]domain.DailyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRecord), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PortfolioSvcFacade = (*MockPortfolioService)(nil)

// --- Test Suite Setup ---

type AssetHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPortfolioService
}

func (suite *AssetHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()
}

func (suite *AssetHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockPortfolioService)

	cfg := &config.Config{IsProduction: true, SyncRateLimit: "10-M"}
	services := &portssvc.ServiceContainer{Portfolio: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AssetHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AssetHandlerTestSuite) TestCreateAsset_Success() {
	asset := &domain.Asset{
		AssetID:       uuid.NewString(),
		Name:          "Brokerage",
		Type:          domain.AssetStock,
		InitialAmount: decimal.RequireFromString("1000"),
		CurrentAmount: decimal.RequireFromString("1000"),
	}
	suite.mockService.On("CreateAsset", mock.Anything, mock.AnythingOfType("dto.CreateAssetRequest")).
		Return(asset, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/assets", gin.H{
		"name":          "Brokerage",
		"type":          "STOCK",
		"initialAmount": "1000",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(asset.AssetID, resp.AssetID)
	suite.True(resp.CurrentAmount.Equal(asset.CurrentAmount))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_InvalidType() {
	w := suite.performRequest(http.MethodPost, "/api/v1/assets", gin.H{
		"name": "Brokerage",
		"type": "REAL_ESTATE",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateAsset", mock.Anything, mock.Anything)
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_MissingName() {
	w := suite.performRequest(http.MethodPost, "/api/v1/assets", gin.H{
		"type": "CASH",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AssetHandlerTestSuite) TestUpdateAsset_NotFound() {
	assetID := uuid.NewString()
	suite.mockService.On("UpdateAsset", mock.Anything, assetID, mock.AnythingOfType("dto.UpdateAssetRequest")).
		Return(nil, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/assets/"+assetID, gin.H{
		"name": "Renamed",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AssetHandlerTestSuite) TestDeleteAsset_Success() {
	assetID := uuid.NewString()
	suite.mockService.On("DeleteAsset", mock.Anything, assetID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/assets/"+assetID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssetHandlerTestSuite) TestRecordDailyReview_Success() {
	assetID := uuid.NewString()
	record := &domain.DailyRecord{
		Date:       domain.Today(),
		AssetID:    assetID,
		ProfitLoss: decimal.RequireFromString("12.5"),
		Balance:    decimal.RequireFromString("112.5"),
	}
	suite.mockService.On("RecordDailyReview", mock.Anything, assetID, mock.AnythingOfType("dto.DailyReviewRequest")).
		Return(record, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/assets/"+assetID+"/review", gin.H{
		"profitLoss": "12.5",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DailyRecordResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(record.Balance))
}

func (suite *AssetHandlerTestSuite) TestRecordDailyReview_BadDate() {
	w := suite.performRequest(http.MethodPost, "/api/v1/assets/"+uuid.NewString()+"/review", gin.H{
		"profitLoss": "1",
		"date":       "not-a-date",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "RecordDailyReview", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AssetHandlerTestSuite) TestListAssets_Success() {
	assets := []domain.Asset{{
		AssetID:       uuid.NewString(),
		Name:          "Fund",
		Type:          domain.AssetFund,
		InitialAmount: decimal.RequireFromString("50"),
		CurrentAmount: decimal.RequireFromString("55"),
	}}
	suite.mockService.On("ListAssets", mock.Anything).Return(assets, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/assets", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Fund", resp[0].Name)
}

func (suite *AssetHandlerTestSuite) TestDeleteDailyRecord_InvalidDate() {
	w := suite.performRequest(http.MethodDelete, "/api/v1/daily-records/garbage/"+uuid.NewString(), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestAssetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}
