package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

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

type PortfolioServiceTestSuite struct {
	suite.Suite
	container *state.Container
	mockStore *MockDocumentStore
	service   portssvc.PortfolioSvcFacade
}

func (suite *PortfolioServiceTestSuite) SetupTest() {
	suite.container = state.NewContainer(domain.NewDocument())
	suite.mockStore = new(MockDocumentStore)
	suite.mockStore.On("Save", mock.Anything, mock.Anything).Return(nil)
	suite.service = services.NewPortfolioService(suite.container, suite.mockStore)
}

func (suite *PortfolioServiceTestSuite) createAsset(name string, initial string) *domain.Asset {
	asset, err := suite.service.CreateAsset(context.Background(), dto.CreateAssetRequest{
		Name:          name,
		Type:          domain.AssetStock,
		InitialAmount: decimal.RequireFromString(initial),
	})
	suite.Require().NoError(err)
	return asset
}

// gatedStore records every saved document in call order and blocks its
// first Save until the gate channel is closed.
type gatedStore struct {
	mu      sync.Mutex
	saved   []domain.Document
	entered chan struct{}
	gate    chan struct{}
	first   sync.Once
}

func newGatedStore() *gatedStore {
	return &gatedStore{entered: make(chan struct{}), gate: make(chan struct{})}
}

func (s *gatedStore) Load(ctx context.Context) domain.Document { return domain.NewDocument() }

func (s *gatedStore) Save(ctx context.Context, doc domain.Document) error {
	s.first.Do(func() {
		close(s.entered)
		<-s.gate
	})
	s.mu.Lock()
	s.saved = append(s.saved, doc.Clone())
	s.mu.Unlock()
	return nil
}

func (s *gatedStore) snapshot() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Document(nil), s.saved...)
}

// --- Test Cases ---

func (suite *PortfolioServiceTestSuite) TestCreateAsset_Success() {
	asset := suite.createAsset("Brokerage", "1000.50")

	suite.NotEmpty(asset.AssetID)
	suite.True(asset.CurrentAmount.Equal(asset.InitialAmount))

	doc := suite.container.Snapshot()
	suite.Require().Len(doc.Assets, 1)
	suite.Equal(asset.AssetID, doc.Assets[0].AssetID)
	suite.mockStore.AssertNumberOfCalls(suite.T(), "Save", 1)
}

func (suite *PortfolioServiceTestSuite) TestUpdateAsset_PartialFields() {
	asset := suite.createAsset("Brokerage", "1000")

	newName := "Brokerage (IBKR)"
	updated, err := suite.service.UpdateAsset(context.Background(), asset.AssetID, dto.UpdateAssetRequest{
		Name: &newName,
	})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	// Untouched fields keep their values.
	suite.Equal(domain.AssetStock, updated.Type)
	suite.True(updated.CurrentAmount.Equal(decimal.RequireFromString("1000")))
}

func (suite *PortfolioServiceTestSuite) TestUpdateAsset_NotFound() {
	name := "nope"
	_, err := suite.service.UpdateAsset(context.Background(), "missing-id", dto.UpdateAssetRequest{Name: &name})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PortfolioServiceTestSuite) TestRecordDailyReview_AdvancesCurrentAmount() {
	asset := suite.createAsset("Fund", "100")

	record, err := suite.service.RecordDailyReview(context.Background(), asset.AssetID, dto.DailyReviewRequest{
		ProfitLoss: decimal.RequireFromString("12.5"),
		Date:       "2024-03-01",
	})

	suite.Require().NoError(err)
	suite.True(record.Balance.Equal(decimal.RequireFromString("112.5")))

	doc := suite.container.Snapshot()
	suite.True(doc.Assets[0].CurrentAmount.Equal(decimal.RequireFromString("112.5")))
	suite.Require().Len(doc.DailyRecords, 1)
}

func (suite *PortfolioServiceTestSuite) TestRecordDailyReview_SameDayReplacesRecord() {
	asset := suite.createAsset("Fund", "100")
	ctx := context.Background()

	_, err := suite.service.RecordDailyReview(ctx, asset.AssetID, dto.DailyReviewRequest{
		ProfitLoss: decimal.RequireFromString("10"),
		Date:       "2024-03-01",
	})
	suite.Require().NoError(err)

	record, err := suite.service.RecordDailyReview(ctx, asset.AssetID, dto.DailyReviewRequest{
		ProfitLoss: decimal.RequireFromString("-5"),
		Date:       "2024-03-01",
	})
	suite.Require().NoError(err)

	// The second booking still moves the running amount; only the record for
	// the day is replaced.
	doc := suite.container.Snapshot()
	suite.Require().Len(doc.DailyRecords, 1)
	suite.True(doc.DailyRecords[0].ProfitLoss.Equal(decimal.RequireFromString("-5")))
	suite.True(record.Balance.Equal(decimal.RequireFromString("105")))
	suite.True(doc.Assets[0].CurrentAmount.Equal(decimal.RequireFromString("105")))
}

func (suite *PortfolioServiceTestSuite) TestRecordDailyReview_AssetNotFound() {
	_, err := suite.service.RecordDailyReview(context.Background(), "missing-id", dto.DailyReviewRequest{
		ProfitLoss: decimal.RequireFromString("1"),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PortfolioServiceTestSuite) TestDeleteAsset_CascadesDailyRecords() {
	keep := suite.createAsset("Keep", "100")
	drop := suite.createAsset("Drop", "200")
	ctx := context.Background()

	for _, id := range []string{keep.AssetID, drop.AssetID} {
		_, err := suite.service.RecordDailyReview(ctx, id, dto.DailyReviewRequest{
			ProfitLoss: decimal.RequireFromString("1"),
			Date:       "2024-03-01",
		})
		suite.Require().NoError(err)
	}

	suite.Require().NoError(suite.service.DeleteAsset(ctx, drop.AssetID))

	doc := suite.container.Snapshot()
	suite.Require().Len(doc.Assets, 1)
	suite.Equal(keep.AssetID, doc.Assets[0].AssetID)
	suite.Require().Len(doc.DailyRecords, 1)
	suite.Equal(keep.AssetID, doc.DailyRecords[0].AssetID)
}

func (suite *PortfolioServiceTestSuite) TestDeleteDailyRecord_NotFound() {
	err := suite.service.DeleteDailyRecord(context.Background(), domain.NewDate(2024, time.March, 1), "missing-id")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PortfolioServiceTestSuite) TestCreateAsset_ConcurrentSavesKeepCommitOrder() {
	store := newGatedStore()
	service := services.NewPortfolioService(suite.container, store)
	ctx := context.Background()

	var firstErr, secondErr error
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, firstErr = service.CreateAsset(ctx, dto.CreateAssetRequest{
			Name: "first", Type: domain.AssetCash, InitialAmount: decimal.RequireFromString("1"),
		})
	}()
	<-store.entered

	// The first writer is stalled inside Save; a second commit must queue
	// behind it instead of reaching the store first.
	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		_, secondErr = service.CreateAsset(ctx, dto.CreateAssetRequest{
			Name: "second", Type: domain.AssetCash, InitialAmount: decimal.RequireFromString("2"),
		})
	}()

	time.Sleep(20 * time.Millisecond)
	suite.Empty(store.snapshot())

	close(store.gate)
	<-firstDone
	<-secondDone
	suite.Require().NoError(firstErr)
	suite.Require().NoError(secondErr)

	// Documents reach storage in commit order: the last save holds both
	// assets, never just the first one.
	saved := store.snapshot()
	suite.Require().Len(saved, 2)
	suite.Len(saved[0].Assets, 1)
	suite.Len(saved[1].Assets, 2)
}

func (suite *PortfolioServiceTestSuite) TestUpdateAsset_RejectedChangeHasNoEffects() {
	updates, cancel := suite.container.Subscribe(4)
	defer cancel()

	name := "nope"
	_, err := suite.service.UpdateAsset(context.Background(), "missing-id", dto.UpdateAssetRequest{Name: &name})
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)

	// A rejected command installs nothing, saves nothing and stays invisible
	// to subscribers.
	suite.mockStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
	select {
	case <-updates:
		suite.FailNow("subscribers must not observe a rejected change")
	default:
	}
}

func TestPortfolioServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PortfolioServiceTestSuite))
}
