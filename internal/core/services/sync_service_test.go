package services_test

import (
	"context"
	"fmt"
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
)

// --- Test Suite Setup ---

type SyncServiceTestSuite struct {
	suite.Suite
	container  *state.Container
	mockStore  *MockDocumentStore
	mockRemote *MockRemoteStore
	service    portssvc.SyncSvcFacade
}

func (suite *SyncServiceTestSuite) SetupTest() {
	doc := domain.NewDocument()
	doc.SyncConfig = domain.SyncConfig{
		BaseURL:  "https://dav.example.com",
		SubPath:  "/wfbarn",
		Username: "alice",
		Password: "secret",
	}
	doc.Assets = []domain.Asset{{
		AssetID:       "asset-local",
		Name:          "Local Cash",
		Type:          domain.AssetCash,
		InitialAmount: decimal.RequireFromString("100"),
		CurrentAmount: decimal.RequireFromString("100"),
	}}

	suite.container = state.NewContainer(doc)
	suite.mockStore = new(MockDocumentStore)
	suite.mockRemote = new(MockRemoteStore)
	suite.service = services.NewSyncService(suite.container, suite.mockStore, suite.mockRemote,
		services.WithResetDelay(30*time.Millisecond),
		services.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
	)
}

// waitForStage blocks until the observer channel delivers the wanted stage.
func (suite *SyncServiceTestSuite) waitForStage(ch <-chan domain.SyncStatus, want domain.SyncStage) domain.SyncStatus {
	deadline := time.After(2 * time.Second)
	for {
		select {
		case status := <-ch:
			if status.Stage == want {
				return status
			}
		case <-deadline:
			suite.FailNow(fmt.Sprintf("timed out waiting for stage %s", want))
			return domain.SyncStatus{}
		}
	}
}

// --- Test Cases ---

func (suite *SyncServiceTestSuite) TestRequestSync_MergesAndCommits() {
	remote := domain.NewDocument()
	remote.Assets = []domain.Asset{{
		AssetID:       "asset-remote",
		Name:          "Remote Fund",
		Type:          domain.AssetFund,
		InitialAmount: decimal.RequireFromString("50"),
		CurrentAmount: decimal.RequireFromString("55"),
	}}

	suite.mockRemote.On("Download", mock.Anything, mock.Anything).Return(&remote, nil).Once()
	suite.mockRemote.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockStore.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	ch, cancel := suite.service.Subscribe(16)
	defer cancel()

	suite.True(suite.service.RequestSync())
	status := suite.waitForStage(ch, domain.SyncCompleted)

	suite.False(status.IsError)
	suite.Equal(int64(1700000000000), status.LastSyncTimestamp)

	doc := suite.container.Snapshot()
	suite.Len(doc.Assets, 2)
	suite.Equal(int64(1700000000000), doc.SyncConfig.LastSyncTimestamp)
	suite.mockRemote.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestRequestSync_BootstrapUploadsLocalUnchanged() {
	// Missing remote document: the local one is uploaded as-is and nothing
	// is committed locally.
	suite.mockRemote.On("Download", mock.Anything, mock.Anything).Return(nil, nil).Once()
	suite.mockRemote.On("Upload", mock.Anything, mock.Anything, mock.MatchedBy(func(doc domain.Document) bool {
		return len(doc.Assets) == 1 && doc.Assets[0].AssetID == "asset-local"
	})).Return(nil).Once()

	ch, cancel := suite.service.Subscribe(16)
	defer cancel()

	suite.True(suite.service.RequestSync())
	status := suite.waitForStage(ch, domain.SyncCompleted)

	suite.False(status.IsError)
	suite.Equal(int64(0), status.LastSyncTimestamp)
	suite.Equal(int64(0), suite.container.Snapshot().SyncConfig.LastSyncTimestamp)
	suite.mockStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
	suite.mockRemote.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestRequestSync_PullFailure() {
	suite.mockRemote.On("Download", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("bad credentials: %w", apperrors.ErrAuthFailed)).Once()

	ch, cancel := suite.service.Subscribe(16)
	defer cancel()

	suite.True(suite.service.RequestSync())
	status := suite.waitForStage(ch, domain.SyncFailed)

	suite.True(status.IsError)
	suite.Contains(status.Message, "bad credentials")
	suite.mockRemote.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
	suite.mockStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestRequestSync_PushFailureLeavesLocalUntouched() {
	remote := domain.NewDocument()
	suite.mockRemote.On("Download", mock.Anything, mock.Anything).Return(&remote, nil).Once()
	suite.mockRemote.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("gateway timeout: %w", apperrors.ErrTransport)).Once()

	ch, cancel := suite.service.Subscribe(16)
	defer cancel()

	suite.True(suite.service.RequestSync())
	status := suite.waitForStage(ch, domain.SyncFailed)

	suite.True(status.IsError)
	// The failed run must not commit: no save, no timestamp, same assets.
	doc := suite.container.Snapshot()
	suite.Equal(int64(0), doc.SyncConfig.LastSyncTimestamp)
	suite.Len(doc.Assets, 1)
	suite.mockStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestRequestSync_NotConfigured() {
	suite.container.Update(func(doc domain.Document) domain.Document {
		doc.SyncConfig = domain.SyncConfig{}
		return doc
	})

	ch, cancel := suite.service.Subscribe(16)
	defer cancel()

	suite.True(suite.service.RequestSync())
	status := suite.waitForStage(ch, domain.SyncFailed)

	suite.True(status.IsError)
	suite.mockRemote.AssertNotCalled(suite.T(), "Download", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestRequestSync_SingleFlight() {
	release := make(chan struct{})
	remote := domain.NewDocument()

	suite.mockRemote.On("Download", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&remote, nil).Once()
	suite.mockRemote.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockStore.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	ch, cancel := suite.service.Subscribe(16)
	defer cancel()

	suite.True(suite.service.RequestSync())
	// A second request while the first is still pulling is dropped.
	suite.False(suite.service.RequestSync())

	close(release)
	suite.waitForStage(ch, domain.SyncCompleted)
	suite.mockRemote.AssertNumberOfCalls(suite.T(), "Download", 1)
}

func (suite *SyncServiceTestSuite) TestStatus_ResetsToIdleAfterTerminal() {
	remote := domain.NewDocument()
	suite.mockRemote.On("Download", mock.Anything, mock.Anything).Return(&remote, nil).Once()
	suite.mockRemote.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockStore.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	ch, cancel := suite.service.Subscribe(16)
	defer cancel()

	suite.True(suite.service.RequestSync())
	suite.waitForStage(ch, domain.SyncCompleted)

	// After the reset delay the stage falls back to idle but the last-sync
	// timestamp survives.
	status := suite.waitForStage(ch, domain.SyncIdle)
	suite.False(status.IsError)
	suite.Equal(int64(1700000000000), status.LastSyncTimestamp)
}

func (suite *SyncServiceTestSuite) TestAutoSync_SchedulerHonorsToggle() {
	svc := services.NewSyncService(suite.container, suite.mockStore, suite.mockRemote,
		services.WithSyncInterval(20*time.Millisecond),
		services.WithResetDelay(10*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.StartAutoSync(ctx)
	defer svc.Stop()

	// Auto-sync is off in the seeded config: several ticks pass without a
	// run being started.
	time.Sleep(120 * time.Millisecond)
	suite.mockRemote.AssertNotCalled(suite.T(), "Download", mock.Anything, mock.Anything)

	// Empty remote, so a triggered run takes the bootstrap path and needs no
	// local save.
	suite.mockRemote.On("Download", mock.Anything, mock.Anything).Return(nil, nil)
	suite.mockRemote.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	ch, unsub := svc.Subscribe(16)
	defer unsub()

	var previous, current domain.SyncConfig
	suite.container.Update(func(doc domain.Document) domain.Document {
		previous = doc.SyncConfig
		doc.SyncConfig.AutoSyncEnabled = true
		current = doc.SyncConfig
		return doc
	})
	// The settings service forwards the flag flip; the countdown restarts
	// and the next tick triggers a run.
	svc.SyncConfigUpdated(previous, current)

	suite.waitForStage(ch, domain.SyncCompleted)
	suite.mockRemote.AssertCalled(suite.T(), "Download", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestStatus_SeededFromStoredTimestamp() {
	doc := domain.NewDocument()
	doc.SyncConfig = doc.SyncConfig.WithLastSync(1234)
	container := state.NewContainer(doc)
	svc := services.NewSyncService(container, suite.mockStore, suite.mockRemote)

	status := svc.Status()
	suite.Equal(domain.SyncIdle, status.Stage)
	suite.Equal(int64(1234), status.LastSyncTimestamp)
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}
