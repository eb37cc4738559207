package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	"github.com/wfbarn/wfbarn_app/internal/core/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
)

// recordingListener captures sync config change notifications.
type recordingListener struct {
	previous []domain.SyncConfig
	current  []domain.SyncConfig
}

func (l *recordingListener) SyncConfigUpdated(previous, current domain.SyncConfig) {
	l.previous = append(l.previous, previous)
	l.current = append(l.current, current)
}

// --- Test Suite Setup ---

type SettingsServiceTestSuite struct {
	suite.Suite
	container *state.Container
	listener  *recordingListener
	service   *services.SettingsService
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.container = state.NewContainer(domain.NewDocument())
	store := new(MockDocumentStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	suite.listener = &recordingListener{}
	suite.service = services.NewSettingsService(suite.container, store)
	suite.service.SetSyncConfigListener(suite.listener)
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestToggleDarkMode_FlipsAndPersists() {
	ctx := context.Background()

	dark, err := suite.service.ToggleDarkMode(ctx)
	suite.Require().NoError(err)
	suite.True(dark)
	suite.True(suite.container.Snapshot().IsDarkMode)

	dark, err = suite.service.ToggleDarkMode(ctx)
	suite.Require().NoError(err)
	suite.False(dark)
}

func (suite *SettingsServiceTestSuite) TestUpdateSyncConfig_PartialFields() {
	ctx := context.Background()

	url := "https://dav.example.com"
	user := "alice"
	_, err := suite.service.UpdateSyncConfig(ctx, domain.SyncConfigUpdate{
		BaseURL:  &url,
		Username: &user,
	})
	suite.Require().NoError(err)

	// A later partial update must not clobber the fields it omits.
	enabled := true
	cfg, err := suite.service.UpdateSyncConfig(ctx, domain.SyncConfigUpdate{
		AutoSyncEnabled: &enabled,
	})
	suite.Require().NoError(err)

	suite.Equal(url, cfg.BaseURL)
	suite.Equal(user, cfg.Username)
	suite.True(cfg.AutoSyncEnabled)
}

func (suite *SettingsServiceTestSuite) TestUpdateSyncConfig_NotifiesListener() {
	ctx := context.Background()

	enabled := true
	_, err := suite.service.UpdateSyncConfig(ctx, domain.SyncConfigUpdate{
		AutoSyncEnabled: &enabled,
	})
	suite.Require().NoError(err)

	suite.Require().Len(suite.listener.current, 1)
	suite.False(suite.listener.previous[0].AutoSyncEnabled)
	suite.True(suite.listener.current[0].AutoSyncEnabled)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
