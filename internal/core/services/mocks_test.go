package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// MockDocumentStore is a mock type for the DocumentStore interface
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Load(ctx context.Context) domain.Document {
	args := m.Called(ctx)
	return args.Get(0).(domain.Document)
}

func (m *MockDocumentStore) Save(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// MockRemoteStore is a mock type for the RemoteStore interface
type MockRemoteStore struct {
	mock.Mock
}

func (m *MockRemoteStore) Download(ctx context.Context, cfg domain.SyncConfig) (*domain.Document, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockRemoteStore) Upload(ctx context.Context, cfg domain.SyncConfig, doc domain.Document) error {
	args := m.Called(ctx, cfg, doc)
	return args.Error(0)
}
