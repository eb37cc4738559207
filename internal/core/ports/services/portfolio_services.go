package services

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// PortfolioSvcFacade covers assets and the daily review ledger built on them.
type PortfolioSvcFacade interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)
	// DeleteAsset removes the asset and cascades to its daily records.
	DeleteAsset(ctx context.Context, assetID string) error
	ListAssets(ctx context.Context) ([]domain.Asset, error)

	// RecordDailyReview books a profit/loss delta against an asset for one
	// day, replacing any record already present for that (date, asset) pair
	// and advancing the asset's current amount.
	RecordDailyReview(ctx context.Context, assetID string, req dto.DailyReviewRequest) (*domain.DailyRecord, error)
	DeleteDailyRecord(ctx context.Context, date domain.Date, assetID string) error
	ListDailyRecords(ctx context.Context) ([]domain.DailyRecord, error)
}
