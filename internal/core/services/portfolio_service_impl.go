package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wfbarn/wfbarn_app/internal/apperrors"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// portfolioServiceImpl implements the PortfolioSvcFacade interface
type portfolioServiceImpl struct {
	BaseService
	documentCommitter
}

// NewPortfolioService creates the portfolio service over the shared state
// container and local store.
func NewPortfolioService(container *state.Container, store portsrepo.DocumentStore) portssvc.PortfolioSvcFacade {
	return &portfolioServiceImpl{
		documentCommitter: documentCommitter{container: container, store: store},
	}
}

// Ensure portfolioServiceImpl implements the PortfolioSvcFacade interface
var _ portssvc.PortfolioSvcFacade = (*portfolioServiceImpl)(nil)

func (s *portfolioServiceImpl) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	asset := domain.Asset{
		AssetID:       uuid.NewString(),
		Name:          req.Name,
		Type:          req.Type,
		InitialAmount: req.InitialAmount,
		CurrentAmount: req.InitialAmount,
		Note:          req.Note,
	}

	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		doc.Assets = append(doc.Assets, asset)
		return doc, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist new asset", slog.String("asset_id", asset.AssetID))
		return nil, err
	}

	s.LogInfo(ctx, "Asset created successfully",
		slog.String("asset_id", asset.AssetID),
		slog.String("asset_type", string(asset.Type)))
	return &asset, nil
}

func (s *portfolioServiceImpl) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	var updated domain.Asset

	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		target := doc.FindAsset(assetID)
		if target == nil {
			return doc, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
		}
		if req.Name != nil {
			target.Name = *req.Name
		}
		if req.Type != nil {
			target.Type = *req.Type
		}
		if req.CurrentAmount != nil {
			target.CurrentAmount = *req.CurrentAmount
		}
		if req.Note != nil {
			target.Note = *req.Note
		}
		updated = *target
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to persist asset update", slog.String("asset_id", assetID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Asset updated successfully", slog.String("asset_id", assetID))
	return &updated, nil
}

// DeleteAsset removes the asset and every daily record booked against it.
func (s *portfolioServiceImpl) DeleteAsset(ctx context.Context, assetID string) error {
	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		if doc.FindAsset(assetID) == nil {
			return doc, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
		}
		assets := doc.Assets[:0]
		for _, a := range doc.Assets {
			if a.AssetID != assetID {
				assets = append(assets, a)
			}
		}
		doc.Assets = assets

		records := doc.DailyRecords[:0]
		for _, r := range doc.DailyRecords {
			if r.AssetID != assetID {
				records = append(records, r)
			}
		}
		doc.DailyRecords = records
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to persist asset deletion", slog.String("asset_id", assetID))
		}
		return err
	}

	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID))
	return nil
}

func (s *portfolioServiceImpl) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.snapshot().Assets, nil
}

// RecordDailyReview books the day's profit/loss against the asset: the
// asset's current amount advances by the delta and the (date, asset) record
// is replaced if one already exists. The new record's balance equals the
// asset's new current amount.
func (s *portfolioServiceImpl) RecordDailyReview(ctx context.Context, assetID string, req dto.DailyReviewRequest) (*domain.DailyRecord, error) {
	reviewDate := domain.Today()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
		}
		reviewDate = parsed
	}

	var record domain.DailyRecord

	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		asset := doc.FindAsset(assetID)
		if asset == nil {
			return doc, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
		}

		newBalance := asset.CurrentAmount.Add(req.ProfitLoss)
		asset.CurrentAmount = newBalance
		record = domain.DailyRecord{
			Date:       reviewDate,
			AssetID:    assetID,
			ProfitLoss: req.ProfitLoss,
			Balance:    newBalance,
		}

		records := doc.DailyRecords[:0]
		for _, r := range doc.DailyRecords {
			if !(r.Date == reviewDate && r.AssetID == assetID) {
				records = append(records, r)
			}
		}
		doc.DailyRecords = append(records, record)
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to persist daily review",
				slog.String("asset_id", assetID), slog.String("date", reviewDate.String()))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Daily review recorded",
		slog.String("asset_id", assetID),
		slog.String("date", reviewDate.String()))
	return &record, nil
}

func (s *portfolioServiceImpl) DeleteDailyRecord(ctx context.Context, date domain.Date, assetID string) error {
	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		found := false
		records := doc.DailyRecords[:0]
		for _, r := range doc.DailyRecords {
			if r.Date == date && r.AssetID == assetID {
				found = true
				continue
			}
			records = append(records, r)
		}
		if !found {
			return doc, fmt.Errorf("daily record %s/%s: %w", date, assetID, apperrors.ErrNotFound)
		}
		doc.DailyRecords = records
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to persist daily record deletion",
				slog.String("asset_id", assetID), slog.String("date", date.String()))
		}
		return err
	}
	return nil
}

func (s *portfolioServiceImpl) ListDailyRecords(ctx context.Context) ([]domain.DailyRecord, error) {
	return s.snapshot().DailyRecords, nil
}
