package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// CreateAssetRequest defines the data needed to register a new asset.
type CreateAssetRequest struct {
	Name          string           `json:"name" binding:"required"`
	Type          domain.AssetType `json:"type" binding:"required,assettype"`
	InitialAmount decimal.Decimal  `json:"initialAmount"`
	Note          string           `json:"note"` // Optional
}

// UpdateAssetRequest defines the data allowed for updating an asset.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAssetRequest struct {
	Name          *string           `json:"name"`
	Type          *domain.AssetType `json:"type" binding:"omitempty,assettype"`
	CurrentAmount *decimal.Decimal  `json:"currentAmount"`
	Note          *string           `json:"note"`
}

// DailyReviewRequest books one day's profit/loss against an asset.
// Date defaults to today when omitted.
type DailyReviewRequest struct {
	ProfitLoss decimal.Decimal `json:"profitLoss"`
	Date       string          `json:"date" binding:"omitempty,dateonly"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID       string           `json:"id"`
	Name          string           `json:"name"`
	Type          domain.AssetType `json:"type"`
	InitialAmount decimal.Decimal  `json:"initialAmount"`
	CurrentAmount decimal.Decimal  `json:"currentAmount"`
	Note          string           `json:"note,omitempty"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:       a.AssetID,
		Name:          a.Name,
		Type:          a.Type,
		InitialAmount: a.InitialAmount,
		CurrentAmount: a.CurrentAmount,
		Note:          a.Note,
	}
}

// ToListAssetResponse converts a slice of domain.Asset to response DTOs.
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

// DailyRecordResponse defines the data returned for a daily review record.
type DailyRecordResponse struct {
	Date       domain.Date     `json:"date"`
	AssetID    string          `json:"assetId"`
	ProfitLoss decimal.Decimal `json:"profitLoss"`
	Balance    decimal.Decimal `json:"balance"`
}

// ToDailyRecordResponse converts a domain.DailyRecord to its response DTO.
func ToDailyRecordResponse(r *domain.DailyRecord) DailyRecordResponse {
	return DailyRecordResponse{
		Date:       r.Date,
		AssetID:    r.AssetID,
		ProfitLoss: r.ProfitLoss,
		Balance:    r.Balance,
	}
}

// ToListDailyRecordResponse converts daily records to response DTOs.
func ToListDailyRecordResponse(records []domain.DailyRecord) []DailyRecordResponse {
	res := make([]DailyRecordResponse, len(records))
	for i := range records {
		res[i] = ToDailyRecordResponse(&records[i])
	}
	return res
}
