package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// AssetTypeSlice is one wedge of the asset allocation breakdown.
type AssetTypeSlice struct {
	Type  domain.AssetType `json:"type"`
	Value decimal.Decimal  `json:"value"`
}

// DashboardSummary is the aggregate view behind the dashboard screen and the
// home-screen widgets.
type DashboardSummary struct {
	TotalCurrentValue decimal.Decimal  `json:"totalCurrentValue"`
	TotalInitialValue decimal.Decimal  `json:"totalInitialValue"`
	TotalProfit       decimal.Decimal  `json:"totalProfit"`
	TodayProfitLoss   decimal.Decimal  `json:"todayProfitLoss"`
	MonthBudget       decimal.Decimal  `json:"monthBudget"`
	MonthConsumption  decimal.Decimal  `json:"monthConsumption"`
	MonthRemaining    decimal.Decimal  `json:"monthRemaining"`
	TypeBreakdown     []AssetTypeSlice `json:"typeBreakdown"`
}

// NetWorthPoint is one day's total recorded balance across all assets.
type NetWorthPoint struct {
	Date  domain.Date     `json:"date"`
	Value decimal.Decimal `json:"value"`
}
