package domain

import (
	"github.com/shopspring/decimal"
)

// DailyRecord captures one asset's profit/loss for one day, together with the
// balance the asset ended the day at. Unique per (date, assetId); recording
// again for the same pair replaces the earlier entry.
type DailyRecord struct {
	Date       Date            `json:"date"`
	AssetID    string          `json:"assetId"`
	ProfitLoss decimal.Decimal `json:"profitLoss"`
	Balance    decimal.Decimal `json:"balance"`
}

// Key returns the composite dedup key for the record.
func (r DailyRecord) Key() string {
	return r.Date.String() + "_" + r.AssetID
}

// MacroRecord is a dated free-form indicator value (e.g. a market index
// level). Unique per date; recording again for the same date replaces.
type MacroRecord struct {
	Date  Date            `json:"date"`
	Value decimal.Decimal `json:"value"`
	Note  string          `json:"note,omitempty"`
}
