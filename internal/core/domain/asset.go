package domain

import (
	"github.com/shopspring/decimal"
)

// AssetType classifies an asset for grouping and reporting.
type AssetType string

const (
	AssetStock           AssetType = "STOCK"
	AssetFund            AssetType = "FUND"
	AssetCash            AssetType = "CASH"
	AssetMoneyFund       AssetType = "MONEY_FUND"
	AssetCrypto          AssetType = "CRYPTO"
	AssetBond            AssetType = "BOND"
	AssetConvertibleBond AssetType = "CONVERTIBLE_BOND"
)

// AssetTypes lists every valid asset type.
var AssetTypes = []AssetType{
	AssetStock,
	AssetFund,
	AssetCash,
	AssetMoneyFund,
	AssetCrypto,
	AssetBond,
	AssetConvertibleBond,
}

// IsValid reports whether t is a known asset type.
func (t AssetType) IsValid() bool {
	for _, known := range AssetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Asset is a tracked holding. CurrentAmount is advanced imperatively by the
// daily review command; it is the initial amount plus all recorded
// profit/loss deltas, not recomputed from the ledger.
type Asset struct {
	AssetID       string          `json:"id"` // Primary key (UUID)
	Name          string          `json:"name"`
	Type          AssetType       `json:"type"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Note          string          `json:"note,omitempty"`
}
