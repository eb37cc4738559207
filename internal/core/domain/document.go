package domain

import (
	"github.com/shopspring/decimal"
)

// Document is the complete synchronized snapshot: every collection the
// application tracks plus the sync configuration and display preference.
// It is the unit of local persistence and of remote upload/download.
type Document struct {
	Assets         []Asset                    `json:"assets"`
	DailyRecords   []DailyRecord              `json:"dailyRecords"`
	Transactions   []Transaction              `json:"transactions"`
	MacroRecords   []MacroRecord              `json:"macroRecords"`
	MonthlyBudgets map[string]decimal.Decimal `json:"monthlyBudgets"` // key: "YYYY-MM"
	SyncConfig     SyncConfig                 `json:"syncConfig"`
	IsDarkMode     bool                       `json:"isDarkMode"`
}

// NewDocument returns the default empty document used on first load and as
// the recovery value for unreadable storage.
func NewDocument() Document {
	return Document{
		Assets:         []Asset{},
		DailyRecords:   []DailyRecord{},
		Transactions:   []Transaction{},
		MacroRecords:   []MacroRecord{},
		MonthlyBudgets: map[string]decimal.Decimal{},
	}
}

// Clone returns a deep copy of the document. Collections are copied so the
// clone can be mutated without aliasing the original.
func (d Document) Clone() Document {
	out := d
	out.Assets = append([]Asset(nil), d.Assets...)
	out.DailyRecords = append([]DailyRecord(nil), d.DailyRecords...)
	out.Transactions = append([]Transaction(nil), d.Transactions...)
	out.MacroRecords = append([]MacroRecord(nil), d.MacroRecords...)
	out.MonthlyBudgets = make(map[string]decimal.Decimal, len(d.MonthlyBudgets))
	for k, v := range d.MonthlyBudgets {
		out.MonthlyBudgets[k] = v
	}
	return out
}

// Normalize replaces nil collections with empty ones. Documents decoded from
// JSON written by other clients may omit empty fields entirely.
func (d Document) Normalize() Document {
	if d.Assets == nil {
		d.Assets = []Asset{}
	}
	if d.DailyRecords == nil {
		d.DailyRecords = []DailyRecord{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.MacroRecords == nil {
		d.MacroRecords = []MacroRecord{}
	}
	if d.MonthlyBudgets == nil {
		d.MonthlyBudgets = map[string]decimal.Decimal{}
	}
	return d
}

// FindAsset returns the asset with the given ID, or nil.
func (d Document) FindAsset(assetID string) *Asset {
	for i := range d.Assets {
		if d.Assets[i].AssetID == assetID {
			return &d.Assets[i]
		}
	}
	return nil
}

// FindTransaction returns the transaction with the given ID, or nil.
func (d Document) FindTransaction(transactionID string) *Transaction {
	for i := range d.Transactions {
		if d.Transactions[i].TransactionID == transactionID {
			return &d.Transactions[i]
		}
	}
	return nil
}
