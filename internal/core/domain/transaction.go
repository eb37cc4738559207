package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income from the two expense flavours.
type TransactionType string

const (
	TxnIncome TransactionType = "INCOME"
	// TxnExpense is a plain expense such as a transfer or adjustment.
	TxnExpense TransactionType = "EXPENSE"
	// TxnConsumption is a fixed loss; it is what counts against the
	// monthly budget.
	TxnConsumption TransactionType = "CONSUMPTION"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []TransactionType{TxnIncome, TxnExpense, TxnConsumption}

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Transaction is a single income or expense entry.
type Transaction struct {
	TransactionID string          `json:"id"` // Primary key (UUID)
	Date          Date            `json:"date"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"` // e.g. "Salary", "Food", "Rent"
	Note          string          `json:"note,omitempty"`
}
