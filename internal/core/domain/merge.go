package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MergeDocuments reconciles a local and a remote document into one. It is
// pure and total: neither input is mutated and no error outcome exists.
//
// Precedence is explicit rather than an artifact of concatenation order:
// every keyed collection is a union in which the LOCAL entry survives a key
// collision, except monthly budgets where the REMOTE value overwrites the
// local one. All non-collection fields are taken from local.
func MergeDocuments(local, remote Document) Document {
	merged := local.Clone()
	merged.Assets = mergeAssets(local.Assets, remote.Assets)
	merged.DailyRecords = mergeDailyRecords(local.DailyRecords, remote.DailyRecords)
	merged.Transactions = mergeTransactions(local.Transactions, remote.Transactions)
	merged.MacroRecords = mergeMacroRecords(local.MacroRecords, remote.MacroRecords)
	merged.MonthlyBudgets = mergeBudgets(local.MonthlyBudgets, remote.MonthlyBudgets)
	return merged
}

// mergeAssets unions by asset ID, keeping local's copy on collision.
// Order: local assets first, then remote-only assets in their own order.
func mergeAssets(local, remote []Asset) []Asset {
	merged := make([]Asset, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))
	for _, a := range local {
		if _, ok := seen[a.AssetID]; ok {
			continue
		}
		seen[a.AssetID] = struct{}{}
		merged = append(merged, a)
	}
	for _, a := range remote {
		if _, ok := seen[a.AssetID]; ok {
			continue
		}
		seen[a.AssetID] = struct{}{}
		merged = append(merged, a)
	}
	return merged
}

// mergeDailyRecords unions by (date, assetId), local wins, sorted ascending
// by date. The stable sort keeps local-before-remote order within one day.
func mergeDailyRecords(local, remote []DailyRecord) []DailyRecord {
	merged := make([]DailyRecord, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))
	for _, r := range append(append([]DailyRecord{}, local...), remote...) {
		if _, ok := seen[r.Key()]; ok {
			continue
		}
		seen[r.Key()] = struct{}{}
		merged = append(merged, r)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

// mergeTransactions unions by transaction ID, local wins, sorted ascending
// by date.
func mergeTransactions(local, remote []Transaction) []Transaction {
	merged := make([]Transaction, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))
	for _, t := range append(append([]Transaction{}, local...), remote...) {
		if _, ok := seen[t.TransactionID]; ok {
			continue
		}
		seen[t.TransactionID] = struct{}{}
		merged = append(merged, t)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

// mergeMacroRecords unions by date, local wins, sorted ascending by date.
func mergeMacroRecords(local, remote []MacroRecord) []MacroRecord {
	merged := make([]MacroRecord, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))
	for _, r := range append(append([]MacroRecord{}, local...), remote...) {
		key := r.Date.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, r)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

// mergeBudgets is the one collection where remote takes precedence: a
// key-wise union with the remote operand overwriting overlapping months.
// Downstream behavior depends on this asymmetry; do not "fix" it.
func mergeBudgets(local, remote map[string]decimal.Decimal) map[string]decimal.Decimal {
	merged := make(map[string]decimal.Decimal, len(local)+len(remote))
	for k, v := range local {
		merged[k] = v
	}
	for k, v := range remote {
		merged[k] = v
	}
	return merged
}
