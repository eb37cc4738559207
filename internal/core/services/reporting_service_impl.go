package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// reportingServiceImpl implements the ReportingSvcFacade interface. It is
// read-only: every aggregate is computed from a container snapshot.
type reportingServiceImpl struct {
	BaseService
	container *state.Container
	today     func() domain.Date
}

// NewReportingService creates the reporting service over the shared state
// container.
func NewReportingService(container *state.Container) portssvc.ReportingSvcFacade {
	return &reportingServiceImpl{container: container, today: domain.Today}
}

var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

func (s *reportingServiceImpl) DashboardSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	doc := s.container.Snapshot()
	today := s.today()
	month := today.YearMonth()

	summary := &dto.DashboardSummary{
		TotalCurrentValue: decimal.Zero,
		TotalInitialValue: decimal.Zero,
		TotalProfit:       decimal.Zero,
		TodayProfitLoss:   decimal.Zero,
		MonthBudget:       decimal.Zero,
		MonthConsumption:  decimal.Zero,
		MonthRemaining:    decimal.Zero,
	}

	byType := map[domain.AssetType]decimal.Decimal{}
	for _, a := range doc.Assets {
		summary.TotalCurrentValue = summary.TotalCurrentValue.Add(a.CurrentAmount)
		summary.TotalInitialValue = summary.TotalInitialValue.Add(a.InitialAmount)
		byType[a.Type] = byType[a.Type].Add(a.CurrentAmount)
	}
	summary.TotalProfit = summary.TotalCurrentValue.Sub(summary.TotalInitialValue)

	for _, r := range doc.DailyRecords {
		if r.Date == today {
			summary.TodayProfitLoss = summary.TodayProfitLoss.Add(r.ProfitLoss)
		}
	}

	if budget, ok := doc.MonthlyBudgets[month]; ok {
		summary.MonthBudget = budget
	}
	for _, t := range doc.Transactions {
		if t.Type == domain.TxnConsumption && t.Date.YearMonth() == month {
			summary.MonthConsumption = summary.MonthConsumption.Add(t.Amount)
		}
	}
	summary.MonthRemaining = summary.MonthBudget.Sub(summary.MonthConsumption)

	// Stable wedge order: the declared asset type order.
	for _, assetType := range domain.AssetTypes {
		if value, ok := byType[assetType]; ok {
			summary.TypeBreakdown = append(summary.TypeBreakdown, dto.AssetTypeSlice{
				Type:  assetType,
				Value: value,
			})
		}
	}

	return summary, nil
}

// NetWorthSeries sums the recorded balances per review date, ascending.
func (s *reportingServiceImpl) NetWorthSeries(ctx context.Context) ([]dto.NetWorthPoint, error) {
	doc := s.container.Snapshot()

	totals := map[domain.Date]decimal.Decimal{}
	for _, r := range doc.DailyRecords {
		totals[r.Date] = totals[r.Date].Add(r.Balance)
	}

	series := make([]dto.NetWorthPoint, 0, len(totals))
	for d, v := range totals {
		series = append(series, dto.NetWorthPoint{Date: d, Value: v})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series, nil
}

func (s *reportingServiceImpl) MacroCurve(ctx context.Context) ([]domain.MacroRecord, error) {
	doc := s.container.Snapshot()
	records := append([]domain.MacroRecord(nil), doc.MacroRecords...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}
