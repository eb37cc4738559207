package services

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// ReportingSvcFacade produces the read-only aggregates behind the dashboard
// and the chart screens.
type ReportingSvcFacade interface {
	DashboardSummary(ctx context.Context) (*dto.DashboardSummary, error)
	// NetWorthSeries returns one point per reviewed date: the sum of the
	// recorded balances across assets for that day.
	NetWorthSeries(ctx context.Context) ([]dto.NetWorthPoint, error)
	MacroCurve(ctx context.Context) ([]domain.MacroRecord, error)
}
