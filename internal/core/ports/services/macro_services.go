package services

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// MacroSvcFacade covers the macro indicator curve (one value per date).
type MacroSvcFacade interface {
	// UpsertMacroRecord records a value for a date, replacing any earlier
	// record for the same date.
	UpsertMacroRecord(ctx context.Context, req dto.UpsertMacroRecordRequest) (*domain.MacroRecord, error)
	DeleteMacroRecord(ctx context.Context, date domain.Date) error
	ListMacroRecords(ctx context.Context) ([]domain.MacroRecord, error)
}
