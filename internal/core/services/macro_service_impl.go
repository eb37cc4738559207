package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wfbarn/wfbarn_app/internal/apperrors"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// macroServiceImpl implements the MacroSvcFacade interface
type macroServiceImpl struct {
	BaseService
	documentCommitter
}

// NewMacroService creates the macro record service over the shared state
// container and local store.
func NewMacroService(container *state.Container, store portsrepo.DocumentStore) portssvc.MacroSvcFacade {
	return &macroServiceImpl{
		documentCommitter: documentCommitter{container: container, store: store},
	}
}

var _ portssvc.MacroSvcFacade = (*macroServiceImpl)(nil)

func (s *macroServiceImpl) UpsertMacroRecord(ctx context.Context, req dto.UpsertMacroRecordRequest) (*domain.MacroRecord, error) {
	recordDate := domain.Today()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
		}
		recordDate = parsed
	}

	record := domain.MacroRecord{Date: recordDate, Value: req.Value, Note: req.Note}

	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		records := doc.MacroRecords[:0]
		for _, r := range doc.MacroRecords {
			if r.Date != recordDate {
				records = append(records, r)
			}
		}
		doc.MacroRecords = append(records, record)
		return doc, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist macro record", slog.String("date", recordDate.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Macro record upserted", slog.String("date", recordDate.String()))
	return &record, nil
}

func (s *macroServiceImpl) DeleteMacroRecord(ctx context.Context, date domain.Date) error {
	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		found := false
		records := doc.MacroRecords[:0]
		for _, r := range doc.MacroRecords {
			if r.Date == date {
				found = true
				continue
			}
			records = append(records, r)
		}
		if !found {
			return doc, fmt.Errorf("macro record %s: %w", date, apperrors.ErrNotFound)
		}
		doc.MacroRecords = records
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to persist macro record deletion", slog.String("date", date.String()))
		}
		return err
	}
	return nil
}

func (s *macroServiceImpl) ListMacroRecords(ctx context.Context) ([]domain.MacroRecord, error) {
	return s.snapshot().MacroRecords, nil
}
