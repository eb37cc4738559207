package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
)

// syncServiceImpl implements the SyncSvcFacade interface. One sync run at a
// time; the atomic flag is the single-flight guard, the mutex guards the
// published status and its observers.
type syncServiceImpl struct {
	BaseService
	container *state.Container
	store     portsrepo.DocumentStore
	remote    portsrepo.RemoteStore

	interval   time.Duration
	resetDelay time.Duration
	now        func() time.Time

	running atomic.Bool

	mu         sync.Mutex
	status     domain.SyncStatus
	subs       map[int]chan domain.SyncStatus
	nextID     int
	resetTimer *time.Timer

	schedMu     sync.Mutex
	schedCancel context.CancelFunc
	restart     chan struct{}
}

// SyncOption configures the sync service.
type SyncOption func(*syncServiceImpl)

// WithSyncInterval overrides the auto-sync tick interval.
func WithSyncInterval(d time.Duration) SyncOption {
	return func(s *syncServiceImpl) { s.interval = d }
}

// WithResetDelay overrides how long a terminal status stays visible before
// the stage falls back to idle.
func WithResetDelay(d time.Duration) SyncOption {
	return func(s *syncServiceImpl) { s.resetDelay = d }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) SyncOption {
	return func(s *syncServiceImpl) { s.now = now }
}

// NewSyncService creates the sync orchestrator. The initial status is idle,
// carrying the last-sync timestamp already stored in the document.
func NewSyncService(container *state.Container, store portsrepo.DocumentStore, remote portsrepo.RemoteStore, opts ...SyncOption) portssvc.SyncSvcFacade {
	s := &syncServiceImpl{
		container:  container,
		store:      store,
		remote:     remote,
		interval:   2 * time.Minute,
		resetDelay: 4 * time.Second,
		now:        time.Now,
		subs:       make(map[int]chan domain.SyncStatus),
		restart:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.status = domain.SyncStatus{
		Stage:             domain.SyncIdle,
		LastSyncTimestamp: container.Snapshot().SyncConfig.LastSyncTimestamp,
	}
	return s
}

var _ portssvc.SyncSvcFacade = (*syncServiceImpl)(nil)

// RequestSync starts a run unless one is already in flight. Requests made
// while a run is active are dropped, not queued.
func (s *syncServiceImpl) RequestSync() bool {
	if !s.running.CompareAndSwap(false, true) {
		return false
	}

	s.mu.Lock()
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.mu.Unlock()

	go s.runSync(context.Background())
	return true
}

func (s *syncServiceImpl) Status() domain.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Subscribe registers a status observer. Delivery is non-blocking; a laggard
// observer misses transitions rather than stalling the state machine.
func (s *syncServiceImpl) Subscribe(buffer int) (<-chan domain.SyncStatus, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan domain.SyncStatus, buffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// runSync executes one pull-merge-push cycle and always releases the
// single-flight flag before scheduling the idle reset.
func (s *syncServiceImpl) runSync(ctx context.Context) {
	defer func() {
		s.running.Store(false)
		s.scheduleReset()
	}()

	local := s.container.Snapshot()
	cfg := local.SyncConfig

	if !cfg.IsConfigured() {
		s.transition(domain.SyncFailed, "sync is not configured", true, cfg.LastSyncTimestamp)
		return
	}

	s.transition(domain.SyncPulling, "downloading remote state", false, cfg.LastSyncTimestamp)
	remoteDoc, err := s.remote.Download(ctx, cfg)
	if err != nil {
		s.LogError(ctx, err, "Sync pull failed", slog.String("base_url", cfg.BaseURL))
		s.transition(domain.SyncFailed, err.Error(), true, cfg.LastSyncTimestamp)
		return
	}

	if remoteDoc == nil {
		// First sync against an empty remote: upload the local document
		// unchanged. Nothing local changes, so nothing is committed and the
		// last-sync timestamp is not stamped.
		s.transition(domain.SyncPushing, "uploading initial state", false, cfg.LastSyncTimestamp)
		if err := s.remote.Upload(ctx, cfg, local); err != nil {
			s.LogError(ctx, err, "Bootstrap upload failed", slog.String("base_url", cfg.BaseURL))
			s.transition(domain.SyncFailed, err.Error(), true, cfg.LastSyncTimestamp)
			return
		}
		s.LogInfo(ctx, "Bootstrap sync completed", slog.String("base_url", cfg.BaseURL))
		s.transition(domain.SyncCompleted, "initial state uploaded", false, cfg.LastSyncTimestamp)
		return
	}

	s.transition(domain.SyncMerging, "merging local and remote state", false, cfg.LastSyncTimestamp)
	merged := domain.MergeDocuments(local, *remoteDoc)
	syncedAt := s.now().UnixMilli()
	merged.SyncConfig = merged.SyncConfig.WithLastSync(syncedAt)

	s.transition(domain.SyncPushing, "uploading merged state", false, cfg.LastSyncTimestamp)
	if err := s.remote.Upload(ctx, cfg, merged); err != nil {
		// The merged document is discarded: the local document stays exactly
		// as it was, so a retry starts from a clean slate.
		s.LogError(ctx, err, "Sync push failed", slog.String("base_url", cfg.BaseURL))
		s.transition(domain.SyncFailed, err.Error(), true, cfg.LastSyncTimestamp)
		return
	}

	// Commit through the same locked install-and-persist path the command
	// services use, so the merged document cannot interleave with a local
	// mutation's save.
	_, err = s.container.UpdateAndPersist(func(domain.Document) (domain.Document, error) {
		return merged.Clone(), nil
	}, func(doc domain.Document) error {
		return s.store.Save(ctx, doc)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist merged state")
		s.transition(domain.SyncFailed, err.Error(), true, cfg.LastSyncTimestamp)
		return
	}

	s.LogInfo(ctx, "Sync completed", slog.Int64("last_sync", syncedAt))
	s.transition(domain.SyncCompleted, "sync completed", false, syncedAt)
}

// transition installs a new status and fans it out to observers.
func (s *syncServiceImpl) transition(stage domain.SyncStage, message string, isError bool, lastSync int64) {
	status := domain.SyncStatus{
		Stage:             stage,
		Message:           message,
		LastSyncTimestamp: lastSync,
		IsError:           isError,
	}

	s.mu.Lock()
	s.status = status
	s.notifyLocked(status)
	s.mu.Unlock()
}

// scheduleReset arms the timer that drops a terminal status back to idle,
// preserving the last-sync timestamp. A new run arriving first disarms it.
func (s *syncServiceImpl) scheduleReset() {
	s.mu.Lock()
	if s.resetTimer != nil {
		s.resetTimer.Stop()
	}
	s.resetTimer = time.AfterFunc(s.resetDelay, func() {
		s.mu.Lock()
		if s.status.Stage.IsTerminal() {
			s.status = domain.SyncStatus{
				Stage:             domain.SyncIdle,
				LastSyncTimestamp: s.status.LastSyncTimestamp,
			}
			s.notifyLocked(s.status)
		}
		s.mu.Unlock()
	})
	s.mu.Unlock()
}

func (s *syncServiceImpl) notifyLocked(status domain.SyncStatus) {
	for _, sub := range s.subs {
		select {
		case sub <- status:
		default:
		}
	}
}

// StartAutoSync launches the periodic trigger loop. Calling it twice is a
// no-op; the loop ends when ctx is cancelled or Stop is called.
func (s *syncServiceImpl) StartAutoSync(ctx context.Context) {
	s.schedMu.Lock()
	if s.schedCancel != nil {
		s.schedMu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	s.schedCancel = cancel
	s.schedMu.Unlock()

	go s.scheduleLoop(loopCtx)
}

func (s *syncServiceImpl) scheduleLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.restart:
			// Config changed: restart the countdown from zero.
			ticker.Reset(s.interval)
		case <-ticker.C:
			cfg := s.container.Snapshot().SyncConfig
			if cfg.AutoSyncEnabled && cfg.IsConfigured() {
				s.RequestSync()
			}
		}
	}
}

// SyncConfigUpdated restarts the scheduler countdown when the auto-sync flag
// flips. Other config edits take effect on the next tick anyway because the
// loop re-reads the document each time.
func (s *syncServiceImpl) SyncConfigUpdated(previous, current domain.SyncConfig) {
	if previous.AutoSyncEnabled == current.AutoSyncEnabled {
		return
	}
	select {
	case s.restart <- struct{}{}:
	default:
	}
}

// Stop cancels the scheduler loop and any pending idle reset. An in-flight
// sync run is allowed to finish.
func (s *syncServiceImpl) Stop() {
	s.schedMu.Lock()
	if s.schedCancel != nil {
		s.schedCancel()
		s.schedCancel = nil
	}
	s.schedMu.Unlock()

	s.mu.Lock()
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.mu.Unlock()
}
