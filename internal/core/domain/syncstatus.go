package domain

// SyncStage names a state in the synchronization state machine.
type SyncStage string

const (
	SyncIdle      SyncStage = "IDLE"
	SyncPulling   SyncStage = "PULLING"
	SyncMerging   SyncStage = "MERGING"
	SyncPushing   SyncStage = "PUSHING"
	SyncCompleted SyncStage = "COMPLETED"
	SyncFailed    SyncStage = "FAILED"
)

// IsTerminal reports whether the stage ends a sync run. Terminal stages reset
// to Idle after a short delay.
func (s SyncStage) IsTerminal() bool {
	return s == SyncCompleted || s == SyncFailed
}

// SyncStatus is the read-only snapshot published to observers at every
// state-machine transition.
type SyncStatus struct {
	Stage             SyncStage `json:"stage"`
	Message           string    `json:"message"`
	LastSyncTimestamp int64     `json:"lastSyncTimestamp"`
	IsError           bool      `json:"isError"`
}
