package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Playtime Worker
// ============================================================================

// Log messages for playtime accrual
const (
	LogMsgPlaytimeWorkerStarted   = "Playtime worker started"
	LogMsgPlaytimeTickDropped     = "Playtime tick dropped, worker queue full"
	LogMsgPlaytimeShutdown        = "Shutting down playtime worker"
	LogMsgPlaytimeShutdownDone    = "Playtime worker shutdown complete"
	LogMsgPlaytimeShutdownTimeout = "Playtime worker shutdown timeout"
)
