package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is how many earlier session logs survive a restart
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting skillforge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "data/events_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgEventAuditRegistered           = "Event audit log registered"
	LogMsgEventAudit                     = "Profile event"
	LogMsgDeadLettersPending             = "Dead-lettered events from earlier runs"
	LogMsgDeadLetterUnreadable           = "Failed to read dead-letter file"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Storage and catalogues
// =============================================================================

const (
	LogMsgStorageInitialized  = "Profile storage initialized"
	LogMsgCacheEnabled        = "Profile cache enabled"
	LogMsgCatalogsLoaded      = "Skill catalogues loaded"
	ErrMsgUnknownBackend      = "unknown storage backend"
	ErrMsgFailedOpenStorage   = "failed to open profile storage"
	ErrMsgFailedLoadTrees     = "failed to load skill tree catalogue"
	ErrMsgFailedLoadRewards   = "failed to load reward tree catalogue"
	CatalogSourceEmbedded     = "embedded"
	CatalogSourceDirectoryFmt = "dir:%s"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgPlaytimeWorkerFailed       = "Playtime worker shutdown failed"
	LogMsgStorageCloseFailed         = "Profile storage close failed"
	LogMsgTracingShutdownFailed      = "Tracing shutdown failed"
)
