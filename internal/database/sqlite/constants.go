package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// dsnOptions are appended to every database path
const dsnOptions = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Log messages
const (
	LogMsgSkippingMalformedProfile = "Skipping malformed profile document"
	LogMsgMigrationApplied         = "Applied sqlite migration"
)
