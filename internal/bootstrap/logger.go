package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/skillforge/internal/config"
	"github.com/osse101/skillforge/internal/logger"
)

// SetupLogger installs the default slog logger. Output goes to stdout and,
// when cfg.LogDir is set, to a timestamped session file in that directory as
// well; older session files beyond the retention count are removed. The
// returned file is nil when no log directory is configured; the caller closes
// it otherwise.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	addSource := cfg.LogSource || cfg.Environment == config.EnvironmentDev
	lc := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)
	logger.InitLoggerWithWriter(lc, w)

	slog.Info(LogMsgLoggingInitialized, "level", lc.LogLevel(), "format", cfg.LogFormat, "file", logFileName(logFile))
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageBackend)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
		"playtime_tick", cfg.PlaytimeTick,
		"workers", cfg.WorkerCount)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}

	return logFile, nil
}

func logFileName(f *os.File) string {
	if f == nil {
		return ""
	}
	return f.Name()
}

// cleanupLogs keeps the newest keep session logs in dir. Session file names
// embed a sortable timestamp, so name order is age order.
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	for len(names) > keep {
		if err := os.Remove(filepath.Join(dir, names[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", names[0], "error", err)
		}
		names = names[1:]
	}
}
