package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/teaspoon-report/internal/models"
)

// FileLogger writes diagnostics for one report run to <logDir>/run-YYYYMMDD-HHMMSS.log
// and maintains a latest.log symlink pointing to the most recent run.
// Every run gets a report ID so log files can be matched to a rendered report.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	reportID string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in logDir at the given level.
// It creates the log directory if it doesn't exist, opens a timestamped
// run log file, and creates/updates the latest.log symlink.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	reportID := uuid.New().String()

	// Second resolution collides when runs start back to back, so fall back to the ID
	stamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", stamp))
	if _, err := os.Stat(runFile); err == nil {
		runFile = filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", stamp, reportID[:8]))
	}

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		reportID: reportID,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== Teaspoon Report Log ===\n")
	fl.writeRunLog(fmt.Sprintf("Report ID: %s\n", reportID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// ReportID returns the identifier written in the log header.
func (fl *FileLogger) ReportID() string {
	return fl.reportID
}

func (fl *FileLogger) LogTrace(message string) { fl.logWithLevel("TRACE", message) }
func (fl *FileLogger) LogDebug(message string) { fl.logWithLevel("DEBUG", message) }
func (fl *FileLogger) LogInfo(message string)  { fl.logWithLevel("INFO", message) }
func (fl *FileLogger) LogWarn(message string)  { fl.logWithLevel("WARN", message) }
func (fl *FileLogger) LogError(message string) { fl.logWithLevel("ERROR", message) }

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !enabled(fl.logLevel, level) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogRenderSummary records the rendered result's counts and every failing
// example's link at INFO level.
func (fl *FileLogger) LogRenderSummary(result *models.RunResult, duration time.Duration) {
	if result == nil || !enabled(fl.logLevel, "info") {
		return
	}

	fl.writeRunLog(fmt.Sprintf("[%s] Rendered %s: %s (%s)\n", timestamp(), suiteName(result), formatCounts(result), formatDuration(duration)))
	for i, f := range result.Failures {
		fl.writeRunLog(fmt.Sprintf("  failure %d: %s [%s]\n", i+1, f.Description, f.Link))
	}
}

// Close flushes and closes the run log. Calling Close twice is a no-op.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		fl.runLog.Sync()
	}
}
