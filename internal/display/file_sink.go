package display

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/harrison/teaspoon-report/internal/filelock"
)

// ErrSinkClosed is returned by writes to a closed FileSink.
var ErrSinkClosed = errors.New("sink is closed")

// FileSink writes plain report lines to a file.
// It holds an exclusive lock on <path>.lock from open until Close, so a
// whole report is written without interleaving from other processes.
type FileSink struct {
	path   string
	file   *os.File
	lock   *filelock.FileLock
	mu     sync.Mutex
	closed bool
}

// OpenFileSink locks and opens path for writing. The file is appended to,
// or truncated first when truncate is set. Waiting for the lock stops when
// ctx is done.
func OpenFileSink(ctx context.Context, path string, truncate bool) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	lock := filelock.NewFileLock(filelock.PathFor(path))
	if err := lock.LockContext(ctx, filelock.DefaultRetryDelay); err != nil {
		return nil, err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to open report file: %w", err), lock.Unlock())
	}

	return &FileSink{
		path: path,
		file: file,
		lock: lock,
	}, nil
}

// Path returns the report file path.
func (s *FileSink) Path() string {
	return s.path
}

// WriteLine appends text and a newline. Color is ignored; report files are
// always plain text.
func (s *FileSink) WriteLine(text string, _ Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}
	if _, err := s.file.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("failed to write report line: %w", err)
	}
	return nil
}

// Close flushes and closes the file and releases the lock.
// Closing an already closed sink is a no-op.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	unlockErr := s.lock.Unlock()

	return errors.Join(syncErr, closeErr, unlockErr)
}
