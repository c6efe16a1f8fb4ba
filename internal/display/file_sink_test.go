package display

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harrison/teaspoon-report/internal/filelock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_WritesPlainLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "report.txt")

	sink, err := OpenFileSink(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, path, sink.Path())

	require.NoError(t, sink.WriteLine("Failures:", None))
	require.NoError(t, sink.WriteLine("3 examples, 1 failure", Red))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Failures:\n3 examples, 1 failure\n", string(data))
}

func TestFileSink_AppendAndTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0644))

	sink, err := OpenFileSink(context.Background(), path, false)
	require.NoError(t, err)
	require.NoError(t, sink.WriteLine("appended", None))
	require.NoError(t, sink.Close())

	data, _ := os.ReadFile(path)
	assert.Equal(t, "previous\nappended\n", string(data))

	sink, err = OpenFileSink(context.Background(), path, true)
	require.NoError(t, err)
	require.NoError(t, sink.WriteLine("fresh", None))
	require.NoError(t, sink.Close())

	data, _ = os.ReadFile(path)
	assert.Equal(t, "fresh\n", string(data))
}

func TestFileSink_WriteAfterClose(t *testing.T) {
	sink, err := OpenFileSink(context.Background(), filepath.Join(t.TempDir(), "r.txt"), false)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	err = sink.WriteLine("late", None)
	assert.True(t, errors.Is(err, ErrSinkClosed))
	assert.NoError(t, sink.Close(), "second Close should be a no-op")
}

func TestFileSink_HoldsLockUntilClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	sink, err := OpenFileSink(context.Background(), path, false)
	require.NoError(t, err)

	other := filelock.NewFileLock(filelock.PathFor(path))
	acquired, err := other.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired, "lock should be held while the sink is open")

	require.NoError(t, sink.Close())

	acquired, err = other.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired, "lock should be released after Close")
	other.Unlock()
}

func TestFileSink_OpenTimesOutWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	first, err := OpenFileSink(context.Background(), path, false)
	require.NoError(t, err)
	defer first.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = OpenFileSink(ctx, path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// TestFileSink_OpenFailureReleasesLock verifies a failed open neither leaks the lock nor hides the cause.
func TestFileSink_OpenFailureReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.MkdirAll(path, 0755), "a directory at the report path makes the open fail")

	_, err := OpenFileSink(context.Background(), path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open report file")

	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr), "the open error stays inspectable")

	other := filelock.NewFileLock(filelock.PathFor(path))
	acquired, err := other.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired, "lock should be released after a failed open")
	other.Unlock()
}
