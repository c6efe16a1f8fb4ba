package cmd

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harrison/teaspoon-report/internal/models"
)

const failingSnapshot = `suite: unit
elapsed: 1.5
run_count: 3
failures:
  - description: Math adds numbers
    message: expected 3 to equal 4
    link: Math%20adds%20numbers
    trace: |-
      Context.<anonymous>@http://127.0.0.1:3000/assets/math_spec-4f3e2d.js?body=1?body=2:12
      callFn@http://127.0.0.1:3000/assets/mocha/1.17.1.js?body=1:4451
pendings:
  - description: Math divides by zero
`

const passingSnapshot = `suite: unit
elapsed: 0.25
run_count: 2
`

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// recordingLogger captures diagnostics so tests can assert on them
type recordingLogger struct {
	mu        sync.Mutex
	messages  []string
	summaries int
}

func (l *recordingLogger) record(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, level+": "+message)
}

func (l *recordingLogger) LogTrace(message string) { l.record("trace", message) }
func (l *recordingLogger) LogDebug(message string) { l.record("debug", message) }
func (l *recordingLogger) LogInfo(message string)  { l.record("info", message) }
func (l *recordingLogger) LogWarn(message string)  { l.record("warn", message) }
func (l *recordingLogger) LogError(message string) { l.record("error", message) }

func (l *recordingLogger) LogRenderSummary(*models.RunResult, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.summaries++
}
