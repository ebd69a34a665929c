package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stuckServer never finishes its shutdown before the deadline.
type stuckServer struct{}

func (stuckServer) Shutdown(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

type recordingCloser struct {
	called   bool
	deadline time.Time
}

func (c *recordingCloser) Close(ctx context.Context) error {
	c.called = true
	c.deadline, _ = ctx.Deadline()
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestShutdownGivesTasksTheirOwnDeadline(t *testing.T) {
	tasks := &recordingCloser{}

	start := time.Now()
	shutdown(context.Background(), stuckServer{}, tasks, 20*time.Millisecond, time.Minute, discardLogger())

	require.True(t, tasks.called)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Greater(t, time.Until(tasks.deadline), 50*time.Second)
}

func TestDrainTasksIgnoresCancelledParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tasks := &recordingCloser{}

	drainTasks(ctx, tasks, time.Minute, discardLogger())

	require.True(t, tasks.called)
	assert.False(t, tasks.deadline.IsZero())
}
