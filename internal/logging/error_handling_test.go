package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

type fakeTx struct {
	err        error
	rolledBack bool
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return f.err
}

func TestSafeCloseWithLogging(t *testing.T) {
	t.Run("closes without logging on success", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		closer := &fakeCloser{}
		SafeCloseWithLogging(closer, logger, "test_resource")

		assert.True(t, closer.closed)
		assert.Empty(t, buf.String())
	})

	t.Run("logs close errors", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		closer := &fakeCloser{err: errors.New("close failed")}
		SafeCloseWithLogging(closer, logger, "test_resource")

		output := buf.String()
		assert.Contains(t, output, "failed to close resource")
		assert.Contains(t, output, "close failed")
		assert.Contains(t, output, `"operation":"test_resource"`)
	})

	t.Run("tolerates nil closer", func(t *testing.T) {
		SafeCloseWithLogging(nil, nil, "test_resource")
	})
}

func TestSafeRollbackWithLogging(t *testing.T) {
	t.Run("ignores already-committed rollback", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		tx := &fakeTx{err: errors.New("sql: transaction has already been committed or rolled back")}
		SafeRollbackWithLogging(tx, logger, "replace_timetable")

		assert.True(t, tx.rolledBack)
		assert.Empty(t, buf.String())
	})

	t.Run("logs unexpected rollback errors", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		tx := &fakeTx{err: errors.New("disk I/O error")}
		SafeRollbackWithLogging(tx, logger, "replace_timetable")

		output := buf.String()
		assert.Contains(t, output, "failed to rollback transaction")
		assert.Contains(t, output, "disk I/O error")
	})
}
