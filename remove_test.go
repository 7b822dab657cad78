package main

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransientRemoveError(t *testing.T) {
	assert.True(t, isTransientRemoveError(&os.PathError{Op: "unlinkat", Path: "x", Err: syscall.EBUSY}))
	assert.True(t, isTransientRemoveError(&os.PathError{Op: "unlinkat", Path: "x", Err: syscall.ENOTEMPTY}))
	assert.False(t, isTransientRemoveError(&os.PathError{Op: "unlinkat", Path: "x", Err: syscall.EPERM}))
	assert.False(t, isTransientRemoveError(errors.New("unexpected")))
}

func TestRemoveDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "build")

	writeFile(t, filepath.Join(dir, "a.o"))

	cleaner, _ := newTestCleaner(false)
	require.NoError(t, cleaner.removeDir(dir))

	assertNotExists(t, dir)
	assert.Equal(t, 1, cleaner.removedCount)
}

func TestRemoveDirRetriesTransientErrors(t *testing.T) {
	cleaner, _ := newTestCleaner(false)
	cleaner.retryDelay = time.Microsecond

	attempts := 0
	cleaner.removeAll = func(string) error {
		attempts++
		if attempts < 3 {
			return &os.PathError{Op: "unlinkat", Path: "x", Err: syscall.EBUSY}
		}
		return nil
	}

	require.NoError(t, cleaner.removeDir("x"))
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 1, cleaner.removedCount)
}

func TestRemoveDirBoundedAttempts(t *testing.T) {
	cleaner, _ := newTestCleaner(false)
	cleaner.retryDelay = time.Microsecond

	attempts := 0
	cleaner.removeAll = func(string) error {
		attempts++
		return &os.PathError{Op: "unlinkat", Path: "x", Err: syscall.EBUSY}
	}

	err := cleaner.removeDir("x")
	assert.ErrorIs(t, err, syscall.EBUSY)
	assert.Equal(t, removeAttempts, attempts)
	assert.Equal(t, 0, cleaner.removedCount)
}

func TestRemoveDirNonTransientErrorFailsFast(t *testing.T) {
	cleaner, _ := newTestCleaner(false)
	cleaner.retryDelay = time.Microsecond

	attempts := 0
	cleaner.removeAll = func(string) error {
		attempts++
		return &os.PathError{Op: "unlinkat", Path: "x", Err: syscall.EPERM}
	}

	err := cleaner.removeDir("x")
	assert.ErrorIs(t, err, syscall.EPERM)
	assert.Equal(t, 1, attempts)
}

func TestCleanReportsFailedRemovals(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "build", "a.o"))

	cleaner, out := newTestCleaner(false)
	cleaner.retryDelay = time.Microsecond
	cleaner.removeAll = func(string) error {
		return &os.PathError{Op: "unlinkat", Path: "x", Err: syscall.EPERM}
	}

	err := cleaner.Clean(root)
	assert.EqualError(t, err, "1 entries could not be removed")
	assert.Equal(t, 1, cleaner.removeErrorCount)
	assert.Equal(t, 0, cleaner.walkErrorCount)
	assert.Contains(t, out.String(), filepath.Join(root, "build"))
}
