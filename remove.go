package main

import (
	"errors"
	"syscall"
	"time"
)

const (
	removeAttempts     = 10
	removeInitialDelay = 10 * time.Millisecond
)

// removeDir removes path recursively, retrying transient failures with
// exponential backoff. Gives up after removeAttempts attempts.
func (c *Cleaner) removeDir(path string) error {
	delay := c.retryDelay

	var err error
	for attempt := 1; attempt <= removeAttempts; attempt++ {
		err = c.removeAll(path)
		if err == nil {
			c.removedCount++
			return nil
		}

		if !isTransientRemoveError(err) {
			return err
		}

		c.logf(LogLevelWarning, "remove %s: %v, retrying in %s\n", path, err, delay)
		time.Sleep(delay)
		delay *= 2
	}

	return err
}

// isTransientRemoveError reports whether err may resolve on retry:
// another process holds an entry open or adds entries during removal.
func isTransientRemoveError(err error) bool {
	return errors.Is(err, syscall.EBUSY) || errors.Is(err, syscall.ENOTEMPTY)
}
