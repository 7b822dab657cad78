package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nxshock/progressmessage"
)

// Clean removes matching files and directories below root.
// Removed paths are written to the out writer, one per line.
func (c *Cleaner) Clean(root string) error {
	pm := progressmessage.New("Checked %d entries...")
	if c.logger.MinimalLogLevel <= LogLevelProgress {
		pm.Start()
	}

	checked := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.walkErrorCount++
			c.logf(LogLevelWarning, "walk %s: %v\n", path, err)
			return nil
		}

		checked++
		if c.logger.MinimalLogLevel <= LogLevelProgress {
			pm.Update(checked)
		}

		if path == root {
			return nil
		}

		name := strings.ToLower(d.Name())

		if d.IsDir() {
			if !isNameMatchPatterns(c.dirNamePatternList, name) {
				return nil
			}

			fmt.Fprintln(c.out, path)
			err = c.removeDir(path)
			if err != nil {
				c.removeErrorCount++
				c.logf(LogLevelCritical, "remove %s: %v\n", path, err)
			}
			return fs.SkipDir
		}

		// Symlinks are removed like regular files, without following them
		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		if c.isTargetFile(name) {
			fmt.Fprintln(c.out, path)
			err = os.Remove(path)
			if err != nil {
				return fmt.Errorf("remove %s: %v", path, err)
			}
			c.removedCount++
		}

		return nil
	})

	if c.logger.MinimalLogLevel <= LogLevelProgress {
		pm.Stop()
	}

	if err != nil {
		return err
	}

	if c.all {
		err = c.removeIdeCacheDirs(root)
		if err != nil {
			return err
		}
	}

	c.logf(LogLevelInfo, "Removed %d entries.\n", c.removedCount)

	if c.walkErrorCount > 0 {
		c.logf(LogLevelCritical, "Walk errors: %d\n", c.walkErrorCount)
	}

	if c.removeErrorCount > 0 {
		return fmt.Errorf("%d entries could not be removed", c.removeErrorCount)
	}

	return nil
}

// isTargetFile matches the lowercased file name against the target sets.
// Files without extension are matched by full name.
func (c *Cleaner) isTargetFile(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return isNameMatchPatterns(c.bareNameList, name)
	}

	return isNameMatchPatterns(c.fileNamePatternList, name)
}

// removeIdeCacheDirs is the follow-up pass removing directories named
// ideCacheDirName that are still present after the main pass.
func (c *Cleaner) removeIdeCacheDirs(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.walkErrorCount++
			c.logf(LogLevelWarning, "walk %s: %v\n", path, err)
			return nil
		}

		if path == root || !d.IsDir() {
			return nil
		}

		if strings.ToLower(d.Name()) != ideCacheDirName {
			return nil
		}

		fmt.Fprintln(c.out, path)
		err = c.removeDir(path)
		if err != nil {
			c.removeErrorCount++
			c.logf(LogLevelCritical, "remove %s: %v\n", path, err)
		}
		return fs.SkipDir
	})
}
