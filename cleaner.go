package main

import (
	"io"
	"log"
	"os"
	"time"
)

type Cleaner struct {
	// Name patterns of directories to remove
	dirNamePatternList []string

	// Name patterns of files to remove
	fileNamePatternList []string

	// Names of files without extension to remove
	bareNameList []string

	// Remove IDE caches too
	all bool

	// Logger
	logger Logger

	// Receives the list of removed paths
	out io.Writer

	// Directory tree remover
	removeAll func(path string) error

	// Initial delay between directory removal attempts
	retryDelay time.Duration

	removedCount     int
	removeErrorCount int
	walkErrorCount   int
}

func NewCleaner(all bool) *Cleaner {
	cleaner := &Cleaner{
		dirNamePatternList: baseDirNames,
		bareNameList:       baseBareNames,
		all:                all,
		logger:             Logger{logger: log.New(os.Stderr, "", 0), MinimalLogLevel: LogLevelProgress},
		out:                os.Stdout,
		removeAll:          os.RemoveAll,
		retryDelay:         removeInitialDelay}

	for _, ext := range baseFileExts {
		cleaner.fileNamePatternList = append(cleaner.fileNamePatternList, "*"+ext)
	}

	if all {
		cleaner.dirNamePatternList = append(cleaner.dirNamePatternList, ideCacheDirName)
		for _, ext := range ideCacheFileExts {
			cleaner.fileNamePatternList = append(cleaner.fileNamePatternList, "*"+ext)
		}
	}

	return cleaner
}
