package main

import (
	"log"
)

type LogLevel int

const (
	LogLevelDebug    = iota // 0
	LogLevelProgress        // 1
	LogLevelInfo            // 2
	LogLevelWarning         // 3
	LogLevelCritical        // 4
)

type Logger struct {
	logger          *log.Logger
	MinimalLogLevel LogLevel
}

func (logger *Logger) logf(logLevel LogLevel, s string, a ...interface{}) {
	if logLevel < logger.MinimalLogLevel {
		return
	}

	logger.logger.Printf(s, a...)
}

func (logger *Logger) fatalln(a ...interface{}) {
	logger.logger.Fatalln(a...)
}

func (c *Cleaner) logf(logLevel LogLevel, s string, a ...interface{}) {
	c.logger.logf(logLevel, s, a...)
}

func (c *Cleaner) fatalln(a ...interface{}) {
	c.logger.fatalln(a...)
}
