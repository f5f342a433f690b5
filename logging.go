package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// logLevel is the severity of a log line.
type logLevel int32

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[string]logLevel{
	"debug":   levelDebug,
	"info":    levelInfo,
	"warn":    levelWarn,
	"warning": levelWarn,
	"error":   levelError,
}

var levelPrefixes = map[logLevel]string{
	levelDebug: "DEBUG",
	levelInfo:  "INFO",
	levelWarn:  "WARN",
	levelError: "ERROR",
}

var currentLevel atomic.Int32

var baseLogger = log.New(os.Stderr, "", log.Ltime)

func init() {
	currentLevel.Store(int32(levelInfo))
}

// setLogLevel parses and sets the global log level.
func setLogLevel(s string) error {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("unknown log level %q", s)
	}
	currentLevel.Store(int32(l))
	return nil
}

// setLogOutput redirects log lines; nil restores stderr.
func setLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	baseLogger.SetOutput(w)
}

func logf(l logLevel, format string, args ...interface{}) {
	if logLevel(currentLevel.Load()) > l {
		return
	}
	baseLogger.Printf("["+levelPrefixes[l]+"] "+format, args...)
}

// debugPrint prints debug messages when debug logging is enabled
func debugPrint(format string, args ...interface{}) {
	logf(levelDebug, format, args...)
}

func infof(format string, args ...interface{}) {
	logf(levelInfo, format, args...)
}

func warnf(format string, args ...interface{}) {
	logf(levelWarn, format, args...)
}
