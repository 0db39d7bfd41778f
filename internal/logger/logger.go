// Package logger provides a small level-gated stderr logger.
//
// It is intentionally minimal: level filtering, one log line per call,
// and a Panicf reserved for invariant violations that the rest of the
// codebase treats as Internal errors.
package logger

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var loggerLevel = flag.String("loggerLevel", "INFO", "Minimum level of messages to log. Possible values: INFO, ERROR, FATAL, PANIC")

// Init validates the configured logger level.
//
// Init must be called after flag.Parse(). Tests do not need to call it.
func Init() {
	switch *loggerLevel {
	case "INFO", "ERROR", "FATAL", "PANIC":
	default:
		panic(fmt.Errorf("FATAL: unsupported `-loggerLevel` value: %q; supported values are: INFO, ERROR, FATAL, PANIC", *loggerLevel))
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logLevel("INFO", format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logLevel("ERROR", format, args...)
}

// Fatalf logs a fatal message and terminates the process.
func Fatalf(format string, args ...interface{}) {
	logLevel("FATAL", format, args...)
}

// Panicf logs an invariant-violation message and panics.
//
// Reserved for conditions the rest of the codebase treats as Internal
// errors: states that must be provably unreachable given the code above
// the call site.
func Panicf(format string, args ...interface{}) {
	logLevel("PANIC", format, args...)
}

func logLevel(level, format string, args ...interface{}) {
	if shouldSkipLog(level) {
		return
	}
	if level == "ERROR" {
		if n := atomic.AddUint64(&errorsLogged, 1); n > 10 {
			return
		}
	}
	msg := fmt.Sprintf(format, args...)
	logMessage(level, msg)
}

var errorsLogged uint64

func logMessage(level, msg string) {
	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000+0000")
	levelLowercase := strings.ToLower(level)
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "???"
		line = 0
	}
	if n := strings.Index(file, "/logscan-core/"); n >= 0 {
		file = file[n+len("/logscan-core/"):]
	}
	for len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	logMsg := fmt.Sprintf("%s\t%s\t%s:%d\t%s\n", timestamp, levelLowercase, file, line, msg)

	mu.Lock()
	fmt.Fprint(os.Stderr, logMsg)
	mu.Unlock()

	switch level {
	case "PANIC":
		panic(errors.New(msg))
	case "FATAL":
		os.Exit(1)
	}
}

var mu sync.Mutex

func shouldSkipLog(level string) bool {
	switch *loggerLevel {
	case "ERROR":
		return level != "ERROR" && level != "FATAL" && level != "PANIC"
	case "FATAL":
		return level != "FATAL" && level != "PANIC"
	case "PANIC":
		return level != "PANIC"
	default:
		return false
	}
}
