package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	isDebug = false
	logger  = NewLogger()
)

type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

func NewLogger() *Logger {
	return &Logger{out: os.Stderr}
}

// SetDebug toggles debug-level output globally.
func SetDebug(debug bool) {
	isDebug = debug
}

// SetOutput redirects the default logger, mainly for tests.
func SetOutput(w io.Writer) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.out = w
}

func Info(format string, args ...interface{}) {
	logger.log("INFO", format, args...)
}

// Debug logs a formatted message when debug output is enabled
func Debug(format string, args ...interface{}) {
	if isDebug {
		logger.log("DEBUG", format, args...)
	}
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	logger.log("WARN", format, args...)
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	logger.log("ERROR", format, args...)
}

func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s: %s\n", timestamp, level, msg)
}
