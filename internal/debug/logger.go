package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// getDebugLogPath returns the debug log path, configurable via environment variable
func getDebugLogPath() string {
	// If SHOWHIDE_DEBUG_LOG is a path (contains a directory), use it directly
	debugEnv := os.Getenv("SHOWHIDE_DEBUG_LOG")
	if debugEnv != "" && (filepath.IsAbs(debugEnv) || filepath.Dir(debugEnv) != ".") {
		return debugEnv
	}

	return filepath.Join(os.TempDir(), "showhide_debug.log")
}

// LogToFile writes a debug message to the debug log file
func LogToFile(message string) {
	// Only log if debug logging is enabled (any non-empty value)
	debugEnv := os.Getenv("SHOWHIDE_DEBUG_LOG")
	if debugEnv == "" || debugEnv == "0" || debugEnv == "false" {
		return
	}

	if f, err := os.OpenFile(getDebugLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
		defer func() { _ = f.Close() }()
		_, _ = f.WriteString(message)
	}
}

// LogToFilef writes a formatted debug message to the debug log file
func LogToFilef(format string, args ...interface{}) {
	LogToFile(fmt.Sprintf(format, args...))
}

// LogToFileWithTimestampf writes a formatted debug message with timestamp prefix
func LogToFileWithTimestampf(format string, args ...interface{}) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	LogToFile(fmt.Sprintf("[%s] %s", timestamp, fmt.Sprintf(format, args...)))
}
