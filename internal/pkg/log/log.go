package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

var (
	mu     sync.Mutex
	out    io.Writer = color.Output
	debug  bool
	labels = map[string]*color.Color{
		"DEBUG": color.New(color.FgWhite, color.BgBlue),
		"INFO":  color.New(color.FgWhite, color.BgGreen),
		"WARN":  color.New(color.FgWhite, color.BgYellow),
		"ERROR": color.New(color.FgRed),
	}
)

// SetOutput redirects log output. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// SetDebug toggles Debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	debug = enabled
	mu.Unlock()
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID retrieves request ID from context
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// formatLog formats log message with optional request ID
func formatLog(requestID string, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		return fmt.Sprintf("[req_id=%s] %s", requestID, msg)
	}
	return msg
}

func write(level, requestID, format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if level == "DEBUG" && !debug {
		return
	}
	fmt.Fprintf(out, "%s %s\n", labels[level].Sprint("["+level+"]"), formatLog(requestID, format, a...))
}

// Debug logs only when debug output is enabled
func Debug(format string, a ...interface{}) {
	write("DEBUG", "", format, a...)
}

// Info log information
func Info(format string, a ...interface{}) {
	write("INFO", "", format, a...)
}

// InfoWithContext logs information with context (includes request ID if available)
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write("INFO", RequestID(ctx), format, a...)
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write("WARN", "", format, a...)
}

// WarnWithContext logs warning with context (includes request ID if available)
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write("WARN", RequestID(ctx), format, a...)
}

// Error log error
func Error(format string, a ...interface{}) {
	write("ERROR", "", format, a...)
}

// ErrorWithContext logs error with context (includes request ID if available)
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write("ERROR", RequestID(ctx), format, a...)
}

// DebugStruct dumps values when debug output is enabled
func DebugStruct(a ...interface{}) {
	write("DEBUG", "", "%s", spew.Sdump(a...))
}
