// Package logger is the structured logger shared by every botvisor component.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int32

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled lines with persistent key/value context.
// Loggers derived with WithField/WithFields/WithMode share the level of their parent,
// so SetLevel on the root is seen by every component logger.
type Logger struct {
	level  *atomic.Int32
	logger *log.Logger
	fields map[string]interface{}
	mode   string
	json   bool
}

type Config struct {
	Level  LogLevel
	Output io.Writer
	Format string // "json" or "text" (default)
	Mode   string // "server", "daemon", "cli", or empty
}

func New() *Logger {
	return NewWithConfig(Config{
		Level:  INFO,
		Output: os.Stdout,
		Format: "text",
	})
}

func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	level := &atomic.Int32{}
	level.Store(int32(config.Level))

	return &Logger{
		level:  level,
		logger: log.New(config.Output, "", 0),
		fields: make(map[string]interface{}),
		mode:   config.Mode,
		json:   strings.EqualFold(config.Format, "json"),
	}
}

// SetMode sets the mode tag printed on every line (e.g. "server", "daemon")
func (l *Logger) SetMode(mode string) {
	l.mode = mode
}

func (l *Logger) GetMode() string {
	return l.mode
}

// SetOutput redirects the logger, and every logger derived from it afterwards.
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// SetFormat switches between "text" and "json" lines.
func (l *Logger) SetFormat(format string) {
	l.json = strings.EqualFold(format, "json")
}

func (l *Logger) derive(mode string) *Logger {
	newLogger := &Logger{
		level:  l.level,
		logger: l.logger,
		fields: make(map[string]interface{}, len(l.fields)),
		mode:   mode,
		json:   l.json,
	}
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	newLogger := l.derive(l.mode)
	for i := 0; i+1 < len(keyVals); i += 2 {
		newLogger.fields[fmt.Sprintf("%v", keyVals[i])] = keyVals[i+1]
	}
	return newLogger
}

// WithField adds one bit of context, e.g. WithField("component", "supervisor").
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(key, value)
}

// WithMode returns a copy of the logger tagged with another mode.
func (l *Logger) WithMode(mode string) *Logger {
	return l.derive(mode)
}

func (l *Logger) Debug(msg string, keyVals ...interface{}) {
	l.log(DEBUG, msg, keyVals...)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.log(INFO, msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.log(WARN, msg, kv...)
}

func (l *Logger) Error(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
}

func (l *Logger) Fatal(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(ERROR, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (l *Logger) log(level LogLevel, msg string, kv ...interface{}) {
	if level < l.GetLevel() {
		return
	}

	allFields := make(map[string]interface{}, len(l.fields)+len(kv)/2)
	for k, v := range l.fields {
		allFields[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		allFields[fmt.Sprintf("%v", kv[i])] = kv[i+1]
	}

	timestamp := time.Now().Format(timestampLayout)
	if l.json {
		l.logger.Print(l.formatJSONLine(timestamp, level, msg, allFields))
		return
	}
	l.logger.Print(l.formatLogLine(timestamp, level, msg, allFields))
}

func (l *Logger) formatLogLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	parts := []string{
		fmt.Sprintf("[%s]", timestamp),
		fmt.Sprintf("[%s]", level.String()),
	}
	if l.mode != "" {
		parts = append(parts, fmt.Sprintf("[%s]", l.mode))
	}
	parts = append(parts, msg)

	if len(fields) > 0 {
		fieldParts := make([]string, 0, len(fields))
		for _, key := range sortedKeys(fields) {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", key, formatValue(fields[key])))
		}
		parts = append(parts, "| "+strings.Join(fieldParts, " "))
	}

	return strings.Join(parts, " ")
}

func (l *Logger) formatJSONLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		switch tv := v.(type) {
		case error:
			entry[k] = tv.Error()
		case time.Duration:
			entry[k] = tv.String()
		default:
			entry[k] = v
		}
	}
	entry["ts"] = timestamp
	entry["level"] = level.String()
	entry["msg"] = msg
	if l.mode != "" {
		entry["mode"] = l.mode
	}

	data, err := json.Marshal(entry)
	if err != nil {
		// unsupported field values fall back to the text form
		return l.formatLogLine(timestamp, level, msg, fields)
	}
	return string(data)
}

func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, " \t\n") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case error:
		return fmt.Sprintf("%q", v.Error())
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level.Store(int32(level))
}

func (l *Logger) GetLevel() LogLevel {
	return LogLevel(l.level.Load())
}

func (l *Logger) IsDebugEnabled() bool {
	return l.GetLevel() <= DEBUG
}

func (l *Logger) IsInfoEnabled() bool {
	return l.GetLevel() <= INFO
}

var globalLogger = New()

// Global returns the process-wide logger that component loggers derive from.
func Global() *Logger {
	return globalLogger
}

// SetGlobalMode sets the mode for the global logger
func SetGlobalMode(mode string) {
	globalLogger.SetMode(mode)
}

func Debug(msg string, keyvals ...interface{}) {
	globalLogger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	globalLogger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	globalLogger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	globalLogger.Error(msg, keyvals...)
}

func Fatal(msg string, keyvals ...interface{}) {
	globalLogger.Fatal(msg, keyvals...)
}

func Fatalf(format string, args ...interface{}) {
	globalLogger.Fatalf(format, args...)
}

func WithFields(keyvals ...interface{}) *Logger {
	return globalLogger.WithFields(keyvals...)
}

func WithField(key string, value interface{}) *Logger {
	return globalLogger.WithField(key, value)
}

func WithMode(mode string) *Logger {
	return globalLogger.WithMode(mode)
}

func SetLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", level)
	}
}
