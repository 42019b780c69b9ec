package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	defaultLogger *slog.Logger
	level         = new(slog.LevelVar)
)

var levelMap = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

func init() {
	setupLogger()
}

func setupLogger() {
	level.Set(getLogLevel())
	output := getLogOutput()

	options := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler = slog.NewTextHandler(output, options)

	if getEnvWithDefault("TIDIS_LOG_FORMAT", "text") == "json" {
		handler = slog.NewJSONHandler(output, options)
	}

	defaultLogger = slog.New(handler)
}

func getLogLevel() slog.Level {
	env := os.Getenv("TIDIS_LOG_LEVEL")

	if lvl, exists := levelMap[env]; exists {
		return lvl
	}

	if isTestEnvironment() {
		return slog.LevelError
	}

	return slog.LevelInfo
}

func getLogOutput() io.Writer {
	if isTestEnvironment() {
		return io.Discard
	}

	return os.Stdout
}

func isTestEnvironment() bool {
	return os.Getenv("TIDIS_TEST_MODE") == "true"
}

// SetLevel overrides the environment level, unknown names are ignored.
func SetLevel(name string) bool {
	name = strings.ToUpper(strings.TrimSpace(name))

	if !isValidLevel(name) {
		return false
	}

	level.Set(levelMap[name])
	return true
}

func Level() slog.Level {
	return level.Level()
}

func Logger() *slog.Logger {
	return defaultLogger
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
