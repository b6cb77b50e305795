package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide structured logger.
	Logger = zap.NewNop()

	// Verbose reports whether debug output is enabled.
	Verbose bool

	sugar = Logger.Sugar()
)

// Setup configures the global logger. A nil writer means stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	Verbose = verbose

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	Logger = zap.New(zapcore.NewCore(newEncoder(jsonOutput), zapcore.AddSync(w), level))
	sugar = Logger.Sugar()
}

func newEncoder(jsonOutput bool) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if jsonOutput {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Debug logs at debug level with alternating key/value pairs.
func Debug(msg string, keysAndValues ...any) {
	sugar.Debugw(msg, keysAndValues...)
}

// Info logs at info level.
func Info(msg string, keysAndValues ...any) {
	sugar.Infow(msg, keysAndValues...)
}

// Warn logs at warn level.
func Warn(msg string, keysAndValues ...any) {
	sugar.Warnw(msg, keysAndValues...)
}

// Error logs at error level.
func Error(msg string, keysAndValues ...any) {
	sugar.Errorw(msg, keysAndValues...)
}

// With returns a child logger carrying the given fields.
func With(keysAndValues ...any) *zap.SugaredLogger {
	return sugar.With(keysAndValues...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
