// Package logger provides the leveled logging helpers shared by the loaders,
// the renderer and the command line tools.
package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents severity.
type LogLevel = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel = zap.NewAtomicLevelAt(LevelInfo)

var baseLogger = newLogger(zapcore.Lock(os.Stderr))

func newLogger(w zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), w, currentLevel)
	return zap.New(core)
}

// SetLogLevel parses and sets global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	currentLevel.SetLevel(l)
}

// GetLogLevel returns current global log level.
func GetLogLevel() LogLevel { return currentLevel.Level() }

// L returns the structured logger for call sites that attach fields.
func L() *zap.Logger { return baseLogger }

// Sync flushes buffered entries; commands call it before exiting.
func Sync() { _ = baseLogger.Sync() }

func logf(l LogLevel, format string, args ...interface{}) {
	if !currentLevel.Enabled(l) {
		return
	}
	// Only format when there are args so literal % in pre-formatted messages survive.
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if ce := baseLogger.Check(l, msg); ce != nil {
		ce.Write()
	}
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level.
func TimeTrack(start time.Time, label string) {
	baseLogger.Debug(label, zap.Duration("took", time.Since(start)))
}
