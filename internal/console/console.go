// Package console holds the process-wide logger.
package console

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared logger. Debug output is only written when DebugLevel > 0.
var Logger = New(Options{})

// Options configures a Console.
type Options struct {
	// Quiet drops everything except errors
	Quiet bool

	// LogFile, when set, receives a JSON copy of every entry with size-based rotation
	LogFile string
}

// Console wraps a zap sugared logger with printf-style helpers.
type Console struct {
	DebugLevel int

	mu    sync.Mutex
	sugar *zap.SugaredLogger
	file  *lumberjack.Logger
}

// New builds a Console writing human readable lines to stderr.
func New(opts Options) *Console {
	level := zap.DebugLevel
	if opts.Quiet {
		level = zap.ErrorLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level),
	}

	var file *lumberjack.Logger
	if opts.LogFile != "" {
		file = &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			zap.DebugLevel,
		))
	}

	return &Console{
		sugar: zap.New(zapcore.NewTee(cores...)).Sugar(),
		file:  file,
	}
}

// Configure replaces the shared logger, keeping its debug level.
func Configure(opts Options) {
	level := Logger.DebugLevel
	_ = Logger.Close()
	Logger = New(opts)
	Logger.DebugLevel = level
}

// Debug logs when debugging is enabled.
func (c *Console) Debug(format string, args ...interface{}) {
	if c.DebugLevel > 0 {
		c.sugar.Debugf(format, args...)
	}
}

// Info logs an informational message.
func (c *Console) Info(format string, args ...interface{}) {
	c.sugar.Infof(format, args...)
}

// Warn logs a recoverable problem.
func (c *Console) Warn(format string, args ...interface{}) {
	c.sugar.Warnf(format, args...)
}

// Error logs a failure.
func (c *Console) Error(format string, args ...interface{}) {
	c.sugar.Errorf(format, args...)
}

// Printf satisfies the Debugger interfaces of the services.
func (c *Console) Printf(format string, args ...interface{}) {
	c.sugar.Infof(format, args...)
}

// Close flushes buffered entries and closes the log file.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.sugar.Sync()
	if c.file != nil {
		err := c.file.Close()
		c.file = nil
		return err
	}
	return nil
}
