package observability

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/chaser/config"
)

// ServiceName is the root logger name
const ServiceName = "chaser"

var (
	globalLogger atomic.Pointer[zap.Logger]
	once         sync.Once
)

// Initialize builds the global logger once
// The screen owns stdout, so output only ever goes to cfg.LogFile; an empty LogFile yields a Nop logger
func Initialize(cfg config.LoggerConfig) *zap.Logger {
	once.Do(func() {
		if cfg.LogFile == "" {
			globalLogger.Store(zap.NewNop())
			return
		}

		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		globalLogger.Store(newLogger(cfg.Level, writer))
	})
	return GetLogger()
}

// InitializeWithWriter is Initialize for an explicit sink, used by tests
func InitializeWithWriter(level string, ws zapcore.WriteSyncer) *zap.Logger {
	once.Do(func() {
		globalLogger.Store(newLogger(level, ws))
	})
	return GetLogger()
}

func newLogger(level string, ws zapcore.WriteSyncer) *zap.Logger {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, lvl)
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(ServiceName)
	zap.ReplaceGlobals(logger)
	return logger
}

// GetLogger returns the global logger, or a Nop logger before Initialize
func GetLogger() *zap.Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sync flushes buffered entries; errors from syncing non-file sinks are ignored
func Sync() {
	_ = GetLogger().Sync()
}

// ResetForTest clears the global logger. Tests only.
func ResetForTest() {
	globalLogger.Store(nil)
	once = sync.Once{}
	zap.ReplaceGlobals(zap.NewNop())
}
