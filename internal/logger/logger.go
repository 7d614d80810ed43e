package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Production emits JSON, development a
// console format with short callers. Records below error level never carry a caller.
func New(production bool) (*zap.Logger, error) {
	var base zap.Config
	if production {
		base = zap.NewProductionConfig()
	} else {
		base = zap.NewDevelopmentConfig()
		base.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	enc := base.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	encNoCaller := enc
	encNoCaller.CallerKey = ""

	encWithCaller := enc
	encWithCaller.CallerKey = "caller"

	var encA, encB zapcore.Encoder
	if production {
		encA = zapcore.NewJSONEncoder(encNoCaller)
		encB = zapcore.NewJSONEncoder(encWithCaller)
	} else {
		encA = zapcore.NewConsoleEncoder(encNoCaller)
		encB = zapcore.NewConsoleEncoder(encWithCaller)
	}

	ws := zapcore.Lock(zapcore.AddSync(os.Stdout))
	minLevel := base.Level.Level()

	coreNoCaller := zapcore.NewCore(encA, ws, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel && lvl < zapcore.ErrorLevel
	}))
	coreWithCaller := zapcore.NewCore(encB, ws, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel && lvl >= zapcore.ErrorLevel
	}))

	return zap.New(
		zapcore.NewTee(coreNoCaller, coreWithCaller),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// GormWriter adapts a zap logger to gorm's logger.Writer interface.
type GormWriter struct {
	sugar *zap.SugaredLogger
}

// NewGormWriter returns a writer that forwards gorm log lines to l.
func NewGormWriter(l *zap.Logger) GormWriter {
	return GormWriter{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar().Named("gorm")}
}

// Printf implements gorm's logger.Writer.
func (w GormWriter) Printf(format string, args ...interface{}) {
	w.sugar.Info(fmt.Sprintf(format, args...))
}
