package config

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger builds the console logger for the configured level. Messages below
// error go to stdout, errors to stderr. Level "none" discards everything.
func (c LoggingConfig) Logger(stdout, stderr io.Writer) *zap.Logger {
	var low zapcore.Level
	switch c.Level {
	case LevelDebug:
		low = zapcore.DebugLevel
	case LevelNone:
		return zap.NewNop()
	default:
		low = zapcore.InfoLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(ec)

	lowCore := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(stdout)),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return low <= lvl && lvl < zapcore.ErrorLevel
		}))
	highCore := zapcore.NewCore(enc.Clone(), zapcore.Lock(zapcore.AddSync(stderr)),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel
		}))

	return zap.New(zapcore.NewTee(lowCore, highCore)).Named("docket")
}
