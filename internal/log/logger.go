package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

//go:generate mockgen -destination=../../generated/mocks/logger.go -package=mocks dmirror/internal/log Logger

//Logger is the logging interface injected into every service of the application.
//It is satisfied by *zap.Logger and mocked in tests.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Sync() error
}

//New builds a zap-backed Logger. If logToStd is true, log records are rendered
//with the console encoder, otherwise as JSON lines. Both go to stderr, so that
//stdout stays reserved for the synchronization report.
func New(lvl Level, logToStd bool) (Logger, error) {
	encoding := "json"
	if logToStd {
		encoding = "console"
	}
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(levelsMapping[lvl]),
		Encoding: encoding,
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "lvl",
			TimeKey:        "ts",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			StacktraceKey:  "stack",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}.Build()
}
