package logger

import (
	"io"
	"log/slog"
)

// AppLoggerはユースケースとインフラ層が共通で使うロガーです。
// args は slog と同じく key, value の組で渡します。
type AppLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) AppLogger
}

type appLogger struct {
	logger *slog.Logger
}

func NewAppLogger(logger *slog.Logger) AppLogger {
	return &appLogger{
		logger: logger,
	}
}

// NewTextLoggerはテキスト形式でwに出力するAppLoggerを生成します。
func NewTextLogger(w io.Writer, verbose bool) AppLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return NewAppLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// NewNopLoggerは何も出力しないAppLoggerを返します。テスト用です。
func NewNopLogger() AppLogger {
	return NewAppLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (l *appLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *appLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *appLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *appLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *appLogger) With(args ...any) AppLogger {
	return &appLogger{logger: l.logger.With(args...)}
}
