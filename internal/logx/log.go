package logx

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// LoggerProvider is satisfied by types carrying an optional *slog.Logger.
// A nil provider or a nil logger means silence.
type LoggerProvider interface{ Logger() *slog.Logger }

func Log(msg string, logger *slog.Logger, lvl slog.Level, skip int, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	_ = logger.With(args...).Handler().Handle(context.Background(), r)
}

func Debug(msg string, loggerProv LoggerProvider, args ...any) {
	if loggerProv == nil {
		return
	}
	Log(msg, loggerProv.Logger(), slog.LevelDebug, 3, args...)
}
func Info(msg string, loggerProv LoggerProvider, args ...any) {
	if loggerProv == nil {
		return
	}
	Log(msg, loggerProv.Logger(), slog.LevelInfo, 3, args...)
}
func Warn(msg string, loggerProv LoggerProvider, args ...any) {
	if loggerProv == nil {
		return
	}
	Log(msg, loggerProv.Logger(), slog.LevelWarn, 3, args...)
}

func isErr(err error, loggerProv LoggerProvider, lvl slog.Level, args ...any) bool {
	if err == nil {
		return false
	}
	if loggerProv != nil {
		if logger := loggerProv.Logger(); logger != nil {
			// skip reaches past Err to its caller
			if errs, ok := err.(interface{ Unwrap() []error }); ok {
				for _, err := range errs.Unwrap() {
					Log(err.Error(), logger, lvl, 4, args...)
				}
			} else {
				Log(err.Error(), logger, lvl, 4, args...)
			}
		}
	}
	return true
}

// Err logs err at lvl and passes it through; a nil err stays nil.
func Err(err error, loggerProv LoggerProvider, lvl slog.Level, args ...any) error {
	if isErr(err, loggerProv, lvl, args...) {
		return err
	}
	return nil
}
