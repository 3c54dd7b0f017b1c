package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger so services can take a single injected
// dependency without caring about the backend.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing JSON lines to stdout at the given level.
// Unknown level strings fall back to info.
func New(level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Default returns an info-level logger.
func Default() *Logger {
	return New("info")
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.zl.Debug().Fields(mergeFields(fields)).Msg(msg)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.zl.Info().Fields(mergeFields(fields)).Msg(msg)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.zl.Warn().Fields(mergeFields(fields)).Msg(msg)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.zl.Error().Fields(mergeFields(fields)).Msg(msg)
}

func WithField(key string, value interface{}) map[string]interface{} {
	return map[string]interface{}{key: value}
}

func WithFields(fields map[string]interface{}) map[string]interface{} {
	return fields
}

func mergeFields(fields []map[string]interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	result := make(map[string]interface{})
	for _, f := range fields {
		for k, v := range f {
			result[k] = v
		}
	}
	return result
}
