package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	zl    zerolog.Logger
	level zerolog.Level
}

func (z zerologLogger) Printf(message string, args ...interface{}) {
	z.zl.WithLevel(z.level).Msg(fmt.Sprintf(message, args...))
}

// NewZerolog adapts a zerolog.Logger to the Logger interface. Every message is written at the
// specified level.
func NewZerolog(zl zerolog.Logger, level zerolog.Level) Logger {
	return zerologLogger{zl: zl, level: level}
}

// NewConsole returns a Logger that writes human-readable, timestamped debug lines to w.
func NewConsole(w io.Writer, noColor bool) Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: timestampFormat}
	return NewZerolog(zerolog.New(out).With().Timestamp().Logger(), zerolog.DebugLevel)
}
