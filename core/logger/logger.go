package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

func Info(msg string, args ...any) {
	emit(log.Info(), msg, args)
}

func Warn(msg string, args ...any) {
	emit(log.Warn(), msg, args)
}

func Error(msg string, args ...any) {
	emit(log.Error(), msg, args)
}

// emit accepts alternating key/value pairs; a trailing value without a key
// (commonly a bare error) is attached under "detail".
func emit(e *zerolog.Event, msg string, args []any) {
	n := len(args)
	for i := 0; i+1 < n; i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		e = e.Interface(key, args[i+1])
	}
	if n%2 == 1 {
		e = e.Interface("detail", args[n-1])
	}
	e.Msg(msg)
}
