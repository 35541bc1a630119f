package utils

import (
	"log"
	"os"
)

// Logger is a thin leveled wrapper over the standard logger. A nil
// *Logger is safe to call, so components can treat logging as optional.
type Logger struct {
	l *log.Logger
}

func NewLogger() *Logger {
	return &Logger{l: log.New(os.Stderr, "", log.LstdFlags|log.LUTC)}
}

func (lg *Logger) Printf(format string, args ...any) {
	if lg == nil || lg.l == nil {
		return
	}
	lg.l.Printf("INFO "+format, args...)
}

func (lg *Logger) Warnf(format string, args ...any) {
	if lg == nil || lg.l == nil {
		return
	}
	lg.l.Printf("WARN "+format, args...)
}

func (lg *Logger) Errorf(format string, args ...any) {
	if lg == nil || lg.l == nil {
		return
	}
	lg.l.Printf("ERROR "+format, args...)
}
