package logger

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// New создает JSON-логгер с уровнем level. Неизвестный уровень трактуется как info.
func New(out io.Writer, level string) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}
