package logger

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// lineWriter turns each write into one log record at a fixed level.
type lineWriter func(line string)

func (w lineWriter) Write(p []byte) (int, error) {
	if line := bytes.TrimRight(p, "\r\n"); len(line) > 0 {
		w(string(line))
	}

	return len(p), nil
}

func warnWriter(l Interface) lineWriter {
	return func(line string) { l.Warn(line) }
}

func infoWriter(l Interface) lineWriter {
	return func(line string) { l.Info(line) }
}

func errorWriter(l Interface) lineWriter {
	return func(line string) { l.Error(line) }
}

// SetupStdLog sends std log output to l at warn level.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(warnWriter(l))
}

// SetupGin sends gin's debug output to l at info and its errors at error level.
func SetupGin(l Interface) {
	gin.DefaultWriter = infoWriter(l)
	gin.DefaultErrorWriter = errorWriter(l)
}

// LeveledAdapter satisfies the key/value logger of go-retryablehttp.
type LeveledAdapter struct {
	l Interface
}

// Leveled -.
func Leveled(l Interface) LeveledAdapter {
	return LeveledAdapter{l: l}
}

func (a LeveledAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.l.Error(msg, keysAndValues...)
}

func (a LeveledAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.l.Info(msg, keysAndValues...)
}

func (a LeveledAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.l.Debug(msg, keysAndValues...)
}

func (a LeveledAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.l.Warn(msg, keysAndValues...)
}
