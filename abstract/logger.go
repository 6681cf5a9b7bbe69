package abstract

import "log"

// Logger is the minimal logging surface the library needs. The CLI plugs
// in a structured logger; tests and examples run with the default.
type Logger interface {
	Infof(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

type defaultLogger struct{}

// DefaultLogger logs through the standard log package.
var DefaultLogger defaultLogger

func (defaultLogger) Infof(format string, args ...interface{})  { log.Printf(format, args...) }
func (defaultLogger) Fatalf(format string, args ...interface{}) { log.Fatalf(format, args...) }

type nopLogger struct{}

// NopLogger discards everything.
var NopLogger nopLogger

func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}
