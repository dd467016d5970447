package core

// Logger is any service that app events and errors can be reported to.
// `args` may carry errors and context values; implementations decide how to
// surface them.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
