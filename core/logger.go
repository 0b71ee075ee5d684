package core

// Logger is the app-wide logging contract. Implementations live in
// services/logger; extra args are printed verbatim after the message.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
