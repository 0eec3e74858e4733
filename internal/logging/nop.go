package logging

// NopLogger discards everything.
type NopLogger struct{}

var _ Logger = NopLogger{}

// NewNop returns a Logger that discards all messages.
func NewNop() NopLogger {
	return NopLogger{}
}

// Debug discards the message.
func (NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (NopLogger) Error(string, ...any) {}
