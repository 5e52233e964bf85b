package domain

// Logger defines the interface for logging
type Logger interface {
	Debug(message string)
	Error(message string)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(string) {}
func (NopLogger) Error(string) {}
