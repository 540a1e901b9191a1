package core

// Logger defines structured logging operations for the domain layer.
// Implementations live in infrastructure so use cases stay free of any
// concrete logging library.
type Logger interface {
	// Debug logs detailed diagnostic messages
	Debug(message string, fields map[string]any)
	// Info logs operational messages
	Info(message string, fields map[string]any)
	// Warn logs warnings
	Warn(message string, fields map[string]any)
	// Error logs errors
	Error(message string, fields map[string]any)
	// Flush writes any buffered entries to their destination
	Flush() error
}
