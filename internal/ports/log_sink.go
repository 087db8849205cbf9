package ports

// LogSink receives user-facing output. Implementations must not block for
// long and must never panic.
type LogSink interface {
	PushOutput(text string)
	PushError(text string)
}
