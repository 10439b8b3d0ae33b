package i

// Logger is the leveled logger handed to every component.
type Logger interface {
	Info(message string)
	Warning(message string)
	Error(message string)
}
