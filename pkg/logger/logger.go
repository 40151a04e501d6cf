package logger

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value any
}

// Logger is the logging contract shared by the service packages.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Err is shorthand for the conventional error field.
func Err(err error) Field {
	return Field{Key: "err", Value: err}
}
