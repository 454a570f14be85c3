package logger

import "log"

// Level là ngưỡng log, message dưới ngưỡng sẽ bị bỏ qua
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger được inject vào các service thay vì gọi log trực tiếp,
// để test thay bằng implementation câm được
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger ghi ra log chuẩn kèm prefix theo mức
type DefaultLogger struct {
	level Level
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.printf(DebugLevel, "[DEBUG] ", format, v...)
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.printf(InfoLevel, "[INFO] ", format, v...)
}

func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	l.printf(WarnLevel, "[WARN] ", format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.printf(ErrorLevel, "[ERROR] ", format, v...)
}

func (l *DefaultLogger) printf(level Level, prefix, format string, v ...interface{}) {
	if l.level <= level {
		log.Printf(prefix+format, v...)
	}
}
