package logger

type Logger interface {
	Log(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	// With возвращает логгер со структурными полями (пары ключ-значение).
	With(args ...interface{}) Logger
	SetPrefix(prefix string)
}
