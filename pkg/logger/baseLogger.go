package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level    string
	Encoding string
}

// BaseLogger пишет сообщения через zap, дублируя их в writer (если задан).
type BaseLogger struct {
	mu     sync.Mutex
	prefix string
	writer io.Writer
	zl     *zap.SugaredLogger
}

func NewLoggerWithConfig(writer io.Writer, prefix string, cfg Config) *BaseLogger {
	return &BaseLogger{
		writer: writer,
		prefix: prefix,
		zl:     newZap(cfg).Sugar(),
	}
}

// NewNopLogger используется в тестах.
func NewNopLogger() *BaseLogger {
	return &BaseLogger{zl: zap.NewNop().Sugar()}
}

func newZap(cfg Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func (l *BaseLogger) Log(format string, v ...interface{}) {
	l.write(zapcore.InfoLevel, format, v...)
}

func (l *BaseLogger) Warn(format string, v ...interface{}) {
	l.write(zapcore.WarnLevel, format, v...)
}

func (l *BaseLogger) Error(format string, v ...interface{}) {
	l.write(zapcore.ErrorLevel, format, v...)
}

func (l *BaseLogger) write(level zapcore.Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, v...)
	if l.prefix != "" {
		message = l.prefix + " " + message
	}
	if l.writer != nil {
		fmt.Fprintln(l.writer, message) // пишем в writer
	}

	switch level {
	case zapcore.WarnLevel:
		l.zl.Warn(message)
	case zapcore.ErrorLevel:
		l.zl.Error(message)
	default:
		l.zl.Info(message)
	}
}

// With добавляет поля только в вывод zap, writer получает текст как есть.
func (l *BaseLogger) With(args ...interface{}) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &BaseLogger{
		writer: l.writer,
		prefix: l.prefix,
		zl:     l.zl.With(args...),
	}
}

func (l *BaseLogger) WithPrefix(extraPrefix string) *BaseLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &BaseLogger{
		writer: l.writer,
		prefix: l.prefix + " " + extraPrefix,
		zl:     l.zl,
	}
}

func (l *BaseLogger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

func (l *BaseLogger) SetWriter(writer io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = writer
}

func (l *BaseLogger) Sync() error {
	return l.zl.Sync()
}
