package log

import (
	"go.uber.org/zap"
)

// Fields to be added to a logger
type Fields map[string]interface{}

// Logger contains logger and fields
type Logger struct {
	logger *zap.SugaredLogger
	fields []interface{}
}

var zapSugaredLogger *zap.SugaredLogger

func init() {
	zapLogger, _ := zap.NewProduction(zap.AddCallerSkip(1))
	zapSugaredLogger = zapLogger.Sugar()
}

// SetDebug swaps the global logger for a development one (console encoder, debug level).
// Loggers created before the call keep the previous sink.
func SetDebug(debug bool) {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return
	}
	zapSugaredLogger = zapLogger.Sugar()
}

// Sync flushes buffered entries, call it before the process exits
func Sync() {
	_ = zapSugaredLogger.Sync()
}

// Log returns an empty field logger
func Log() Logger {
	return Logger{
		logger: zapSugaredLogger,
		fields: []interface{}{},
	}
}

// WithField add a key/value pair to its fields
func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, len(l.fields), len(l.fields)+2)
	copy(fields, l.fields)
	l.fields = append(fields, key, value)
	return l
}

// WithFields add multiple key/value pairs to its fields
func (l Logger) WithFields(kvs Fields) Logger {
	for k, v := range kvs {
		l = l.WithField(k, v)
	}
	return l
}

func (l Logger) Debug(args ...interface{}) {
	l.logger.With(l.fields...).Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.logger.With(l.fields...).Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.logger.With(l.fields...).Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.logger.With(l.fields...).Error(args...)
}

func (l Logger) Panic(args ...interface{}) {
	l.logger.With(l.fields...).Panic(args...)
}
