package logger

import (
	"github.com/sirupsen/logrus"
)

// Config holds logging configuration
type Config struct {
	Level string
}

// logrusService wraps logrus.Logger to provide consistent logging across the application
type logrusService struct {
	*logrus.Logger
}

// NewService creates a new logger instance with the specified configuration
func NewService(config *Config) (Logger, error) {
	l := logrus.New()

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)

	return &logrusService{l}, nil
}

// LogError logs an error with context and returns an error that can be returned to the client
func (l *logrusService) LogError(err error, context string) error {
	l.WithError(err).Error(context)
	return err
}

// LogErrorf logs a formatted error message with context and returns an error
func (l *logrusService) LogErrorf(err error, format string, args ...interface{}) error {
	l.WithError(err).Errorf(format, args...)
	return err
}

// LogFatal logs a fatal error and exits the application
func (l *logrusService) LogFatal(err error, context string) {
	l.WithError(err).Fatal(context)
}

// LogInfo logs an informational message with optional fields
func (l *logrusService) LogInfo(message string, fields map[string]interface{}) {
	if fields != nil {
		l.WithFields(fields).Info(message)
	} else {
		l.Info(message)
	}
}

// LogDebug logs a debug message with optional fields
func (l *logrusService) LogDebug(message string, fields map[string]interface{}) {
	if fields != nil {
		l.WithFields(fields).Debug(message)
	} else {
		l.Debug(message)
	}
}

// LogWarn logs a warning message with optional fields
func (l *logrusService) LogWarn(message string, fields map[string]interface{}) {
	if fields != nil {
		l.WithFields(fields).Warn(message)
	} else {
		l.Warn(message)
	}
}
