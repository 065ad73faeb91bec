// Package logger configures the shared logrus logger for the daemon.
package logger

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init sets up the default logger. Debug enables debug-level output.
func Init(debug bool) {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// WithField returns an entry with a single structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}

// WithError returns an entry with the error attached.
func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}

func Debugf(format string, args ...interface{}) { log.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { log.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { log.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { log.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { log.Fatalf(format, args...) }
