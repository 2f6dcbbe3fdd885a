// SPDX-License-Identifier: EPL-2.0

// Package log provides the logger used by the engine and the command.
package log

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv enables debug logging when it parses as true.
const DebugEnv = "RTMIX_DEBUG"

var debug bool

// Logger is the subset of logrus the engine logs through.
type Logger interface {
	logrus.FieldLogger
}

func init() {
	debug = debugFromEnv()
}

func debugFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(DebugEnv))
	if err != nil {
		return false
	}
	return v
}

// GetLogger returns a new logger instance writing to stderr.
func GetLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops everything, for tests and quiet runs.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
