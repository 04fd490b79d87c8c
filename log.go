package blurpass

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = newDefaultLogger(os.Stderr)

func newDefaultLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the package logger. A nil logger restores the default,
// which writes warnings and errors to stderr.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDefaultLogger(os.Stderr)
	}
	logger = l
}
