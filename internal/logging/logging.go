package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. JSON output so log collectors can index the
// tenant_id / actor_id fields the handlers attach.
func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return l
}
