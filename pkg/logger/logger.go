// Package logger wraps logrus with the small, fixed vocabulary the rest
// of the module uses: a namespace per component (serve, docdb, web)
// and structured fields for everything else. Grounded on the teacher's
// pkg/logger.WithDomain/WithNamespace pattern (see pkg/couchdb/couchdb.go),
// with the per-tenant "domain" dropped since this service has none.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is an alias kept for call-site parity with the teacher's
// logger.Fields usage.
type Fields = logrus.Fields

var (
	mu  sync.RWMutex
	std = logrus.New()
)

func init() {
	std.SetOutput(os.Stderr)
	std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	std.SetLevel(logrus.InfoLevel)
}

// SetLevel parses and applies a level name (e.g. "debug", "info",
// "warn"), as bound by the --log-level flag in cmd/root.go.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	std.SetLevel(lvl)
	return nil
}

// SetOutput redirects the logger's output, primarily for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

// WithNamespace returns an entry tagged with the emitting component, the
// way every teacher log line is tagged with its subsystem.
func WithNamespace(namespace string) *logrus.Entry {
	mu.RLock()
	defer mu.RUnlock()
	return std.WithField("nspace", namespace)
}
