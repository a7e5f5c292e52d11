package petal

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// captureLogs routes diagnostics into a test hook for the duration of t.
func captureLogs(t *testing.T) *logtest.Hook {
	t.Helper()
	l, hook := logtest.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })
	return hook
}

// installMetrics installs fresh, unregistered counters for the duration of t.
func installMetrics(t *testing.T) *Metrics {
	t.Helper()
	m := NewMetrics(nil)
	SetMetrics(m)
	t.Cleanup(func() { SetMetrics(nil) })
	return m
}

// installAssets installs an asset server for the duration of t.
func installAssets(t *testing.T, a *AssetServer) {
	t.Helper()
	prev := globalAssets
	globalAssets = a
	t.Cleanup(func() { globalAssets = prev })
}

// warnings returns the warn-level entries recorded by hook.
func warnings(hook *logtest.Hook) []logrus.Entry {
	var out []logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			out = append(out, *e)
		}
	}
	return out
}
