package app

import (
	"io"
	"os"

	"xwayback/internal/domain"
)

// mockChannels hands out os.Pipe ends and records the labels requested.
type mockChannels struct {
	labels []string
	failOn string
	pairs  [][2]*os.File
}

func (m *mockChannels) NewPair(label string) (*os.File, *os.File, error) {
	m.labels = append(m.labels, label)
	if label == m.failOn {
		return nil, nil, domain.Errorf(domain.Resource, "unable to create %s socket", label)
	}
	r, w, err := os.Pipe()
	if err != nil {
		return nil, nil, err
	}
	m.pairs = append(m.pairs, [2]*os.File{r, w})
	return r, w, nil
}

// spawnRecord captures one ProcessRunner.Start call.
type spawnRecord struct {
	path  string
	args  []string
	env   []string
	extra int
}

// mockRunner records spawns and returns a configured exit code from the
// first process's wait.
type mockRunner struct {
	spawns   []spawnRecord
	failPath string
	exitCode int
	signals  []os.Signal
}

func (m *mockRunner) Start(path string, args []string, env []string, extra []*os.File) (func() int, func(os.Signal) error, error) {
	if path == m.failPath {
		return nil, nil, domain.Errorf(domain.Resource, "failed to launch %s", path)
	}
	m.spawns = append(m.spawns, spawnRecord{path: path, args: args, env: env, extra: len(extra)})
	wait := func() int { return m.exitCode }
	sig := func(s os.Signal) error {
		m.signals = append(m.signals, s)
		return nil
	}
	return wait, sig, nil
}

// mockDiscoverer populates the registry via a configurable function.
type mockDiscoverer struct {
	called   bool
	populate func(reg *domain.Registry)
	err      error
}

func (m *mockDiscoverer) Discover(conn io.ReadWriter, reg *domain.Registry) error {
	m.called = true
	if m.err != nil {
		return m.err
	}
	if m.populate != nil {
		m.populate(reg)
	}
	return nil
}

// mockLogger is a no-op logger recording messages.
type mockLogger struct {
	errors []string
}

func (m *mockLogger) Debug(msg any, keyvals ...any) {}
func (m *mockLogger) Info(msg any, keyvals ...any)  {}
func (m *mockLogger) Warn(msg any, keyvals ...any)  {}
func (m *mockLogger) Error(msg any, keyvals ...any) {
	if s, ok := msg.(string); ok {
		m.errors = append(m.errors, s)
	}
}
