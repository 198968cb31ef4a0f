package domain

import (
	"io"
	"os"
)

// Logger provides leveled structured logging.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// ChannelFactory creates connected anonymous local socket pairs. One
// endpoint stays with the launcher, the other is handed to a child
// process at spawn time.
type ChannelFactory interface {
	NewPair(label string) (local, remote *os.File, err error)
}

// ProcessRunner spawns a child process. The extra files are appended
// after stderr, so the first becomes descriptor 3 in the child, the
// second descriptor 4, and so on. A nil env inherits the launcher's
// environment. The returned wait blocks until the child exits and
// reports its exit code; signal delivers a signal to the child.
type ProcessRunner interface {
	Start(path string, args []string, env []string, extra []*os.File) (wait func() int, signal func(os.Signal) error, err error)
}

// OutputDiscoverer populates reg by acting as a display-protocol client
// over conn. It returns once every advertised output is complete, and
// fails when the connection breaks or the compositor misbehaves.
type OutputDiscoverer interface {
	Discover(conn io.ReadWriter, reg *Registry) error
}
