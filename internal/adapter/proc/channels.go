// Package proc provides the OS-level adapters: anonymous socket pair
// creation and child process spawning with descriptor handoff.
package proc

import (
	"os"

	"golang.org/x/sys/unix"

	"xwayback/internal/domain"
)

// SocketPairFactory creates connected AF_UNIX stream pairs.
type SocketPairFactory struct{}

// NewSocketPairFactory returns a factory for anonymous local channels.
func NewSocketPairFactory() *SocketPairFactory {
	return &SocketPairFactory{}
}

// NewPair creates a connected socket pair. Both endpoints are
// close-on-exec; the remote end reaches a child only through an explicit
// ExtraFiles handoff, which re-dups it without the flag.
func (f *SocketPairFactory) NewPair(label string) (local, remote *os.File, err error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, nil, domain.Errorf(domain.Resource, "unable to create %s socket: %w", label, err)
	}
	local = os.NewFile(uintptr(fds[0]), label+"-local")
	remote = os.NewFile(uintptr(fds[1]), label+"-remote")
	return local, remote, nil
}

var _ domain.ChannelFactory = (*SocketPairFactory)(nil)
