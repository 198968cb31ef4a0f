package app

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"xwayback/internal/adapter/optparse"
	"xwayback/internal/domain"
)

// Config holds the resolved runtime configuration for one session.
type Config struct {
	CompositorPath string
	XServerPath    string
	OutputOverride string
	Args           optparse.Result
}

// Service orchestrates the session startup: channel creation, compositor
// spawn, output bootstrap, X server spawn, and supervision.
type Service struct {
	channels domain.ChannelFactory
	runner   domain.ProcessRunner
	discover domain.OutputDiscoverer
	logger   domain.Logger
}

// NewService creates the launcher service with all dependencies injected.
func NewService(cf domain.ChannelFactory, pr domain.ProcessRunner, od domain.OutputDiscoverer, lg domain.Logger) *Service {
	return &Service{channels: cf, runner: pr, discover: od, logger: lg}
}

// Extra files are appended after stderr, so the n-th handed endpoint is
// descriptor 3+n in the child.
const firstChildFD = 3

// Run performs the startup choreography and then blocks until the
// compositor exits, returning its exit code as the launcher's own. The
// X server is disposable and is never waited on; the compositor's
// lifetime brackets the whole session.
func (s *Service) Run(cfg Config) (int, error) {
	// One control/display channel for the launcher's own bootstrap, one
	// display channel for the X server, one window-manager channel.
	bootstrapEnd, compositorDisplayEnd, err := s.channels.NewPair("display")
	if err != nil {
		return 0, err
	}
	xserverWaylandEnd, compositorWaylandEnd, err := s.channels.NewPair("xserver")
	if err != nil {
		return 0, err
	}
	xserverWMEnd, compositorWMEnd, err := s.channels.NewPair("wm")
	if err != nil {
		return 0, err
	}

	compositorExtra := []*os.File{compositorDisplayEnd, compositorWaylandEnd, compositorWMEnd}
	compositorArgs := make([]string, len(compositorExtra))
	for i := range compositorExtra {
		compositorArgs[i] = strconv.Itoa(firstChildFD + i)
	}

	compositorEnv := scrubSessionEnv(os.Environ())
	waitCompositor, signalCompositor, err := s.runner.Start(cfg.CompositorPath, compositorArgs, compositorEnv, compositorExtra)
	if err != nil {
		return 0, err
	}
	// Ownership of the transferred endpoints passed to the compositor;
	// drop the launcher's copies right away.
	for _, f := range compositorExtra {
		_ = f.Close()
	}
	s.logger.Info("compositor started", "path", cfg.CompositorPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		// Stop guarantees no further sends, so the close releases the
		// forwarding goroutine.
		signal.Stop(sigCh)
		close(sigCh)
	}()
	go func() {
		for sig := range sigCh {
			s.logger.Debug("forwarding signal to compositor", "signal", sig)
			if err := signalCompositor(sig); err != nil {
				s.logger.Error("forward signal failed", "signal", sig, "err", err)
			}
		}
	}()

	// The launcher becomes a protocol client over its retained endpoint:
	// the X server's target geometry must be known at spawn time, it
	// cannot be renegotiated later.
	reg := domain.NewRegistry()
	if err := s.discover.Discover(bootstrapEnd, reg); err != nil {
		return 0, err
	}
	reg.Select(cfg.OutputOverride)
	output, err := reg.Finalize()
	if err != nil {
		return 0, err
	}
	s.logger.Info("selected output",
		"make", output.Make, "model", output.Model,
		"geometry", strconv.Itoa(int(output.Width))+"x"+strconv.Itoa(int(output.Height)))

	// X server descriptor layout: extra[0] is its Wayland connection
	// (fd 3, named by WAYLAND_SOCKET), extra[1] the window-manager
	// channel (fd 4, named by -wm).
	xserverExtra := []*os.File{xserverWaylandEnd, xserverWMEnd}
	xserverArgs := optparse.XServerArgs(output.Width, output.Height, firstChildFD+1, cfg.Args)
	env := xserverEnv(os.Environ(), strconv.Itoa(firstChildFD))

	if _, _, err := s.runner.Start(cfg.XServerPath, xserverArgs, env, xserverExtra); err != nil {
		return 0, err
	}
	for _, f := range xserverExtra {
		_ = f.Close()
	}
	s.logger.Info("X server started", "path", cfg.XServerPath)

	code := waitCompositor()
	_ = bootstrapEnd.Close()
	s.logger.Info("compositor exited", "code", code)
	return code, nil
}
