// Command xwayback lets unmodified X11 clients run on a Wayland-only
// system. It launches the wayback-compositor and Xwayland in succession,
// bridges them over anonymous socket pairs, and behaves like a
// traditional X server towards its caller.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"xwayback/internal/adapter/logger"
	"xwayback/internal/adapter/optparse"
	"xwayback/internal/adapter/proc"
	"xwayback/internal/adapter/wayland"
	"xwayback/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	res, parseErr := optparse.Parse(args, optparse.Table)

	level := log.InfoLevel
	if res.VerboseSet {
		level = logger.LevelFromVerbosity(res.Verbose)
	}
	lg := logger.New("Xwayback", level)

	if parseErr != nil {
		lg.Error(parseErr.Error())
		return 1
	}

	// -help, -version and -showconfig terminate before any socket or
	// process work. Their output bypasses the leveled logger so a low
	// -verbose operand cannot suppress it.
	if res.ShowHelp {
		printHelp(os.Stderr)
		return 0
	}
	if res.ShowVersion {
		printBanner(os.Stderr)
		return 0
	}

	compositor, xserver, err := app.ResolvePaths()
	if err != nil {
		lg.Error(err.Error())
		return 1
	}

	svc := app.NewService(
		proc.NewSocketPairFactory(),
		proc.NewRunner(lg),
		wayland.NewClient(lg),
		lg,
	)

	code, err := svc.Run(app.Config{
		CompositorPath: compositor,
		XServerPath:    xserver,
		OutputOverride: os.Getenv(app.EnvOutputOverride),
		Args:           res,
	})
	if err != nil {
		lg.Error(err.Error())
		return 1
	}
	return code
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "Wayback <https://wayback.freedesktop.org/> X.Org compatibility layer")
	fmt.Fprintf(w, "Version %s\n", version)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Wayback <https://wayback.freedesktop.org/> X.Org compatibility layer")
	fmt.Fprintln(w, "Report bugs to <https://gitlab.freedesktop.org/wayback/wayback/-/issues>.")
	fmt.Fprintf(w, "Usage: %s [:<display>] [option]\n", os.Args[0])
	for _, opt := range optparse.HelpOptions(optparse.Table) {
		name := opt.Name
		if opt.RequiresOperand {
			name += " opt"
		}
		fmt.Fprintf(w, "\t%s\t\t %s\n", name, opt.Description)
	}
}
