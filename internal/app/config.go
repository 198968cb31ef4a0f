package app

import (
	"os"
	"strings"

	"xwayback/internal/domain"
)

// Compiled-in collaborator paths, overridable at build time via -ldflags.
var (
	DefaultCompositorPath = "/usr/libexec/wayback-compositor"
	DefaultXServerPath    = "/usr/bin/Xwayland"
)

// Environment overrides honored by the launcher.
const (
	EnvCompositorPath = "WAYBACK_COMPOSITOR_PATH"
	EnvXServerPath    = "XWAYLAND_PATH"
	EnvOutputOverride = "WAYBACK_OUTPUT"
)

// ResolvePaths resolves the two collaborator executables from their
// environment overrides, falling back to the compiled-in defaults, and
// verifies both are executable before any socket or process work starts.
func ResolvePaths() (compositor, xserver string, err error) {
	compositor = envOr(EnvCompositorPath, DefaultCompositorPath)
	xserver = envOr(EnvXServerPath, DefaultXServerPath)

	if !isExecutable(compositor) {
		return "", "", domain.Errorf(domain.Environment,
			"wayback-compositor executable %s not found or not executable", compositor)
	}
	if !isExecutable(xserver) {
		return "", "", domain.Errorf(domain.Environment,
			"Xwayland executable %s not found or not executable", xserver)
	}
	return compositor, xserver, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}

// scrubSessionEnv drops the inherited display-session variables from
// base. Both children get a scrubbed environment: the caller's Wayland
// session must never leak into the new one.
func scrubSessionEnv(base []string) []string {
	env := make([]string, 0, len(base))
	for _, kv := range base {
		if strings.HasPrefix(kv, "WAYLAND_DISPLAY=") || strings.HasPrefix(kv, "WAYLAND_SOCKET=") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// xserverEnv builds the X server's environment: the scrubbed base plus
// the Wayland socket descriptor it must connect through.
func xserverEnv(base []string, waylandFD string) []string {
	return append(scrubSessionEnv(base), "WAYLAND_SOCKET="+waylandFD)
}
