// Package optparse translates the legacy single-dash X server CLI
// dialect into the argument vector Xwayland understands. Options are
// matched against a static table; recognized options are consumed (with
// their operand when they take one) and everything else passes through
// verbatim.
package optparse

// Spec describes one legacy option. Ignored options are consumed and
// dropped without further effect; non-ignored options are consumed and
// acted upon by the launcher. Neither is ever forwarded.
type Spec struct {
	Name            string
	Description     string
	RequiresOperand bool
	Ignore          bool
}

func ignored(name string, operand bool) Spec {
	return Spec{Name: name, RequiresOperand: operand, Ignore: true}
}

// Table is the full legacy option surface.
var Table = []Spec{
	// Options handled by xwayback.
	{Name: "-help", Description: "show help page"},
	{Name: "-showconfig", Description: "alias to -version"},
	{Name: "-version", Description: "show Xwayback version"},
	{Name: "-verbose", Description: "set log verbosity (0-20)", RequiresOperand: true},

	// Ignored options.
	ignored("-decorate", false),
	ignored("-enable-ei-portal", false),
	ignored("-fullscreen", false),
	ignored("-geometry", true),
	ignored("-glamor", true),
	ignored("-hidpi", false),
	ignored("-host-grab", false),
	ignored("-noTouchPointerEmulation", false),
	ignored("-force-xrandr-emulation", false),
	ignored("-nokeymap", false),
	ignored("-rootless", false),
	ignored("-shm", false),
	ignored("-wm", true),

	// Xorg(1)-specific options.
	ignored("-allowMouseOpenFail", false),
	ignored("-allowNonLocalXvidtune", false),
	ignored("-bgamma", true),
	ignored("-bpp", true), // no longer supported by upstream Xorg(1)
	ignored("-config", true),
	ignored("-configdir", true),
	ignored("-configure", true),
	ignored("-crt", true),
	ignored("-depth", true),
	ignored("-disableVidMode", false),
	ignored("-fbbbp", true),
	ignored("-gamma", true),
	ignored("-ggamma", true),
	ignored("-ignoreABI", false),
	ignored("-isolateDevice", true),
	ignored("-keeptty", false),
	ignored("-keyboard", true),
	ignored("-layout", true),
	ignored("-logverbose", true),
	ignored("-modulepath", true),
	ignored("-noautoBindCPU", false),
	ignored("-nosilk", false),
	ignored("-novtswitch", false),
	ignored("-pointer", true),
	ignored("-quiet", false),
	ignored("-rgamma", true),
	ignored("-sharevts", false),
	ignored("-screen", true),
	ignored("-showDefaultModulePath", false),
	ignored("-showDefaultLibPath", false),
	ignored("-showopts", false),
	ignored("-weight", true),
}

func lookup(table []Spec, name string) (Spec, bool) {
	for _, spec := range table {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}
