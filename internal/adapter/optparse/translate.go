package optparse

import (
	"fmt"
	"strconv"

	"xwayback/internal/domain"
)

// MaxVerbosity bounds the -verbose operand.
const MaxVerbosity = 20

// Result is the semantic outcome of parsing the legacy command line.
type Result struct {
	// ShowHelp and ShowVersion short-circuit the launcher before any
	// socket or process work.
	ShowHelp    bool
	ShowVersion bool

	// Verbose is the validated -verbose operand; VerboseSet reports
	// whether one was given. A trailing -verbose with no operand is
	// consumed without setting it.
	Verbose    int
	VerboseSet bool

	// Passthrough is every token the table did not consume, in its
	// original relative order.
	Passthrough []string
}

// Filter removes every table-matched option from args. An option whose
// spec requires an operand also consumes the following token when one
// exists; as the final token it is consumed bare. Non-matching tokens
// are forwarded verbatim. Filtering is idempotent over its own output.
func Filter(args []string, table []Spec) []string {
	passthrough := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		spec, ok := lookup(table, args[i])
		if !ok {
			passthrough = append(passthrough, args[i])
			continue
		}
		if spec.RequiresOperand && i+1 < len(args) {
			i++
		}
	}
	return passthrough
}

// Parse filters args against table and interprets the handled options.
// A malformed -verbose operand is a usage error, reported before any
// process is spawned.
func Parse(args []string, table []Spec) (Result, error) {
	res := Result{Passthrough: Filter(args, table)}
	for i := 0; i < len(args); i++ {
		spec, ok := lookup(table, args[i])
		if !ok {
			continue
		}
		operand := ""
		if spec.RequiresOperand && i+1 < len(args) {
			i++
			operand = args[i]
		}
		if spec.Ignore {
			continue
		}
		switch spec.Name {
		case "-help":
			res.ShowHelp = true
		case "-version", "-showconfig":
			res.ShowVersion = true
		case "-verbose":
			if operand == "" {
				continue
			}
			level, err := strconv.Atoi(operand)
			if err != nil {
				return res, domain.Errorf(domain.Usage, "-verbose: %q is not an integer", operand)
			}
			if level < 0 || level > MaxVerbosity {
				return res, domain.Errorf(domain.Usage, "-verbose: %d out of range [0, %d]", level, MaxVerbosity)
			}
			res.Verbose = level
			res.VerboseSet = true
		}
	}
	return res, nil
}

// XServerArgs builds the Xwayland argument vector: the synthesized
// prefix, then the pass-through set. wmFD is the window-manager channel
// descriptor number as seen by Xwayland.
func XServerArgs(width, height int32, wmFD int, res Result) []string {
	args := []string{
		"-rootless",
		"-terminate", "3",
		"-geometry", fmt.Sprintf("%dx%d", width, height),
		"-wm", strconv.Itoa(wmFD),
	}
	if res.VerboseSet {
		args = append(args, "-verbose", strconv.Itoa(res.Verbose))
	}
	return append(args, res.Passthrough...)
}

// HelpOptions returns the non-ignored specs for the -help listing.
func HelpOptions(table []Spec) []Spec {
	var opts []Spec
	for _, spec := range table {
		if !spec.Ignore {
			opts = append(opts, spec)
		}
	}
	return opts
}
