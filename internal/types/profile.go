package types

import (
	"fmt"
	"strings"
)

// Target names the editor whose launch configuration is being edited.
type Target string

const (
	TargetZed    Target = "zed"    // .zed/debug.json
	TargetVSCode Target = "vscode" // .vscode/launch.json
)

// Targets returns all valid targets, primary first.
func Targets() []Target {
	return []Target{TargetZed, TargetVSCode}
}

// ParseTarget converts a flag value into a Target (case-insensitive).
func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(s)) {
	case TargetZed:
		return TargetZed, nil
	case TargetVSCode:
		return TargetVSCode, nil
	default:
		return "", fmt.Errorf("unknown target %q (valid: zed, vscode)", s)
	}
}

// RequestLaunch is the only request mode tink writes.
const RequestLaunch = "launch"

// Profile describes one program to debug, as given on the command line.
type Profile struct {
	// Language selects the debug adapter (go, rust, python, ...).
	Language string

	// Label is the display name of the entry. Empty means "Debug <program>".
	Label string

	// Target selects the editor backend.
	Target Target

	// ProgramArgs is the program path followed by its arguments.
	ProgramArgs []string
}

// Validate checks that the profile names a program.
func (p *Profile) Validate() error {
	if len(p.ProgramArgs) == 0 {
		return fmt.Errorf("no program specified")
	}
	return nil
}

// Program returns the program path.
func (p *Profile) Program() string {
	if len(p.ProgramArgs) == 0 {
		return ""
	}
	return p.ProgramArgs[0]
}

// Args returns the program arguments, or nil if there are none.
func (p *Profile) Args() []string {
	if len(p.ProgramArgs) < 2 {
		return nil
	}
	args := make([]string, len(p.ProgramArgs)-1)
	copy(args, p.ProgramArgs[1:])
	return args
}

// Key returns the identifying label/name of the entry built from this profile.
func (p *Profile) Key() string {
	if p.Label != "" {
		return p.Label
	}
	return "Debug " + p.Program()
}
