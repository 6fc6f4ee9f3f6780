package cmd

import (
	"github.com/spf13/pflag"
	"github.com/tink-dev/tink/internal/types"
)

// profileFlags are the flags shared by add and replace.
type profileFlags struct {
	language string
	label    string
	target   string
}

// register binds the flags and stops flag parsing at the program name, so
// program arguments may start with "-" even without a "--" separator.
func (f *profileFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.language, "language", "l", "", "language to select the debug adapter (go, rust, python, js, php, ...)")
	fs.StringVarP(&f.label, "label", "n", "", `display name for the profile (default "Debug <program>")`)
	fs.StringVarP(&f.target, "target", "t", "", "editor to write for: zed or vscode (default from config, else zed)")
	fs.SetInterspersed(false)
}

// reset restores flag defaults.
func (f *profileFlags) reset() {
	*f = profileFlags{}
}

// profile builds the Profile for this invocation.
func (f *profileFlags) profile(e *env, programArgs []string) (*types.Profile, error) {
	target, err := e.resolveTarget(f.target)
	if err != nil {
		return nil, err
	}
	return &types.Profile{
		Language:    f.language,
		Label:       f.label,
		Target:      target,
		ProgramArgs: programArgs,
	}, nil
}
