// Package editor reads and writes editor launch configuration files.
//
// Two backends implement Editor: ZedDebug for .zed/debug.json (a bare array
// keyed by "label") and VSCodeLaunch for .vscode/launch.json (an object with
// a "configurations" array keyed by "name"). Both share the same in-memory
// collection semantics; only the file shape and field names differ.
package editor

import (
	"log/slog"

	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/types"
)

// Resolver maps a language to the debugger identifier for an editor.
type Resolver interface {
	Resolve(language string, target types.Target) string
}

// Editor is one editor's launch configuration file loaded into memory.
type Editor interface {
	// Target reports which editor this backend writes for.
	Target() types.Target

	// Path is the absolute path of the backing file.
	Path() string

	// Load reads the file. A missing file yields an empty collection.
	Load() error

	// NewEntry builds the entry for a profile without touching the collection.
	NewEntry(p *types.Profile) Entry

	// Add appends the profile's entry, failing if its key is already present.
	Add(p *types.Profile) error

	// Replace overwrites the entry with the same key in place, or appends it.
	// It reports whether an existing entry was overwritten.
	Replace(p *types.Profile) bool

	// Remove deletes the entry with the given key.
	Remove(key string) error

	// Entries returns the collection in file order.
	Entries() []Entry

	// Save overwrites the file with the current collection.
	Save() error
}

// New returns the backend for target rooted at projectDir.
func New(target types.Target, projectDir string, resolver Resolver, logger *slog.Logger) (Editor, error) {
	switch target {
	case types.TargetZed:
		return NewZedDebug(projectDir, resolver, logger), nil
	case types.TargetVSCode:
		return NewVSCodeLaunch(projectDir, resolver, logger), nil
	default:
		valid := make([]string, 0, 2)
		for _, t := range types.Targets() {
			valid = append(valid, string(t))
		}
		return nil, tinkerr.InvalidTarget(string(target), valid)
	}
}

// Open is New followed by Load.
func Open(target types.Target, projectDir string, resolver Resolver, logger *slog.Logger) (Editor, error) {
	ed, err := New(target, projectDir, resolver, logger)
	if err != nil {
		return nil, err
	}
	if err := ed.Load(); err != nil {
		return nil, err
	}
	return ed, nil
}

// newEntry builds the backend-neutral entry for a profile.
func newEntry(p *types.Profile, adapterID string) Entry {
	return Entry{
		Key:     p.Key(),
		Adapter: adapterID,
		Request: types.RequestLaunch,
		Program: p.Program(),
		Args:    p.Args(),
	}
}
