// Package dispatch runs one tink command against the selected editor backend.
package dispatch

import (
	"log/slog"

	"github.com/tink-dev/tink/internal/editor"
	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/logging"
	"github.com/tink-dev/tink/internal/types"
)

// Dispatcher selects a backend per call and runs load, mutate, save.
type Dispatcher struct {
	ProjectDir string
	Resolver   editor.Resolver
	Logger     *slog.Logger
}

// New creates a dispatcher rooted at projectDir.
func New(projectDir string, resolver editor.Resolver, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		ProjectDir: projectDir,
		Resolver:   resolver,
		Logger:     logger,
	}
}

// Result describes the entry a command wrote.
type Result struct {
	Path     string
	Entry    editor.Entry
	Replaced bool
}

func (d *Dispatcher) open(target types.Target) (editor.Editor, *slog.Logger, error) {
	ed, err := editor.New(target, d.ProjectDir, d.Resolver, d.Logger)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.WithTarget(d.Logger, string(target), ed.Path())
	if err := ed.Load(); err != nil {
		return nil, nil, err
	}
	return ed, logger, nil
}

// Add appends the profile's entry. Nothing is written if the key exists.
func (d *Dispatcher) Add(p *types.Profile) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, tinkerr.NoProgram()
	}

	ed, logger, err := d.open(p.Target)
	if err != nil {
		return nil, err
	}
	if err := ed.Add(p); err != nil {
		return nil, err
	}
	if err := ed.Save(); err != nil {
		return nil, err
	}

	entry := ed.NewEntry(p)
	logging.WithEntry(logger, entry.Key).Info("added launch entry")
	return &Result{Path: ed.Path(), Entry: entry}, nil
}

// Replace overwrites or appends the profile's entry.
func (d *Dispatcher) Replace(p *types.Profile) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, tinkerr.NoProgram()
	}

	ed, logger, err := d.open(p.Target)
	if err != nil {
		return nil, err
	}
	replaced := ed.Replace(p)
	if err := ed.Save(); err != nil {
		return nil, err
	}

	entry := ed.NewEntry(p)
	logging.WithEntry(logger, entry.Key).Info("replaced launch entry", "existed", replaced)
	return &Result{Path: ed.Path(), Entry: entry, Replaced: replaced}, nil
}

// Remove deletes the entry with key from the target's file.
func (d *Dispatcher) Remove(target types.Target, key string) (string, error) {
	ed, logger, err := d.open(target)
	if err != nil {
		return "", err
	}
	if err := ed.Remove(key); err != nil {
		return "", err
	}
	if err := ed.Save(); err != nil {
		return "", err
	}

	logging.WithEntry(logger, key).Info("removed launch entry")
	return ed.Path(), nil
}

// List loads the target's file without writing it.
func (d *Dispatcher) List(target types.Target) ([]editor.Entry, string, error) {
	ed, _, err := d.open(target)
	if err != nil {
		return nil, "", err
	}
	return ed.Entries(), ed.Path(), nil
}
