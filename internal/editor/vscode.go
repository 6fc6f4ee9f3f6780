package editor

import (
	"log/slog"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/types"
)

// VSCodePath is the launch file location relative to the project root.
var VSCodePath = filepath.Join(".vscode", "launch.json")

// LaunchVersion is written to every launch.json, replacing whatever was there.
const LaunchVersion = "0.2.0"

// VSCodeLaunch manages .vscode/launch.json.
type VSCodeLaunch struct {
	collection
	path     string
	resolver Resolver
	logger   *slog.Logger
}

// NewVSCodeLaunch creates an unloaded VS Code backend for projectDir.
func NewVSCodeLaunch(projectDir string, resolver Resolver, logger *slog.Logger) *VSCodeLaunch {
	return &VSCodeLaunch{
		collection: collection{schema: vscodeSchema},
		path:       filepath.Join(projectDir, VSCodePath),
		resolver:   resolver,
		logger:     logger,
	}
}

func (v *VSCodeLaunch) Target() types.Target { return types.TargetVSCode }

func (v *VSCodeLaunch) Path() string { return v.path }

// Load requires valid JSON but is lenient about shape: a missing or non-array
// "configurations" yields an empty collection, and non-object items are dropped.
func (v *VSCodeLaunch) Load() error {
	v.entries = nil

	data, err := readFile(v.path)
	if err != nil {
		return err
	}
	if data == nil {
		v.logger.Debug("no launch file, starting empty", "path", v.path)
		return nil
	}
	if !gjson.ValidBytes(data) {
		return tinkerr.ParseError(v.path, syntaxError(data))
	}

	configs := gjson.GetBytes(data, "configurations")
	if !configs.IsArray() {
		v.logger.Debug("launch file has no configurations array", "path", v.path)
		return nil
	}
	for i, item := range configs.Array() {
		e, err := v.schema.decode([]byte(item.Raw))
		if err != nil {
			v.logger.Debug("dropping configuration", "index", i, "error", err)
			continue
		}
		v.entries = append(v.entries, e)
	}

	v.logger.Debug("loaded launch file", "path", v.path, "entries", len(v.entries))
	return nil
}

func (v *VSCodeLaunch) NewEntry(p *types.Profile) Entry {
	return newEntry(p, v.resolver.Resolve(p.Language, types.TargetVSCode))
}

func (v *VSCodeLaunch) Add(p *types.Profile) error {
	return v.add(v.NewEntry(p))
}

func (v *VSCodeLaunch) Replace(p *types.Profile) bool {
	return v.replace(v.NewEntry(p))
}

func (v *VSCodeLaunch) Remove(key string) error {
	return v.remove(key)
}

// Save writes {"version": "0.2.0", "configurations": [...]}.
func (v *VSCodeLaunch) Save() error {
	body, err := v.encodeArray()
	if err != nil {
		return tinkerr.IOWriteError(v.path, err)
	}

	out := []byte(`{}`)
	if out, err = sjson.SetBytes(out, "version", LaunchVersion); err != nil {
		return tinkerr.IOWriteError(v.path, err)
	}
	if out, err = sjson.SetRawBytes(out, "configurations", body); err != nil {
		return tinkerr.IOWriteError(v.path, err)
	}
	return writeFile(v.path, out)
}
