package editor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tidwall/gjson"
	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/types"
)

// ZedPath is the debug file location relative to the project root.
var ZedPath = filepath.Join(".zed", "debug.json")

// ZedDebug manages .zed/debug.json, a JSON array of debug scenarios.
type ZedDebug struct {
	collection
	path     string
	resolver Resolver
	logger   *slog.Logger
}

// NewZedDebug creates an unloaded Zed backend for projectDir.
func NewZedDebug(projectDir string, resolver Resolver, logger *slog.Logger) *ZedDebug {
	return &ZedDebug{
		collection: collection{schema: zedSchema},
		path:       filepath.Join(projectDir, ZedPath),
		resolver:   resolver,
		logger:     logger,
	}
}

func (z *ZedDebug) Target() types.Target { return types.TargetZed }

func (z *ZedDebug) Path() string { return z.path }

// Load parses the file strictly: the top level must be an array of objects.
func (z *ZedDebug) Load() error {
	z.entries = nil

	data, err := readFile(z.path)
	if err != nil {
		return err
	}
	if data == nil {
		z.logger.Debug("no debug file, starting empty", "path", z.path)
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return tinkerr.ParseError(z.path, err)
	}
	// Unmarshal leaves items nil for a top-level null.
	if items == nil {
		return tinkerr.ParseError(z.path, fmt.Errorf("expected a JSON array, got %s", gjson.ParseBytes(data).Type))
	}
	for i, item := range items {
		e, err := z.schema.decode(item)
		if err != nil {
			return tinkerr.ParseError(z.path, fmt.Errorf("entry %d: %w", i, err))
		}
		z.entries = append(z.entries, e)
	}

	z.logger.Debug("loaded debug file", "path", z.path, "entries", len(z.entries))
	return nil
}

func (z *ZedDebug) NewEntry(p *types.Profile) Entry {
	return newEntry(p, z.resolver.Resolve(p.Language, types.TargetZed))
}

func (z *ZedDebug) Add(p *types.Profile) error {
	return z.add(z.NewEntry(p))
}

func (z *ZedDebug) Replace(p *types.Profile) bool {
	return z.replace(z.NewEntry(p))
}

func (z *ZedDebug) Remove(key string) error {
	return z.remove(key)
}

// Save writes the whole array back to disk.
func (z *ZedDebug) Save() error {
	body, err := z.encodeArray()
	if err != nil {
		return tinkerr.IOWriteError(z.path, err)
	}
	return writeFile(z.path, body)
}
