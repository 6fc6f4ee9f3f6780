package editor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
	tinkerr "github.com/tink-dev/tink/internal/errors"
)

// collection is the ordered entry list shared by both backends.
type collection struct {
	schema  schema
	entries []Entry
}

func (c *collection) index(key string) int {
	for i, e := range c.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func (c *collection) add(e Entry) error {
	if c.index(e.Key) >= 0 {
		return tinkerr.EntryDuplicate(c.schema.keyField, e.Key)
	}
	c.entries = append(c.entries, e)
	return nil
}

func (c *collection) replace(e Entry) bool {
	if i := c.index(e.Key); i >= 0 {
		c.entries[i] = e
		return true
	}
	c.entries = append(c.entries, e)
	return false
}

func (c *collection) remove(key string) error {
	i := c.index(key)
	if i < 0 {
		return tinkerr.EntryNotFound(c.schema.keyField, key)
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return nil
}

// Entries returns a copy of the collection in order.
func (c *collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// encodeArray renders the collection as a compact JSON array.
func (c *collection) encodeArray() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := c.schema.encode(e)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Format pretty-prints JSON the way tink writes its files.
func Format(data []byte) []byte {
	return pretty.PrettyOptions(data, prettyOptions)
}

// readFile returns nil data and no error when the file does not exist.
// Comments and trailing commas, which both editors accept, are blanked out;
// they are not written back on save.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, tinkerr.IOReadError(path, err)
	}
	if len(data) == 0 {
		return data, nil
	}
	return jsonc.ToJSON(data), nil
}

// writeFile creates the parent directory and overwrites path. The write is
// not atomic.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return tinkerr.IOWriteError(filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, Format(data), 0644); err != nil {
		return tinkerr.IOWriteError(path, err)
	}
	return nil
}

// syntaxError returns the decoder's description of why data is not JSON.
func syntaxError(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return errors.New("invalid JSON")
}
