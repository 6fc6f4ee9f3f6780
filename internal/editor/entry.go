package editor

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Entry is one launch configuration.
type Entry struct {
	Key     string   // "label" in Zed, "name" in VS Code
	Adapter string   // "adapter" in Zed, "type" in VS Code; "" is written as null
	Request string   // always "launch" for entries built by tink
	Program string   // program path
	Args    []string // omitted from the file when empty

	// raw holds the object as read from disk. Entries that were loaded and not
	// replaced are written back verbatim, keeping fields tink does not model.
	raw []byte
}

// Loaded reports whether the entry came from the file on disk unchanged.
func (e Entry) Loaded() bool {
	return e.raw != nil
}

// schema names the per-editor JSON fields of an entry.
type schema struct {
	keyField     string
	adapterField string
}

var (
	zedSchema    = schema{keyField: "label", adapterField: "adapter"}
	vscodeSchema = schema{keyField: "name", adapterField: "type"}
)

// decode reads an entry from a JSON object.
func (s schema) decode(raw []byte) (Entry, error) {
	obj := gjson.ParseBytes(raw)
	if !obj.IsObject() {
		return Entry{}, fmt.Errorf("expected a JSON object, got %s", obj.Type)
	}

	e := Entry{
		Key:     stringField(obj, s.keyField),
		Adapter: stringField(obj, s.adapterField),
		Request: stringField(obj, "request"),
		Program: stringField(obj, "program"),
		raw:     append([]byte(nil), raw...),
	}
	if args := obj.Get("args"); args.IsArray() {
		args.ForEach(func(_, v gjson.Result) bool {
			e.Args = append(e.Args, v.String())
			return true
		})
	}
	return e, nil
}

// encode writes an entry as a JSON object. Field order follows the file
// formats: key, adapter, request, program, args.
func (s schema) encode(e Entry) ([]byte, error) {
	if e.raw != nil {
		return e.raw, nil
	}

	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, s.keyField, e.Key); err != nil {
		return nil, err
	}
	if e.Adapter == "" {
		out, err = sjson.SetRawBytes(out, s.adapterField, []byte("null"))
	} else {
		out, err = sjson.SetBytes(out, s.adapterField, e.Adapter)
	}
	if err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "request", e.Request); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "program", e.Program); err != nil {
		return nil, err
	}
	if len(e.Args) > 0 {
		if out, err = sjson.SetBytes(out, "args", e.Args); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func stringField(obj gjson.Result, field string) string {
	v := obj.Get(field)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}
