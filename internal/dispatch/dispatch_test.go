package dispatch

import (
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tink-dev/tink/internal/adapter"
	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/logging"
	"github.com/tink-dev/tink/internal/testutil"
	"github.com/tink-dev/tink/internal/types"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir, adapter.NewRegistry(), logging.NewForTest()), dir
}

func TestAdd_RustScenario(t *testing.T) {
	d, dir := newTestDispatcher(t)

	res, err := d.Add(&types.Profile{Language: "rust", Target: types.TargetZed, ProgramArgs: []string{"myprog", "arg1"}})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if res.Path != filepath.Join(dir, ".zed", "debug.json") {
		t.Errorf("Path = %s", res.Path)
	}
	if res.Entry.Key != "Debug myprog" {
		t.Errorf("Entry.Key = %s, want Debug myprog", res.Entry.Key)
	}

	testutil.AssertFileJSON(t, res.Path, `[{"label":"Debug myprog","adapter":"CodeLLDB","request":"launch","program":"myprog","args":["arg1"]}]`)
}

func TestAdd_DuplicateLeavesFileUnchanged(t *testing.T) {
	d, dir := newTestDispatcher(t)
	p := &types.Profile{Language: "go", Target: types.TargetZed, ProgramArgs: []string{"app"}}

	if _, err := d.Add(p); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	path := filepath.Join(dir, ".zed", "debug.json")
	before := string(testutil.ReadFile(t, path))

	_, err := d.Add(&types.Profile{Language: "rust", Target: types.TargetZed, ProgramArgs: []string{"app", "changed"}})
	testutil.AssertErrorCode(t, err, tinkerr.CodeEntryDuplicate)
	testutil.AssertFileUnchanged(t, path, before)
}

func TestAddAndReplace_NoProgram(t *testing.T) {
	d, dir := newTestDispatcher(t)
	// A malformed file proves the check runs before any I/O
	zedFile := testutil.WriteProjectFile(t, dir, testutil.ZedFile, "garbage")

	p := &types.Profile{Language: "go", Target: types.TargetZed}
	if _, err := d.Add(p); !tinkerr.HasCode(err, tinkerr.CodeInputNoProgram) {
		t.Errorf("Add: expected %s, got %v", tinkerr.CodeInputNoProgram, err)
	}
	if _, err := d.Replace(p); !tinkerr.HasCode(err, tinkerr.CodeInputNoProgram) {
		t.Errorf("Replace: expected %s, got %v", tinkerr.CodeInputNoProgram, err)
	}
	testutil.AssertFileUnchanged(t, zedFile, "garbage")
}

func TestReplace_VSCodeScenario(t *testing.T) {
	d, dir := newTestDispatcher(t)
	path := testutil.WriteProjectFile(t, dir, testutil.VSCodeFile,
		`{"version": "0.2.0", "configurations": [{"name": "Debug old", "type": "lldb", "request": "launch", "program": "oldprog", "args": ["a"]}]}`)

	res, err := d.Replace(&types.Profile{Language: "go", Label: "Debug old", Target: types.TargetVSCode, ProgramArgs: []string{"newprog"}})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if !res.Replaced {
		t.Error("Replaced = false, want true")
	}

	testutil.AssertFileJSON(t, path, `{"version":"0.2.0","configurations":[{"name":"Debug old","type":"go","request":"launch","program":"newprog"}]}`)
}

func TestReplace_AppendsNewKey(t *testing.T) {
	d, dir := newTestDispatcher(t)
	for _, prog := range []string{"one", "two"} {
		if _, err := d.Add(&types.Profile{Language: "php", Target: types.TargetVSCode, ProgramArgs: []string{prog}}); err != nil {
			t.Fatal(err)
		}
	}

	res, err := d.Replace(&types.Profile{Language: "php", Target: types.TargetVSCode, ProgramArgs: []string{"three"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Replaced {
		t.Error("Replaced = true for a new key")
	}

	data := testutil.ReadFile(t, filepath.Join(dir, testutil.VSCodeFile))
	names := gjson.GetBytes(data, "configurations.#.name").Array()
	if len(names) != 3 || names[2].String() != "Debug three" {
		t.Errorf("names = %v", names)
	}
}

func TestAdd_LoadErrorAborts(t *testing.T) {
	d, dir := newTestDispatcher(t)
	path := testutil.WriteProjectFile(t, dir, testutil.ZedFile, `{"not": "an array"}`)

	_, err := d.Add(&types.Profile{Language: "go", Target: types.TargetZed, ProgramArgs: []string{"x"}})
	if !tinkerr.HasCode(err, tinkerr.CodeParseError) {
		t.Fatalf("expected %s, got %v", tinkerr.CodeParseError, err)
	}

	testutil.AssertFileUnchanged(t, path, `{"not": "an array"}`)
}

func TestInvalidTarget(t *testing.T) {
	d, _ := newTestDispatcher(t)
	_, err := d.Add(&types.Profile{Language: "go", Target: types.Target("emacs"), ProgramArgs: []string{"x"}})
	if !tinkerr.HasCode(err, tinkerr.CodeInputInvalidTarget) {
		t.Errorf("expected %s, got %v", tinkerr.CodeInputInvalidTarget, err)
	}
}

func TestRemoveAndList(t *testing.T) {
	d, _ := newTestDispatcher(t)
	for _, prog := range []string{"a", "b"} {
		if _, err := d.Add(&types.Profile{Language: "go", Target: types.TargetZed, ProgramArgs: []string{prog}}); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := d.Remove(types.TargetZed, "Debug a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := d.Remove(types.TargetZed, "Debug a"); !tinkerr.HasCode(err, tinkerr.CodeEntryNotFound) {
		t.Errorf("second Remove: expected %s, got %v", tinkerr.CodeEntryNotFound, err)
	}

	entries, path, err := d.List(types.TargetZed)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if filepath.Base(path) != "debug.json" {
		t.Errorf("path = %s", path)
	}
	if len(entries) != 1 || entries[0].Key != "Debug b" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestList_MissingFile(t *testing.T) {
	d, dir := newTestDispatcher(t)
	entries, _, err := d.List(types.TargetVSCode)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
	testutil.AssertNotExists(t, filepath.Join(dir, ".vscode"))
}

func TestDispatcher_Logs(t *testing.T) {
	dir := t.TempDir()
	tl := testutil.NewTestLogger(t)
	d := New(dir, adapter.NewRegistry(), tl.Logger)

	if _, err := d.Add(&types.Profile{Language: "go", Target: types.TargetZed, ProgramArgs: []string{"api"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Replace(&types.Profile{Language: "go", Target: types.TargetZed, ProgramArgs: []string{"api", "-v"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Remove(types.TargetZed, "Debug api"); err != nil {
		t.Fatal(err)
	}

	tl.AssertLogged(t, "added launch entry", "entry", "Debug api")
	tl.AssertLogged(t, "added launch entry", "target", "zed")
	tl.AssertLogged(t, "replaced launch entry", "existed", true)
	tl.AssertLogged(t, "removed launch entry", "path", filepath.Join(dir, ".zed", "debug.json"))
}
