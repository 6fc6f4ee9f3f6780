// Package adapter maps languages to the debugger identifiers each editor expects.
// Zed names a debug adapter ("CodeLLDB"), VS Code names a configuration type ("lldb").
package adapter

import (
	"sort"
	"strings"

	"github.com/tink-dev/tink/internal/config"
	"github.com/tink-dev/tink/internal/types"
)

// Debugger is the pair of identifiers for one language.
type Debugger struct {
	Zed    string
	VSCode string
}

// For returns the identifier used by the given editor.
func (d Debugger) For(target types.Target) string {
	switch target {
	case types.TargetZed:
		return d.Zed
	case types.TargetVSCode:
		return d.VSCode
	default:
		return ""
	}
}

var (
	goDebugger     = Debugger{Zed: "Go", VSCode: "go"}
	lldbDebugger   = Debugger{Zed: "CodeLLDB", VSCode: "lldb"}
	pythonDebugger = Debugger{Zed: "Debugpy", VSCode: "debugpy"}
	jsDebugger     = Debugger{Zed: "JavaScript", VSCode: "node"}
	phpDebugger    = Debugger{Zed: "PHP", VSCode: "php"}
)

// builtins is keyed by lower-case language token.
var builtins = map[string]Debugger{
	"go":         goDebugger,
	"rust":       lldbDebugger,
	"c":          lldbDebugger,
	"cpp":        lldbDebugger,
	"c++":        lldbDebugger,
	"python":     pythonDebugger,
	"javascript": jsDebugger,
	"js":         jsDebugger,
	"typescript": jsDebugger,
	"ts":         jsDebugger,
	"php":        phpDebugger,
}

// Registry resolves languages using the built-in table plus user overrides.
type Registry struct {
	overrides map[string]Debugger
}

// NewRegistry creates a registry with only the built-in languages.
func NewRegistry() *Registry {
	return &Registry{overrides: make(map[string]Debugger)}
}

// NewRegistryFromConfig creates a registry honoring the [adapters] config table.
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	r := NewRegistry()
	for lang, o := range cfg.Adapters {
		r.Override(lang, Debugger{Zed: o.Zed, VSCode: o.VSCode})
	}
	return r
}

// Override sets identifiers for a language. Blank fields fall back to the built-in.
func (r *Registry) Override(language string, d Debugger) {
	r.overrides[strings.ToLower(language)] = d
}

// Lookup returns the debugger pair for a language. The bool is false when
// neither the built-in table nor an override knows the language.
func (r *Registry) Lookup(language string) (Debugger, bool) {
	key := strings.ToLower(language)
	d, known := builtins[key]
	if o, ok := r.overrides[key]; ok {
		known = true
		if o.Zed != "" {
			d.Zed = o.Zed
		}
		if o.VSCode != "" {
			d.VSCode = o.VSCode
		}
	}
	return d, known
}

// Resolve returns the identifier for a language in the given editor, or ""
// for an unknown language. Unknown languages are not an error: the entry is
// written with a null adapter so it can be completed by hand.
func (r *Registry) Resolve(language string, target types.Target) string {
	d, _ := r.Lookup(language)
	return d.For(target)
}

// Languages returns every known language token, sorted.
func (r *Registry) Languages() []string {
	seen := make(map[string]bool, len(builtins)+len(r.overrides))
	for lang := range builtins {
		seen[lang] = true
	}
	for lang := range r.overrides {
		seen[lang] = true
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
