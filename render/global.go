package render

import (
	"sync"

	"github.com/jpl-au/htmlvm/node"
)

var compiledByID sync.Map

// CompileCached looks up a compiled template by id in a process-wide
// registry, compiling root and storing it on first use. Subsequent calls
// with the same id reuse the stored CompiledTemplate without recompiling.
//
// Use constant string IDs ("header", "footer"). The registry grows
// unboundedly and never shrinks on its own; dynamic IDs should call
// ResetCompiled(id) once the template is no longer needed.
func CompileCached(id string, root node.Node) (*CompiledTemplate, error) {
	if v, ok := compiledByID.Load(id); ok {
		return v.(*CompiledTemplate), nil //nolint:forcetypeassert // type guaranteed by Store below
	}

	tmpl, err := Compile(root)
	if err != nil {
		return nil, err
	}

	actual, _ := compiledByID.LoadOrStore(id, tmpl)
	return actual.(*CompiledTemplate), nil //nolint:forcetypeassert // type guaranteed by LoadOrStore
}

// ResetCompiled removes compiled templates from the registry, allowing
// them to be recompiled on next use. Call with no arguments to clear all
// entries, or pass specific IDs to remove.
func ResetCompiled(ids ...string) {
	if len(ids) == 0 {
		compiledByID.Clear()
		return
	}
	for _, id := range ids {
		compiledByID.Delete(id)
	}
}
