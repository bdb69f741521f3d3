package render

import (
	"testing"

	"github.com/jpl-au/htmlvm/html5/body"
	"github.com/jpl-au/htmlvm/html5/p"
)

func TestCompileCachedReusesCompiledTemplate(t *testing.T) {
	t.Cleanup(func() { ResetCompiled() })

	doc := body.New(p.New("cached"))

	first, err := CompileCached("widget", doc.Node())
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	second, err := CompileCached("widget", doc.Node())
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}

	if first != second {
		t.Error("CompileCached should return the same *CompiledTemplate instance for the same id")
	}
}

func TestCompileCachedIgnoresRootOnCacheHit(t *testing.T) {
	t.Cleanup(func() { ResetCompiled() })

	first, err := CompileCached("same-id", body.New(p.New("first")).Node())
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	// A second call with a different tree but the same id must still
	// return the first compiled result — the id, not the tree, is the key.
	second, err := CompileCached("same-id", body.New(p.New("second")).Node())
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	if first != second {
		t.Error("CompileCached should ignore root on a cache hit")
	}
}

func TestResetCompiledSelective(t *testing.T) {
	t.Cleanup(func() { ResetCompiled() })

	a1, _ := CompileCached("a", body.New(p.New("a")).Node())
	b1, _ := CompileCached("b", body.New(p.New("b")).Node())

	ResetCompiled("a")

	a2, err := CompileCached("a", body.New(p.New("a-recompiled")).Node())
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	if a1 == a2 {
		t.Error("id \"a\" should have been evicted and recompiled")
	}

	b2, err := CompileCached("b", body.New(p.New("b")).Node())
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	if b1 != b2 {
		t.Error("id \"b\" should still be cached after a selective reset of \"a\"")
	}
}

func TestResetCompiledClearsAll(t *testing.T) {
	t.Cleanup(func() { ResetCompiled() })

	first, _ := CompileCached("x", body.New(p.New("x")).Node())
	ResetCompiled()
	second, err := CompileCached("x", body.New(p.New("x")).Node())
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	if first == second {
		t.Error("ResetCompiled() with no arguments should clear every entry")
	}
}
