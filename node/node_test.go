package node

import "testing"

// TestVariantsImplementNode verifies every documented variant satisfies
// the closed Node interface — a compile-time property, but exercised
// here so a future variant addition that breaks isNode() fails loudly.
func TestVariantsImplementNode(t *testing.T) {
	var values = []Node{
		None{},
		Literal("x"),
		List{Literal("a"), Literal("b")},
		&Tag{Name: "p", Content: Literal("hi")},
		ContextValue{Path: []string{"user", "name"}},
		Lazy{Produce: func() Node { return None{} }},
	}

	for i, v := range values {
		if v == nil {
			t.Errorf("variant %d is nil", i)
		}
	}
}

// TestAttrPreservesOrder verifies Attr is a plain constructor with no
// hidden normalization — modifier order is a byte-identical-output
// invariant enforced by callers appending in the order they want.
func TestAttrPreservesOrder(t *testing.T) {
	mods := []Modifier{Attr("href", "https://example.com"), Attr("class", "btn")}
	if mods[0].Name != "href" || mods[1].Name != "class" {
		t.Fatalf("Attr should preserve call order, got %+v", mods)
	}
}
