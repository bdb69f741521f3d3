package render

// TemplateValue is the value type stored in a Context: a statically-known
// string, an owned (heap) string, or Null. Unknown keys resolve to Null.
type TemplateValue struct {
	kind templateValueKind
	s    string
}

type templateValueKind byte

const (
	kindNull templateValueKind = iota
	kindStatic
	kindOwned
)

// Null is the value absent keys resolve to.
func Null() TemplateValue { return TemplateValue{kind: kindNull} }

// StaticString wraps a value known not to require copying — e.g. a
// compile-time constant the caller guarantees outlives the render.
func StaticString(s string) TemplateValue { return TemplateValue{kind: kindStatic, s: s} }

// String wraps an owned, possibly short-lived string value.
func String(s string) TemplateValue { return TemplateValue{kind: kindOwned, s: s} }

// IsNull reports whether v is the Null value.
func (v TemplateValue) IsNull() bool { return v.kind == kindNull }

// String returns v's string form, or "" for Null.
func (v TemplateValue) String() string { return v.s }

// Context is an ordered, mutable-until-render key→value table consulted
// at render time for ContextValue substitutions. Lookup is linear scan by
// key equality, matching the ordered-mapping contract: small template
// contexts don't justify a hash map, and linear scan preserves insertion
// order for iteration if ever needed.
type Context struct {
	keys []string
	vals []TemplateValue
}

// NewContext returns an empty Context.
func NewContext() *Context { return &Context{} }

// Get returns the value for key, or Null if key was never Set.
func (c *Context) Get(key string) TemplateValue {
	if c == nil {
		return Null()
	}
	for i, k := range c.keys {
		if k == key {
			return c.vals[i]
		}
	}
	return Null()
}

// Set upserts key to v. Mutating a Context during a render call that is
// concurrently reading it is not safe — the contract is that a Context is
// fully populated before Render is called.
func (c *Context) Set(key string, v TemplateValue) {
	for i, k := range c.keys {
		if k == key {
			c.vals[i] = v
			return
		}
	}
	c.keys = append(c.keys, key)
	c.vals = append(c.vals, v)
}
