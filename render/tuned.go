package render

import (
	"bytes"
	"io"
)

// TunedRenderer pairs a CompiledTemplate with adaptive output-buffer
// sizing: it learns the typical rendered size across calls so repeated
// renders avoid the reallocation that a cold, zero-capacity buffer would
// otherwise pay on every call.
//
// A TunedRenderer is not safe for concurrent use from multiple goroutines
// without external synchronization — the sizer's sampling state is
// mutated on every Render call. Share the underlying CompiledTemplate
// across goroutines instead, each with its own TunedRenderer, or guard a
// shared one with a mutex.
type TunedRenderer struct {
	tmpl  *CompiledTemplate
	sizer *AdaptiveSizer
}

// NewTunedRenderer returns a TunedRenderer over tmpl with default
// adaptive-sizing parameters.
func NewTunedRenderer(tmpl *CompiledTemplate) *TunedRenderer {
	return &TunedRenderer{tmpl: tmpl, sizer: NewAdaptiveSizer()}
}

// Configure customises the adaptive sizing parameters and resets
// statistics. Returns the same instance for method chaining.
func (tr *TunedRenderer) Configure(max, variance, growthFactor int) *TunedRenderer {
	tr.sizer.Configure(max, variance, growthFactor)
	return tr
}

// Render renders the compiled template with adaptive buffer sizing. With
// no writer, it returns the rendered bytes; with a writer, it writes to
// it directly and returns nil.
func (tr *TunedRenderer) Render(ctx *Context, w ...io.Writer) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, tr.sizer.GetBaseline()))
	if err := Render(tr.tmpl, buf, ctx); err != nil {
		return nil, err
	}
	tr.sizer.UpdateStats(buf.Len())

	if len(w) > 0 && w[0] != nil {
		_, err := buf.WriteTo(w[0])
		return nil, err
	}
	return buf.Bytes(), nil
}

// Reset clears the sizer's learned statistics, restarting the sampling
// phase. Returns the same instance for method chaining.
func (tr *TunedRenderer) Reset() *TunedRenderer {
	tr.sizer.Reset()
	return tr
}
