package render

import (
	"bytes"
	"testing"

	"github.com/jpl-au/htmlvm/html5/body"
	"github.com/jpl-au/htmlvm/html5/p"
)

func TestTunedRendererRendersAndLearnsBaseline(t *testing.T) {
	doc := body.New(p.New("hello"))
	tmpl, err := Compile(doc.Node())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	tr := NewTunedRenderer(tmpl)
	want := "<body><p>hello</p></body>"

	for i := 0; i < 5; i++ {
		got, err := tr.Render(nil)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if string(got) != want {
			t.Fatalf("render %d: got %q; want %q", i, got, want)
		}
	}

	if tr.sizer.Active() {
		t.Fatal("sizer should have a baseline after 5 identical-size renders")
	}
}

func TestTunedRendererWritesToWriter(t *testing.T) {
	doc := body.New(p.New("x"))
	tmpl, err := Compile(doc.Node())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	tr := NewTunedRenderer(tmpl)
	var buf bytes.Buffer
	out, err := tr.Render(nil, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != nil {
		t.Errorf("Render with a writer should return nil bytes, got %q", out)
	}
	want := "<body><p>x</p></body>"
	if buf.String() != want {
		t.Errorf("got %q; want %q", buf.String(), want)
	}
}

func TestTunedRendererConfigureAndReset(t *testing.T) {
	doc := body.New(p.New("y"))
	tmpl, err := Compile(doc.Node())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	tr := NewTunedRenderer(tmpl).Configure(2, 10, 100)
	if _, err := tr.Render(nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !tr.sizer.Active() {
		t.Fatal("should still be sampling after 1 of 2 configured samples")
	}

	tr.Reset()
	if !tr.sizer.Active() {
		t.Fatal("Reset should restart sampling")
	}
}
