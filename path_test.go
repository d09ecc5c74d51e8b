package model_test

import (
	"testing"

	model "github.com/mondrian-framework/model-go"
)

func TestPath_Format(t *testing.T) {
	p := model.Root().AppendVariant("bar").AppendIndex(0).AppendField("foo")
	if got := p.Format(); got != "$.bar[0].foo" {
		t.Fatalf("expected $.bar[0].foo, got: %s", got)
	}
	if got := model.Root().Format(); got != "$" {
		t.Fatalf("expected $ for the root path, got: %s", got)
	}
}

func TestPath_PrependBuildsOutward(t *testing.T) {
	// Inner errors carry their local path; each wrapper prepends as the
	// error bubbles out, so fragments end up in root-to-leaf order.
	p := model.Root().AppendIndex(1)
	p = p.PrependField("a")
	if got := p.String(); got != "$.a[1]" {
		t.Fatalf("expected $.a[1], got: %s", got)
	}
}

func TestPath_Immutability(t *testing.T) {
	base := model.Root().AppendField("a")
	left := base.AppendField("b")
	right := base.AppendIndex(2)
	if base.String() != "$.a" || left.String() != "$.a.b" || right.String() != "$.a[2]" {
		t.Fatalf("paths share state: base=%s left=%s right=%s", base, left, right)
	}
}

func TestPath_Equals(t *testing.T) {
	a := model.Root().AppendField("x").AppendIndex(3)
	b := model.Root().AppendField("x").AppendIndex(3)
	if !a.Equals(b) {
		t.Fatalf("expected structurally equal paths to be equal")
	}
	if a.Equals(model.Root().AppendField("x")) {
		t.Fatalf("expected paths of different length to differ")
	}
	if !model.Root().IsRoot() {
		t.Fatalf("expected the empty path to be root")
	}
	if a.IsRoot() {
		t.Fatalf("expected a nonempty path not to be root")
	}
}
