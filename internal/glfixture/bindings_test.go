package glfixture

import (
	"strings"
	"testing"

	"github.com/seitarof/glad-gen/optional"
)

func resetSlots(t *testing.T) {
	t.Helper()
	glad_glFoo.Reset()
	glad_glBar.Reset()
	t.Cleanup(func() {
		glad_glFoo.Reset()
		glad_glBar.Reset()
	})
}

func TestLoadGL_AllResolved(t *testing.T) {
	resetSlots(t)
	called := false
	glad_glFoo = optional.Some(func(x int32) int32 { return x + 1 })
	glad_glBar.Set(func() { called = true })

	gl, err := LoadGL()
	if err != nil {
		t.Fatalf("LoadGL() error = %v", err)
	}
	if got := gl.Foo(41); got != 42 {
		t.Fatalf("Foo(41) = %d, want 42", got)
	}
	gl.Bar()
	if !called {
		t.Fatal("Bar was not invoked through the table")
	}
}

func TestLoadGL_ResolvedSymbolDoesNotMaskMissingOne(t *testing.T) {
	resetSlots(t)
	glad_glFoo.Set(func(x int32) int32 { return x })

	gl, err := LoadGL()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if gl != nil {
		t.Fatal("no partial table may be returned")
	}
	if !strings.Contains(err.Error(), "glad_glBar") || strings.Contains(err.Error(), "glad_glFoo") {
		t.Fatalf("error should name exactly the missing symbol: %v", err)
	}
}

func TestLoadGL_ReportsEveryMissingSymbol(t *testing.T) {
	resetSlots(t)

	_, err := LoadGL()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "unresolved loader symbols: glad_glFoo, glad_glBar" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnwrapGL_PanicsOnMissingSymbol(t *testing.T) {
	resetSlots(t)
	glad_glFoo.Set(func(x int32) int32 { return x })

	var table *GL
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("UnwrapGL() should panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "glad_glBar") {
			t.Fatalf("panic value = %#v", r)
		}
		if table != nil {
			t.Fatal("no table may be returned")
		}
	}()
	table = UnwrapGL()
}
