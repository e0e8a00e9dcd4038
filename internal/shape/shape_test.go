package shape

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

func TestOptionElem(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		want   string
		wantOK bool
	}{
		{name: "bare", expr: "Option[func()]", want: "func()", wantOK: true},
		{name: "short package", expr: "opt.Option[func(int32) int32]", want: "func(int32) int32", wantOK: true},
		{name: "long package", expr: "optional.Option[func(mask GLbitfield)]", want: "func(mask GLbitfield)", wantOK: true},
		{name: "parenthesized", expr: "(Option[func()])", want: "func()", wantOK: true},
		{name: "other wrapper", expr: "Maybe[func()]", wantOK: false},
		{name: "other package", expr: "sql.Option[func()]", wantOK: false},
		{name: "two type arguments", expr: "Option[func(), int]", wantOK: false},
		{name: "no type argument", expr: "Option", wantOK: false},
		{name: "plain func", expr: "func()", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			expr, err := parser.ParseExpr(tc.expr)
			if err != nil {
				t.Fatalf("ParseExpr(%q) error = %v", tc.expr, err)
			}
			got, ok := OptionElem(expr)
			if ok != tc.wantOK {
				t.Fatalf("OptionElem(%q) ok = %v, want %v", tc.expr, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if s := exprString(t, got); s != tc.want {
				t.Fatalf("OptionElem(%q) = %q, want %q", tc.expr, s, tc.want)
			}
		})
	}
}

func TestForeignBlockOf(t *testing.T) {
	file := parseFile(t, `package x

//glad:extern
var glad_glClear PFNGLCLEARPROC

//glad:extern
var (
	glad_glFoo PFNFOO
	glad_glBar, glad_glBaz PFNBAR
)

//glad:extern
var gladLoadGLLoader func(load GLADloadproc) int32

var plain PFNGLCLEARPROC

//glad:extern
var initialized = 1

// glad:extern
var spaced PFNGLCLEARPROC
`)

	tests := []struct {
		index     int
		wantOK    bool
		wantNames []string
		wantFunc  bool
	}{
		{index: 0, wantOK: true, wantNames: []string{"glad_glClear"}},
		{index: 1, wantOK: true, wantNames: []string{"glad_glFoo", "glad_glBar", "glad_glBaz"}},
		{index: 2, wantOK: true, wantNames: []string{"gladLoadGLLoader"}, wantFunc: true},
		{index: 3, wantOK: false},
		{index: 4, wantOK: false},
		{index: 5, wantOK: false},
	}

	for _, tc := range tests {
		block, ok := ForeignBlockOf(file.Decls[tc.index], DefaultDirective)
		if ok != tc.wantOK {
			t.Fatalf("decl %d: ok = %v, want %v", tc.index, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if len(block.Items) != len(tc.wantNames) {
			t.Fatalf("decl %d: items = %d, want %d", tc.index, len(block.Items), len(tc.wantNames))
		}
		for i, name := range tc.wantNames {
			if block.Items[i].Name.Name != name {
				t.Fatalf("decl %d: item[%d] = %s, want %s", tc.index, i, block.Items[i].Name.Name, name)
			}
		}
		if _, isFunc := block.Items[0].Func(); isFunc != tc.wantFunc {
			t.Fatalf("decl %d: Func() = %v, want %v", tc.index, isFunc, tc.wantFunc)
		}
	}
}

func TestIsStructTypeAndTypeName(t *testing.T) {
	file := parseFile(t, `package x

type _cl_context struct{}

type GLint = int32

var glad_glClear *PFNGLCLEARPROC
`)

	structSpec := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec)
	aliasSpec := file.Decls[1].(*ast.GenDecl).Specs[0].(*ast.TypeSpec)
	if !IsStructType(structSpec) {
		t.Fatal("_cl_context should be a struct type")
	}
	if IsStructType(aliasSpec) {
		t.Fatal("GLint should not be a struct type")
	}

	if name, ok := TypeName(aliasSpec.Type); !ok || name != "int32" {
		t.Fatalf("TypeName() = (%q, %v), want (int32, true)", name, ok)
	}
	ptr := file.Decls[2].(*ast.GenDecl).Specs[0].(*ast.ValueSpec).Type
	if _, ok := TypeName(ptr); ok {
		t.Fatal("pointer type should not match TypeName")
	}
}

func TestIsAlias(t *testing.T) {
	file := parseFile(t, `package x

type PFNFOO = Option[func()]

type PFNBAR Option[func()]
`)

	alias := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec)
	defined := file.Decls[1].(*ast.GenDecl).Specs[0].(*ast.TypeSpec)
	if !IsAlias(alias) {
		t.Fatal("PFNFOO should be an alias")
	}
	if IsAlias(defined) {
		t.Fatal("PFNBAR is a defined type, not an alias")
	}
}

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "x.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	return file
}

func exprString(t *testing.T, expr ast.Expr) string {
	t.Helper()
	return types.ExprString(expr)
}
