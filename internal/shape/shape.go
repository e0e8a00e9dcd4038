// Package shape holds every structural assumption made about the output of
// the header translator. Each validator returns the matched data and true,
// or the zero value and false when the node has a different shape.
package shape

import (
	"go/ast"
	"go/token"
	"strings"
)

// DefaultDirective marks a var declaration as a foreign-linkage block.
const DefaultDirective = "glad:extern"

var optionPaths = []string{
	"Option",
	"opt.Option",
	"optional.Option",
}

// OptionElem extracts T from Option[T]. Only the spellings in optionPaths
// with exactly one type argument match.
func OptionElem(expr ast.Expr) (ast.Expr, bool) {
	idx, ok := ast.Unparen(expr).(*ast.IndexExpr)
	if !ok {
		return nil, false
	}
	path := typePath(idx.X)
	for _, want := range optionPaths {
		if path == want {
			return idx.Index, true
		}
	}
	return nil, false
}

// FuncTypeOf matches a function literal type such as func(int32) int32.
func FuncTypeOf(expr ast.Expr) (*ast.FuncType, bool) {
	if expr == nil {
		return nil, false
	}
	ft, ok := ast.Unparen(expr).(*ast.FuncType)
	return ft, ok
}

// IsStructType reports whether a type spec declares a struct.
func IsStructType(spec *ast.TypeSpec) bool {
	_, ok := spec.Type.(*ast.StructType)
	return ok
}

// IsAlias reports whether a type spec is an alias (type A = B). A defined
// type would drop the methods of Option.
func IsAlias(spec *ast.TypeSpec) bool {
	return spec.Assign.IsValid()
}

// HasDirective reports whether the comment group carries //<directive>.
func HasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil {
		return false
	}
	want := "//" + directive
	for _, c := range doc.List {
		if strings.TrimRight(c.Text, " \t") == want {
			return true
		}
	}
	return false
}

// ForeignBlock is a var declaration marked as externally linked.
type ForeignBlock struct {
	Decl  *ast.GenDecl
	Items []ForeignItem
}

// ForeignItem is one name declared inside a ForeignBlock.
type ForeignItem struct {
	Name *ast.Ident
	Type ast.Expr
}

// Func reports whether the item is a foreign function rather than a static.
func (it ForeignItem) Func() (*ast.FuncType, bool) {
	return FuncTypeOf(it.Type)
}

// ForeignBlockOf matches a var declaration carrying the extern directive.
// Declarations with initializers never match.
func ForeignBlockOf(decl ast.Decl, directive string) (ForeignBlock, bool) {
	gen, ok := decl.(*ast.GenDecl)
	if !ok || gen.Tok != token.VAR || !HasDirective(gen.Doc, directive) {
		return ForeignBlock{}, false
	}

	block := ForeignBlock{Decl: gen}
	for _, spec := range gen.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok || len(vs.Values) > 0 {
			return ForeignBlock{}, false
		}
		for _, name := range vs.Names {
			block.Items = append(block.Items, ForeignItem{Name: name, Type: vs.Type})
		}
	}
	return block, true
}

// TypeName returns the identifier a static is declared with, or false when
// the declared type is anything but a plain identifier.
func TypeName(expr ast.Expr) (string, bool) {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return "", false
	}
	return id.Name, true
}

func typePath(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.SelectorExpr:
		pkg, ok := v.X.(*ast.Ident)
		if !ok {
			return ""
		}
		return pkg.Name + "." + v.Sel.Name
	default:
		return ""
	}
}
