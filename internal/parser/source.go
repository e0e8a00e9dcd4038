package parser

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
)

// Source holds one parsed file of translated declarations.
type Source struct {
	Filename string
	PkgName  string
	Fset     *token.FileSet
	File     *ast.File
	Src      []byte
	Items    []Item
}

// Item is one top-level declaration of the arena. Grouped type
// declarations are split so that every type spec is its own item; every
// other declaration, grouped or not, stays a single item.
type Item struct {
	Index int
	Decl  ast.Decl
	Spec  *ast.TypeSpec
}

// Node returns the most specific node for diagnostics.
func (i Item) Node() ast.Node {
	if i.Spec != nil {
		return i.Spec
	}
	return i.Decl
}

// Name returns the first identifier declared by the item, or "" when the
// declaration has none.
func (i Item) Name() string {
	if i.Spec != nil {
		return i.Spec.Name.Name
	}
	switch d := i.Decl.(type) {
	case *ast.FuncDecl:
		return d.Name.Name
	case *ast.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.ValueSpec:
				if len(s.Names) > 0 {
					return s.Names[0].Name
				}
			case *ast.TypeSpec:
				return s.Name.Name
			case *ast.ImportSpec:
				return s.Path.Value
			}
		}
		return d.Tok.String()
	}
	return ""
}

// Position resolves a node position inside the source file.
func (s *Source) Position(n ast.Node) token.Position {
	if n == nil {
		return token.Position{Filename: s.Filename}
	}
	return s.Fset.Position(n.Pos())
}

// Render prints a node exactly as it appears in the translated file.
func (s *Source) Render(n ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, s.Fset, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Body returns everything after the package clause.
func (s *Source) Body() []byte {
	tf := s.Fset.File(s.File.Pos())
	if tf == nil {
		return nil
	}
	off := tf.Offset(s.File.Name.End())
	return bytes.TrimSpace(s.Src[off:])
}

func flatten(file *ast.File) []Item {
	items := make([]Item, 0, len(file.Decls))
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			items = append(items, Item{Index: len(items), Decl: decl})
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			items = append(items, Item{Index: len(items), Decl: decl, Spec: ts})
		}
	}
	return items
}
