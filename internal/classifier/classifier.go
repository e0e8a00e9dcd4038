package classifier

import (
	"go/ast"
	"go/token"

	"github.com/seitarof/glad-gen/internal/parser"
	"github.com/seitarof/glad-gen/internal/shape"
)

// Category is the kind of a top-level translated declaration.
type Category int

const (
	CategoryOther Category = iota
	CategoryConst
	CategoryImport
	CategoryTypeAlias
	CategoryStruct
	CategoryForeignBlock
)

func (c Category) String() string {
	switch c {
	case CategoryConst:
		return "const"
	case CategoryImport:
		return "import"
	case CategoryTypeAlias:
		return "type alias"
	case CategoryStruct:
		return "struct"
	case CategoryForeignBlock:
		return "foreign block"
	default:
		return "other"
	}
}

// Classifier sorts declarations into categories.
type Classifier interface {
	Classify(item parser.Item) Category
}

type classifierImpl struct {
	directive string
}

// New returns a classifier recognising foreign blocks by directive.
func New(directive string) Classifier {
	return &classifierImpl{directive: directive}
}

func (c *classifierImpl) Classify(item parser.Item) Category {
	if item.Spec != nil {
		if shape.IsStructType(item.Spec) {
			return CategoryStruct
		}
		return CategoryTypeAlias
	}

	gen, ok := item.Decl.(*ast.GenDecl)
	if !ok {
		return CategoryOther
	}
	switch gen.Tok {
	case token.CONST:
		return CategoryConst
	case token.IMPORT:
		return CategoryImport
	case token.VAR:
		if _, ok := shape.ForeignBlockOf(gen, c.directive); ok {
			return CategoryForeignBlock
		}
	}
	return CategoryOther
}
