package classifier

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/seitarof/glad-gen/internal/contract"
	"github.com/seitarof/glad-gen/internal/parser"
	"github.com/seitarof/glad-gen/internal/registry"
	"github.com/seitarof/glad-gen/internal/shape"
)

const (
	// DefaultSymbolPrefix prefixes every loader function pointer static.
	DefaultSymbolPrefix = "glad_gl"
	// DefaultLoaderFunc is the only foreign function the loader exports.
	DefaultLoaderFunc = "gladLoadGLLoader"
)

// EntryPoint is one OpenGL function discovered in a foreign block. The
// pointer type is referenced by name; Registry.Lookup resolves it.
type EntryPoint struct {
	PublicName      string
	SymbolName      string
	PointerTypeName string
	Signature       ast.Expr
	Item            int
}

// Extractor turns a foreign block into an entry point.
type Extractor interface {
	Extract(src *parser.Source, item parser.Item, reg *registry.Registry) (EntryPoint, bool, error)
}

type extractorImpl struct {
	directive  string
	prefix     string
	loaderFunc string
}

// NewExtractor returns an extractor for the given naming conventions.
func NewExtractor(directive, prefix, loaderFunc string) Extractor {
	return &extractorImpl{directive: directive, prefix: prefix, loaderFunc: loaderFunc}
}

// Extract returns the entry point declared by item. The boolean is false
// for the loader function, which declares no entry point.
func (e *extractorImpl) Extract(
	src *parser.Source,
	item parser.Item,
	reg *registry.Registry,
) (EntryPoint, bool, error) {
	block, ok := shape.ForeignBlockOf(item.Decl, e.directive)
	if !ok {
		return EntryPoint{}, false, contract.New(
			contract.KindUnexpectedDeclaration,
			item.Name(),
			src.Position(item.Node()),
			"not a foreign block",
		)
	}

	// The translator emits one symbol per block. Nothing guarantees it, so
	// anything else stops the run instead of picking one of the items.
	if len(block.Items) != 1 {
		return EntryPoint{}, false, contract.New(
			contract.KindBlockCardinality,
			item.Name(),
			src.Position(block.Decl),
			"%d items in foreign block, want exactly 1",
			len(block.Items),
		)
	}
	fi := block.Items[0]
	name := fi.Name.Name

	if _, isFunc := fi.Func(); isFunc {
		if name != e.loaderFunc {
			return EntryPoint{}, false, contract.New(
				contract.KindSymbolIdentity,
				name,
				src.Position(fi.Name),
				"unexpected foreign function, only %s is exported by the loader",
				e.loaderFunc,
			)
		}
		return EntryPoint{}, false, nil
	}

	public, ok := strings.CutPrefix(name, e.prefix)
	if !ok {
		return EntryPoint{}, false, contract.New(
			contract.KindSymbolIdentity,
			name,
			src.Position(fi.Name),
			"static does not start with %q",
			e.prefix,
		)
	}
	if !token.IsIdentifier(public) || !token.IsExported(public) {
		return EntryPoint{}, false, contract.New(
			contract.KindSymbolIdentity,
			name,
			src.Position(fi.Name),
			"%q is not an exported Go identifier",
			public,
		)
	}

	typeName, ok := shape.TypeName(fi.Type)
	if !ok {
		return EntryPoint{}, false, contract.New(
			contract.KindUnresolvedAlias,
			name,
			src.Position(fi.Type),
			"declared type is not a type name",
		)
	}
	aliased, ok := reg.Lookup(typeName)
	if !ok {
		return EntryPoint{}, false, contract.New(
			contract.KindUnresolvedAlias,
			typeName,
			src.Position(fi.Type),
			"type of %s is not a registered function pointer type",
			name,
		)
	}

	elem, ok := shape.OptionElem(aliased)
	if !ok {
		return EntryPoint{}, false, contract.New(
			contract.KindOptionShape,
			typeName,
			src.Position(aliased),
			"want Option[T] with a single type argument",
		)
	}
	if _, ok := shape.FuncTypeOf(elem); !ok {
		return EntryPoint{}, false, contract.New(
			contract.KindOptionShape,
			typeName,
			src.Position(elem),
			"optional element is not a function type",
		)
	}

	return EntryPoint{
		PublicName:      public,
		SymbolName:      name,
		PointerTypeName: typeName,
		Signature:       elem,
		Item:            item.Index,
	}, true, nil
}
