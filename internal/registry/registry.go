package registry

import (
	"go/ast"
	"regexp"

	"github.com/seitarof/glad-gen/internal/contract"
	"github.com/seitarof/glad-gen/internal/parser"
	"github.com/seitarof/glad-gen/internal/shape"
)

// Registry maps loader function pointer type names to their underlying type
// expressions. It is filled once by a Builder and only read afterwards.
type Registry struct {
	exprs []ast.Expr
	index map[string]int
}

// Lookup returns the underlying type expression of an alias.
func (r *Registry) Lookup(name string) (ast.Expr, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.exprs[i], true
}

func (r *Registry) add(name string, expr ast.Expr) {
	r.index[name] = len(r.exprs)
	r.exprs = append(r.exprs, expr)
}

// Builder collects the type alias registry from translated declarations.
type Builder interface {
	Build(src *parser.Source) (*Registry, error)
}

type builderImpl struct {
	baseTypes   map[string]struct{}
	pointerType *regexp.Regexp
}

// New creates a builder. Names in baseTypes are skipped; every other alias
// must match pointerType.
func New(baseTypes []string, pointerType *regexp.Regexp) Builder {
	set := make(map[string]struct{}, len(baseTypes))
	for _, name := range baseTypes {
		set[name] = struct{}{}
	}
	return &builderImpl{baseTypes: set, pointerType: pointerType}
}

// NewDefault creates a builder with the GLAD base types and naming rule.
func NewDefault() Builder {
	return New(DefaultBaseTypes, regexp.MustCompile(DefaultPointerTypePattern))
}

func (b *builderImpl) Build(src *parser.Source) (*Registry, error) {
	reg := &Registry{index: map[string]int{}}
	for _, item := range src.Items {
		if item.Spec == nil || shape.IsStructType(item.Spec) {
			continue
		}

		name := item.Spec.Name.Name
		if _, ok := b.baseTypes[name]; ok {
			continue
		}
		if !b.pointerType.MatchString(name) {
			return nil, contract.New(
				contract.KindUnexpectedTypeName,
				name,
				src.Position(item.Spec),
				"neither a base type nor a name matching %q; was the loader regenerated?",
				b.pointerType.String(),
			)
		}
		if _, dup := reg.index[name]; dup {
			return nil, contract.New(
				contract.KindUnexpectedDeclaration,
				name,
				src.Position(item.Spec),
				"type alias declared twice",
			)
		}
		if !shape.IsAlias(item.Spec) {
			return nil, contract.New(
				contract.KindOptionShape,
				name,
				src.Position(item.Spec),
				"declared as a defined type; want an alias (type %s = Option[...])",
				name,
			)
		}
		reg.add(name, item.Spec.Type)
	}
	return reg, nil
}
