package contract

import (
	"errors"
	"fmt"
	"go/token"
)

// Kind classifies a broken assumption about the translated declarations.
type Kind int

const (
	KindUnexpectedDeclaration Kind = iota
	KindBlockCardinality
	KindSymbolIdentity
	KindUnresolvedAlias
	KindOptionShape
	KindUnexpectedTypeName
	KindDuplicateEntry
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedDeclaration:
		return "unexpected declaration"
	case KindBlockCardinality:
		return "unexpected foreign block cardinality"
	case KindSymbolIdentity:
		return "unexpected symbol"
	case KindUnresolvedAlias:
		return "unresolved type alias"
	case KindOptionShape:
		return "not an optional function pointer"
	case KindUnexpectedTypeName:
		return "unexpected type name"
	case KindDuplicateEntry:
		return "duplicate entry point"
	default:
		return "unknown"
	}
}

// Violation reports input that no longer matches the shape emitted by the
// header translator. It is always fatal for the run.
type Violation struct {
	Kind   Kind
	Ident  string
	Pos    token.Position
	Detail string
}

// New builds a violation for the node at pos.
func New(kind Kind, ident string, pos token.Position, format string, args ...any) *Violation {
	return &Violation{
		Kind:   kind,
		Ident:  ident,
		Pos:    pos,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (v *Violation) Error() string {
	msg := v.Kind.String()
	if v.Ident != "" {
		msg += ": " + v.Ident
	}
	if v.Detail != "" {
		msg += ": " + v.Detail
	}
	if v.Pos.IsValid() {
		return v.Pos.String() + ": " + msg
	}
	return msg
}

// IsKind reports whether err wraps a violation of the given kind.
func IsKind(err error, kind Kind) bool {
	var v *Violation
	if !errors.As(err, &v) {
		return false
	}
	return v.Kind == kind
}
