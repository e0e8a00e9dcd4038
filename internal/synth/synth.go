package synth

import (
	"fmt"

	"github.com/seitarof/glad-gen/internal/classifier"
	"github.com/seitarof/glad-gen/internal/contract"
	"github.com/seitarof/glad-gen/internal/parser"
)

// Field is one exported function slot of the aggregate type.
type Field struct {
	Name string
	Type string
}

// Initializer resolves one field from its raw loader symbol.
type Initializer struct {
	Field  string
	Symbol string
}

// Aggregate is the synthesized function table in discovery order.
type Aggregate struct {
	Fields       []Field
	Initializers []Initializer
	Skipped      []string
}

// Synthesizer accumulates entry points during the declaration pass.
type Synthesizer struct {
	src     *parser.Source
	agg     Aggregate
	seen    map[string]int
	skipped map[string]struct{}
}

// New returns a synthesizer rendering types against src.
func New(src *parser.Source) *Synthesizer {
	return &Synthesizer{
		src:     src,
		seen:    map[string]int{},
		skipped: map[string]struct{}{},
	}
}

// Add appends the field and initializer for ep.
func (s *Synthesizer) Add(ep classifier.EntryPoint) error {
	if prev, dup := s.seen[ep.PublicName]; dup {
		return contract.New(
			contract.KindDuplicateEntry,
			ep.PublicName,
			s.src.Position(ep.Signature),
			"%s and %s map to the same field",
			s.agg.Initializers[prev].Symbol,
			ep.SymbolName,
		)
	}

	typ, err := s.src.Render(ep.Signature)
	if err != nil {
		return fmt.Errorf("render signature of %s: %w", ep.SymbolName, err)
	}

	s.seen[ep.PublicName] = len(s.agg.Fields)
	s.agg.Fields = append(s.agg.Fields, Field{Name: ep.PublicName, Type: typ})
	s.agg.Initializers = append(s.agg.Initializers, Initializer{Field: ep.PublicName, Symbol: ep.SymbolName})
	return nil
}

// Skip records a struct type that the aggregate does not expose.
func (s *Synthesizer) Skip(name string) {
	if _, ok := s.skipped[name]; ok {
		return
	}
	s.skipped[name] = struct{}{}
	s.agg.Skipped = append(s.agg.Skipped, name)
}

// Aggregate returns a copy of what has been accumulated so far.
func (s *Synthesizer) Aggregate() *Aggregate {
	return &Aggregate{
		Fields:       append([]Field(nil), s.agg.Fields...),
		Initializers: append([]Initializer(nil), s.agg.Initializers...),
		Skipped:      append([]string(nil), s.agg.Skipped...),
	}
}
