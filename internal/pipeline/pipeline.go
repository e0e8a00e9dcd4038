package pipeline

import (
	"regexp"

	"github.com/seitarof/glad-gen/internal/classifier"
	"github.com/seitarof/glad-gen/internal/contract"
	"github.com/seitarof/glad-gen/internal/parser"
	"github.com/seitarof/glad-gen/internal/registry"
	"github.com/seitarof/glad-gen/internal/shape"
	"github.com/seitarof/glad-gen/internal/synth"
)

// Rules are the naming conventions of the translated loader.
type Rules struct {
	BaseTypes          []string
	PointerTypePattern string
	SymbolPrefix       string
	LoaderFunc         string
	Directive          string
}

// DefaultRules returns the conventions of the GLAD loader.
func DefaultRules() Rules {
	return Rules{
		BaseTypes:          append([]string(nil), registry.DefaultBaseTypes...),
		PointerTypePattern: registry.DefaultPointerTypePattern,
		SymbolPrefix:       classifier.DefaultSymbolPrefix,
		LoaderFunc:         classifier.DefaultLoaderFunc,
		Directive:          shape.DefaultDirective,
	}
}

// Pipeline derives the aggregate function table from translated
// declarations.
type Pipeline interface {
	Run(src *parser.Source) (*synth.Aggregate, error)
}

type pipelineImpl struct {
	registry   registry.Builder
	classifier classifier.Classifier
	extractor  classifier.Extractor
}

// New wires the stages for rules.
func New(rules Rules) (Pipeline, error) {
	pointerType, err := regexp.Compile(rules.PointerTypePattern)
	if err != nil {
		return nil, err
	}
	return &pipelineImpl{
		registry:   registry.New(rules.BaseTypes, pointerType),
		classifier: classifier.New(rules.Directive),
		extractor:  classifier.NewExtractor(rules.Directive, rules.SymbolPrefix, rules.LoaderFunc),
	}, nil
}

// Run builds the full registry first, then walks the declarations once more
// to collect entry points. The first violation ends the run and no partial
// aggregate is returned.
func (p *pipelineImpl) Run(src *parser.Source) (*synth.Aggregate, error) {
	reg, err := p.registry.Build(src)
	if err != nil {
		return nil, err
	}

	s := synth.New(src)
	for _, item := range src.Items {
		switch p.classifier.Classify(item) {
		case classifier.CategoryConst, classifier.CategoryImport, classifier.CategoryTypeAlias:
			continue
		case classifier.CategoryStruct:
			// Opaque struct types (GLsync internals, OpenCL interop) are not
			// exposed by the aggregate yet.
			s.Skip(item.Spec.Name.Name)
		case classifier.CategoryForeignBlock:
			ep, ok, err := p.extractor.Extract(src, item, reg)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if err := s.Add(ep); err != nil {
				return nil, err
			}
		default:
			return nil, contract.New(
				contract.KindUnexpectedDeclaration,
				item.Name(),
				src.Position(item.Node()),
				"declaration shape is not produced by the header translator",
			)
		}
	}
	return s.Aggregate(), nil
}
