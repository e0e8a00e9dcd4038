package cli

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/seitarof/glad-gen/internal/generator"
	"github.com/seitarof/glad-gen/internal/native"
	"github.com/seitarof/glad-gen/internal/parser"
	"github.com/seitarof/glad-gen/internal/pipeline"
	"github.com/seitarof/glad-gen/internal/synth"
	"github.com/seitarof/glad-gen/internal/translate"
)

// translatedFilename names translator output in positions and diagnostics.
const translatedFilename = "translated.go"

// Runner orchestrates translate/parser/pipeline/generator/native layers.
type Runner interface {
	Run(ctx context.Context, cfg *Config) error
}

type runnerImpl struct {
	parser     parser.Parser
	translator translate.Translator
	generator  generator.Generator
	native     native.Builder
}

// NewRunner creates a default runner implementation.
func NewRunner(
	p parser.Parser,
	t translate.Translator,
	g generator.Generator,
	n native.Builder,
) Runner {
	return &runnerImpl{
		parser:     p,
		translator: t,
		generator:  g,
		native:     n,
	}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(ctx context.Context, cfg *Config) error {
	src, err := r.loadSource(ctx, cfg)
	if err != nil {
		return err
	}

	pl, err := pipeline.New(cfg.Settings.Rules())
	if err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	agg, err := pl.Run(src)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	if cfg.Verbose {
		logSkipped(agg)
	}

	pkg, err := r.outputPackage(cfg, src)
	if err != nil {
		return fmt.Errorf("package: %w", err)
	}
	if err := r.generator.Generate(cfg, generator.Input{
		Package:      pkg,
		Source:       cfg.Bindings,
		Declarations: src.Body(),
		TypeName:     cfg.TypeName,
		Aggregate:    agg,
	}); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if cfg.SkipNative {
		return nil
	}
	loader := cfg.Settings.Loader
	res, err := r.native.Build(ctx, native.Request{
		SourceDir:   cfg.Settings.SourceDir(),
		IncludeDirs: cfg.Settings.IncludeDirs(),
		OutDir:      loader.LibDir,
		Library:     loader.Library,
		CC:          loader.CC,
		AR:          loader.AR,
		CFlags:      loader.CFlags,
	})
	if err != nil {
		return fmt.Errorf("native: %w", err)
	}
	log.Printf("glad-gen: built %s; link with %s", res.Archive, res.CgoDirective())
	return nil
}

func (r *runnerImpl) loadSource(ctx context.Context, cfg *Config) (*parser.Source, error) {
	if cfg.Bindings != "" {
		src, err := r.parser.Parse(cfg.Bindings)
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		return src, nil
	}

	s := cfg.Settings
	out, err := r.translator.Translate(ctx, translate.Request{
		IncludeDirs: s.IncludeDirs(),
		Allowlist: translate.Allowlist(
			s.BaseTypes(),
			s.Bindings.SymbolPrefix,
			s.Bindings.LoaderFunction,
			s.Bindings.ConstantPattern,
		),
	})
	if err != nil {
		return nil, err
	}
	src, err := r.parser.ParseSource(translatedFilename, out)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return src, nil
}

// outputPackage prefers the configured name, then the package already living
// in the output directory, then the package clause of the declarations.
func (r *runnerImpl) outputPackage(cfg *Config, src *parser.Source) (string, error) {
	if cfg.Package != "" {
		return cfg.Package, nil
	}
	name, ok, err := r.parser.PackageName(filepath.Dir(cfg.OutputFilename()))
	if err != nil {
		return "", err
	}
	if ok {
		return name, nil
	}
	if src.PkgName == "" {
		return "", fmt.Errorf("cannot determine package for %s; pass --package", cfg.OutputFilename())
	}
	return src.PkgName, nil
}

func logSkipped(agg *synth.Aggregate) {
	for _, name := range agg.Skipped {
		log.Printf("glad-gen: note: struct type %q has no function slot, skipped", name)
	}
}
