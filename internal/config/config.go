package config

import (
	"fmt"
	"go/token"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/seitarof/glad-gen/internal/classifier"
	"github.com/seitarof/glad-gen/internal/pipeline"
	"github.com/seitarof/glad-gen/internal/registry"
	"github.com/seitarof/glad-gen/internal/shape"
)

// DefaultFilename is looked up when no --config flag is given.
const DefaultFilename = "glad.toml"

// Settings is the content of glad.toml.
type Settings struct {
	Loader     LoaderSettings     `toml:"loader"`
	Bindings   BindingsSettings   `toml:"bindings"`
	Translator TranslatorSettings `toml:"translator"`
	Output     OutputSettings     `toml:"output"`
}

// LoaderSettings locates the vendored loader sources.
type LoaderSettings struct {
	Root        string   `toml:"root"`
	IncludePath string   `toml:"include_path"`
	Library     string   `toml:"library"`
	LibDir      string   `toml:"lib_dir"`
	CC          string   `toml:"cc"`
	AR          string   `toml:"ar"`
	CFlags      []string `toml:"cflags"`
}

// BindingsSettings are the naming conventions of the translated loader.
type BindingsSettings struct {
	SymbolPrefix       string   `toml:"symbol_prefix"`
	LoaderFunction     string   `toml:"loader_function"`
	PointerTypePattern string   `toml:"pointer_type_pattern"`
	ConstantPattern    string   `toml:"constant_pattern"`
	ExternDirective    string   `toml:"extern_directive"`
	ExtraBaseTypes     []string `toml:"extra_base_types"`
}

// TranslatorSettings configure the external header translator.
type TranslatorSettings struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// OutputSettings describe the generated unit.
type OutputSettings struct {
	File     string `toml:"file"`
	Package  string `toml:"package"`
	TypeName string `toml:"type_name"`
}

// Default returns the settings used for a stock GLAD checkout.
func Default() Settings {
	return Settings{
		Loader: LoaderSettings{
			Root:    "glad",
			Library: "glad",
			LibDir:  "lib",
			CFlags:  []string{"-O2", "-fPIC"},
		},
		Bindings: BindingsSettings{
			SymbolPrefix:       classifier.DefaultSymbolPrefix,
			LoaderFunction:     classifier.DefaultLoaderFunc,
			PointerTypePattern: registry.DefaultPointerTypePattern,
			ConstantPattern:    "GL_.*",
			ExternDirective:    shape.DefaultDirective,
		},
		Translator: TranslatorSettings{
			Command: "glad-translate",
		},
		Output: OutputSettings{
			File:     "gl_gen.go",
			TypeName: "GL",
		},
	}
}

// Load decodes path on top of the defaults. Unknown keys are rejected.
func Load(path string) (Settings, error) {
	s := Default()
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Settings{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks settings that would otherwise fail deep inside a run.
func (s Settings) Validate() error {
	if s.Bindings.SymbolPrefix == "" {
		return fmt.Errorf("bindings.symbol_prefix must not be empty")
	}
	if s.Bindings.LoaderFunction == "" {
		return fmt.Errorf("bindings.loader_function must not be empty")
	}
	if s.Bindings.ExternDirective == "" {
		return fmt.Errorf("bindings.extern_directive must not be empty")
	}
	if _, err := regexp.Compile(s.Bindings.PointerTypePattern); err != nil {
		return fmt.Errorf("bindings.pointer_type_pattern: %w", err)
	}
	if !token.IsIdentifier(s.Output.TypeName) || !token.IsExported(s.Output.TypeName) {
		return fmt.Errorf("output.type_name %q is not an exported Go identifier", s.Output.TypeName)
	}
	if s.Output.Package != "" && !token.IsIdentifier(s.Output.Package) {
		return fmt.Errorf("output.package %q is not a valid package name", s.Output.Package)
	}
	return nil
}

// BaseTypes returns the default base types followed by the extra ones.
func (s Settings) BaseTypes() []string {
	out := append([]string(nil), registry.DefaultBaseTypes...)
	return append(out, s.Bindings.ExtraBaseTypes...)
}

// Rules returns the pipeline conventions described by the settings.
func (s Settings) Rules() pipeline.Rules {
	return pipeline.Rules{
		BaseTypes:          s.BaseTypes(),
		PointerTypePattern: s.Bindings.PointerTypePattern,
		SymbolPrefix:       s.Bindings.SymbolPrefix,
		LoaderFunc:         s.Bindings.LoaderFunction,
		Directive:          s.Bindings.ExternDirective,
	}
}

// IncludeDirs returns <root>/include followed by the extra include path.
func (s Settings) IncludeDirs() []string {
	dirs := []string{filepath.Join(s.Loader.Root, "include")}
	return append(dirs, SplitIncludePath(s.Loader.IncludePath)...)
}

// SourceDir returns <root>/src.
func (s Settings) SourceDir() string {
	return filepath.Join(s.Loader.Root, "src")
}

// SplitIncludePath splits a ':'-separated include path, dropping empty
// entries.
func SplitIncludePath(path string) []string {
	var out []string
	for _, p := range strings.Split(path, ":") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
