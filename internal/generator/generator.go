package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/seitarof/glad-gen/internal/synth"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator writes the bindings unit for a synthesized aggregate.
type Generator interface {
	Generate(cfg Config, in Input) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

// Input is everything one generated unit is made of.
type Input struct {
	Package      string
	Source       string
	Declarations []byte
	TypeName     string
	Aggregate    *synth.Aggregate
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Package      string
	Source       string
	Declarations string
	TypeName     string
	Fields       []synth.Field
	Initializers []synth.Initializer
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a file writer that also creates missing parent
// directories.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, in Input) error {
	if in.Aggregate == nil {
		return fmt.Errorf("no aggregate")
	}
	if in.Package == "" {
		return fmt.Errorf("no package name")
	}
	if in.TypeName == "" {
		return fmt.Errorf("no aggregate type name")
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "bindings.go.tmpl", buildTemplateData(in)); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, data, 0o644)
}

func buildTemplateData(in Input) templateData {
	source := "translated declarations"
	if in.Source != "" {
		source = filepath.Base(in.Source)
	}
	return templateData{
		Package:      in.Package,
		Source:       source,
		Declarations: string(in.Declarations),
		TypeName:     in.TypeName,
		Fields:       in.Aggregate.Fields,
		Initializers: in.Aggregate.Initializers,
	}
}
