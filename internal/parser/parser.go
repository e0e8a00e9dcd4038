package parser

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/go/packages"
)

// Parser loads translated declarations and inspects destination packages.
type Parser interface {
	Parse(filename string) (*Source, error)
	ParseSource(filename string, src []byte) (*Source, error)
	PackageName(dir string) (string, bool, error)
}

type parserImpl struct{}

// New returns default parser.
func New() Parser {
	return &parserImpl{}
}

func (p *parserImpl) Parse(filename string) (*Source, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", filename, err)
	}
	return p.ParseSource(filename, src)
}

func (p *parserImpl) ParseSource(filename string, src []byte) (*Source, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", filename, err)
	}

	return &Source{
		Filename: filename,
		PkgName:  file.Name.Name,
		Fset:     fset,
		File:     file,
		Src:      src,
		Items:    flatten(file),
	}, nil
}

// PackageName reports the package name already used by the Go files in
// dir. The second result is false when dir does not exist or holds no Go
// package yet.
func (p *parserImpl) PackageName(dir string) (string, bool, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("stat %q: %w", dir, err)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", false, fmt.Errorf("load package in %q: %w", dir, err)
	}
	if len(pkgs) == 0 || pkgs[0].Name == "" {
		return "", false, nil
	}
	return pkgs[0].Name, true, nil
}
