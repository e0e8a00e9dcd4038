package translate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seitarof/glad-gen/internal/toolchain"
)

const (
	// HeaderName is the virtual header handed to the translator.
	HeaderName = "glad_includer.h"
	// HeaderContents defines the translation flag and pulls in the loader.
	HeaderContents = "#define GLAD_GEN\n#include <glad/glad.h>\n"
)

// Request describes one translation of the loader headers.
type Request struct {
	IncludeDirs []string
	Allowlist   []string
}

// Translator turns the loader headers into Go declarations.
type Translator interface {
	Translate(ctx context.Context, req Request) ([]byte, error)
}

type commandTranslator struct {
	command string
	args    []string
	runner  toolchain.Runner
}

// New returns a translator that runs command. args go before the generated
// allow-list and header arguments.
func New(command string, args []string, r toolchain.Runner) Translator {
	return &commandTranslator{command: command, args: args, runner: r}
}

// Allowlist returns the items the translator must keep: the base types,
// every loader function pointer, the loader entry function and all OpenGL
// constants.
func Allowlist(baseTypes []string, symbolPrefix, loaderFunc, constantPattern string) []string {
	out := make([]string, 0, len(baseTypes)+3)
	out = append(out, baseTypes...)
	out = append(out, symbolPrefix+".*", loaderFunc)
	if constantPattern != "" {
		out = append(out, constantPattern)
	}
	return out
}

func (t *commandTranslator) Translate(ctx context.Context, req Request) ([]byte, error) {
	dir, err := os.MkdirTemp("", "glad-gen-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	header := filepath.Join(dir, HeaderName)
	if err := os.WriteFile(header, []byte(HeaderContents), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", HeaderName, err)
	}

	out, err := t.runner.Run(ctx, toolchain.Command{
		Name: t.command,
		Args: t.buildArgs(header, req),
	})
	if err != nil {
		return nil, fmt.Errorf("translate headers: %w", err)
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, fmt.Errorf("translate headers: %s produced no declarations", t.command)
	}
	return out, nil
}

func (t *commandTranslator) buildArgs(header string, req Request) []string {
	args := append([]string(nil), t.args...)
	for _, item := range req.Allowlist {
		args = append(args, "--allowlist-item", item)
	}
	args = append(args, header, "--")
	for _, dir := range req.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	return args
}
