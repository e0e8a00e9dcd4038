package native

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/seitarof/glad-gen/internal/toolchain"
)

// Request describes the static library to build from the loader sources.
type Request struct {
	SourceDir   string
	IncludeDirs []string
	OutDir      string
	Library     string
	CC          string
	AR          string
	CFlags      []string
}

// Result locates the built archive.
type Result struct {
	Archive string
	Objects []string
	LDFlags string
}

// CgoDirective returns the line a consuming cgo package needs to link the
// archive.
func (r *Result) CgoDirective() string {
	return "#cgo LDFLAGS: " + r.LDFlags
}

// Builder compiles the vendored loader into a static library.
type Builder interface {
	Build(ctx context.Context, req Request) (*Result, error)
}

type builderImpl struct {
	runner toolchain.Runner
	jobs   int
}

// New returns a builder compiling up to one source per CPU at a time.
func New(r toolchain.Runner) Builder {
	return &builderImpl{runner: r, jobs: runtime.NumCPU()}
}

func (b *builderImpl) Build(ctx context.Context, req Request) (*Result, error) {
	if req.Library == "" {
		return nil, fmt.Errorf("no library name")
	}
	sources, err := filepath.Glob(filepath.Join(req.SourceDir, "*.c"))
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no C sources in %s", req.SourceDir)
	}
	sort.Strings(sources)

	outDir, err := filepath.Abs(req.OutDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	cc := valueOr(req.CC, "cc")
	objects := make([]string, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.jobs)
	for i, src := range sources {
		obj := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(src), ".c")+".o")
		objects[i] = obj
		g.Go(func() error {
			args := append([]string(nil), req.CFlags...)
			for _, dir := range req.IncludeDirs {
				args = append(args, "-I"+dir)
			}
			args = append(args, "-c", src, "-o", obj)
			if _, err := b.runner.Run(gctx, toolchain.Command{Name: cc, Args: args}); err != nil {
				return fmt.Errorf("compile %s: %w", src, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	archive := filepath.Join(outDir, "lib"+req.Library+".a")
	arArgs := append([]string{"rcs", archive}, objects...)
	if _, err := b.runner.Run(ctx, toolchain.Command{Name: valueOr(req.AR, "ar"), Args: arArgs}); err != nil {
		return nil, fmt.Errorf("archive %s: %w", archive, err)
	}

	return &Result{
		Archive: archive,
		Objects: objects,
		LDFlags: "-L" + outDir + " -l" + req.Library,
	}, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
