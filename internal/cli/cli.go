package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/seitarof/glad-gen/internal/config"
)

// ParseArgs parses command line arguments into Config. Settings come from
// the defaults, then glad.toml, then the flags.
func ParseArgs(args []string) (*Config, error) {
	return parseArgs(args, os.Getenv)
}

func parseArgs(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	var (
		loaderRoot  string
		includePath string
	)

	fset := pflag.NewFlagSet("glad-gen", pflag.ContinueOnError)
	fset.StringVarP(&cfg.ConfigFile, "config", "c", "", "settings file (default "+config.DefaultFilename+" when present)")
	fset.StringVar(&cfg.Bindings, "bindings", "", "already-translated declarations; skips the header translator")
	fset.StringVarP(&cfg.Filename, "output", "o", "", "output file name")
	fset.StringVar(&cfg.Package, "package", "", "package name of the generated file")
	fset.StringVar(&cfg.TypeName, "type-name", "", "name of the aggregate struct type")
	fset.StringVar(&loaderRoot, "loader-root", "", "directory holding the loader include/ and src/")
	fset.StringVar(&includePath, "include-path", "", "':'-separated extra include directories")
	fset.BoolVar(&cfg.SkipNative, "skip-native", false, "do not compile the loader library")
	fset.BoolVar(&cfg.Verbose, "verbose", false, "log notes about skipped declarations")
	fset.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if fset.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fset.Args(), " "))
	}

	settings, err := loadSettings(cfg.ConfigFile)
	if err != nil {
		return nil, err
	}

	if fset.Changed("output") {
		settings.Output.File = cfg.Filename
	}
	if fset.Changed("package") {
		settings.Output.Package = cfg.Package
	}
	if fset.Changed("type-name") {
		settings.Output.TypeName = cfg.TypeName
	}
	if fset.Changed("loader-root") {
		settings.Loader.Root = loaderRoot
	}
	if fset.Changed("include-path") {
		settings.Loader.IncludePath = includePath
	}
	if settings.Loader.CC == "" {
		settings.Loader.CC = getenv("CC")
	}
	if settings.Loader.AR == "" {
		settings.Loader.AR = getenv("AR")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(settings.Output.File) == "" {
		return nil, fmt.Errorf("--output is required")
	}

	cfg.Filename = settings.Output.File
	cfg.Package = settings.Output.Package
	cfg.TypeName = settings.Output.TypeName
	cfg.Settings = settings
	return cfg, nil
}

func loadSettings(path string) (config.Settings, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultFilename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return config.Settings{}, err
	}
	return config.Load(config.DefaultFilename)
}
