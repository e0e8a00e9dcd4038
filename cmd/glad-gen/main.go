package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/seitarof/glad-gen/internal/cli"
	"github.com/seitarof/glad-gen/internal/generator"
	"github.com/seitarof/glad-gen/internal/native"
	"github.com/seitarof/glad-gen/internal/parser"
	"github.com/seitarof/glad-gen/internal/toolchain"
	"github.com/seitarof/glad-gen/internal/translate"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	tc := toolchain.NewExecRunner()
	p := parser.New()
	t := translate.New(cfg.Settings.Translator.Command, cfg.Settings.Translator.Args, tc)
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)
	n := native.New(tc)

	runner := cli.NewRunner(p, t, g, n)
	if err := runner.Run(context.Background(), cfg); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
	os.Exit(1)
}
