// Command gen-docs writes the tfsprops reference as markdown pages, manual
// pages or both.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/tmeckel/tfsprops/internal/build"
	"github.com/tmeckel/tfsprops/internal/cmd/root"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/docs"
	"go.uber.org/zap"
)

type genOptions struct {
	dir      string
	markdown bool
	manPages bool
}

func main() {
	if err := run(os.Args, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil || opts == nil {
		return err
	}

	cmdCtx, err := util.NewCmdContext()
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}
	rootCmd, err := root.NewCmdRoot(cmdCtx, build.Version, build.Date)
	if err != nil {
		return err
	}
	rootCmd.InitDefaultHelpCmd()

	zap.L().Debug("Generating documentation",
		zap.String("dir", opts.dir),
		zap.String("version", build.Version),
		zap.Bool("markdown", opts.markdown),
		zap.Bool("man", opts.manPages))

	if opts.markdown {
		if err := docs.GenMarkdownTree(rootCmd, filepath.Join(opts.dir, "markdown"), relativeLink); err != nil {
			return fmt.Errorf("failed to generate markdown pages: %w", err)
		}
	}
	if opts.manPages {
		if err := docs.GenManTree(rootCmd, filepath.Join(opts.dir, "man1"), build.Version); err != nil {
			return fmt.Errorf("failed to generate manual pages: %w", err)
		}
	}
	return nil
}

// parseArgs returns nil options when only the usage was requested.
func parseArgs(args []string, stderr io.Writer) (*genOptions, error) {
	opts := &genOptions{}

	flags := pflag.NewFlagSet(filepath.Base(args[0]), pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.dir, "doc-path", "", "Directory the `path`/markdown and path/man1 trees are written to")
	flags.BoolVar(&opts.markdown, "markdown", false, "Generate markdown pages")
	flags.BoolVar(&opts.manPages, "man-page", false, "Generate manual pages")
	help := flags.BoolP("help", "h", false, "Show this help")

	if err := flags.Parse(args[1:]); err != nil {
		return nil, err
	}
	if *help {
		fmt.Fprintf(stderr, "Usage of %s:\n\n%s", flags.Name(), flags.FlagUsages())
		return nil, nil
	}
	if opts.dir == "" {
		return nil, errors.New("--doc-path not set")
	}
	if !opts.markdown && !opts.manPages {
		opts.markdown, opts.manPages = true, true
	}
	return opts, nil
}

func relativeLink(name string) string {
	return "./" + name
}
