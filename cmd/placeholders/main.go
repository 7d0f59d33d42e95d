// ABOUTME: CLI that writes placeholder hero, logo, and achievement images for the site.
// ABOUTME: Existing files are left alone unless -overwrite is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmbexpos/vmb/content"
	"github.com/vmbexpos/vmb/placeholder"
)

type config struct {
	dir         string
	contentFile string
	overwrite   bool
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(run(cfg, os.Stdout, os.Stderr))
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("placeholders", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.dir, "dir", filepath.Join("static", "images"), "Directory to write images into")
	fs.StringVar(&cfg.contentFile, "content", os.Getenv("VMB_CONTENT"), "YAML content file (default: built-in content)")
	fs.BoolVar(&cfg.overwrite, "overwrite", false, "Replace images that already exist")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return cfg, nil
}

func run(cfg config, stdout, stderr io.Writer) int {
	var (
		site *content.Site
		err  error
	)
	if cfg.contentFile == "" {
		site, err = content.Default()
	} else {
		site, err = content.Load(cfg.contentFile)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rep, err := placeholder.Generate(cfg.dir, placeholder.Plan(site.Achievements), cfg.overwrite, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%d created, %d skipped\n", len(rep.Created), len(rep.Skipped))
	return 0
}
