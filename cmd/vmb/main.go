// ABOUTME: CLI entrypoint for the Vancouver Minor Baseball site with serve, routes, and browse modes.
// ABOUTME: Loads content, builds the navigation registry once, and hands it to the chosen mode.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmbexpos/vmb/content"
	"github.com/vmbexpos/vmb/signup"
	"github.com/vmbexpos/vmb/tui"
	"github.com/vmbexpos/vmb/web"
)

var version = "dev"

// config holds all CLI configuration parsed from flags and the environment.
type config struct {
	command     string
	host        string
	port        int
	dataDir     string
	contentFile string
	baseURL     string
	imageDir    string
	noSignups   bool
}

func main() {
	loadDotEnvAuto()

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg, os.Stdout))
}

// parseArgs reads an optional subcommand followed by flags. Flag defaults
// come from VMB_* environment variables when set.
func parseArgs(args []string, stderr io.Writer) (config, error) {
	cfg := config{command: "serve"}
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cfg.command = args[0]
		args = args[1:]
	}

	switch cfg.command {
	case "serve", "routes", "browse", "version", "help":
	default:
		return cfg, fmt.Errorf("unknown command %q", cfg.command)
	}

	port, err := envInt("VMB_PORT", 8000)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("vmb "+cfg.command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.host, "host", envOr("VMB_HOST", "127.0.0.1"), "Listen host")
	fs.IntVar(&cfg.port, "port", port, "Listen port")
	fs.StringVar(&cfg.dataDir, "data-dir", os.Getenv("VMB_DATA_DIR"), "Data directory for the signup database (default: $XDG_DATA_HOME/vmb)")
	fs.StringVar(&cfg.contentFile, "content", os.Getenv("VMB_CONTENT"), "YAML content file (default: built-in content)")
	fs.StringVar(&cfg.baseURL, "base-url", os.Getenv("VMB_BASE_URL"), "Public origin used in sitemap links")
	fs.StringVar(&cfg.imageDir, "image-dir", envOr("VMB_IMAGE_DIR", filepath.Join("static", "images")), "Directory served at /static/images/")
	fs.BoolVar(&cfg.noSignups, "no-signups", false, "Disable the email updates form")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return cfg, nil
}

// run dispatches to the configured command and returns an exit code.
func run(cfg config, stdout io.Writer) int {
	switch cfg.command {
	case "version":
		fmt.Fprintf(stdout, "vmb %s\n", version)
		return 0
	case "help":
		printHelp(stdout, version)
		return 0
	}

	site, err := loadSite(cfg.contentFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	switch cfg.command {
	case "routes":
		printRoutes(stdout, site.Registry())
		return 0
	case "browse":
		return runBrowse(site)
	default:
		return runServe(cfg, site)
	}
}

// loadSite returns the content from path, or the built-in content when path is empty.
func loadSite(path string) (*content.Site, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

// resolveDataDir returns the data directory to use, preferring an explicit
// override and falling back to the XDG-based default.
func resolveDataDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultDataDir()
}

// openSignups opens the signup database under dataDir, creating the directory.
func openSignups(dataDir string) (*signup.Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return signup.Open(filepath.Join(dataDir, "signups.db"))
}

// runServe starts the web server and blocks until SIGINT/SIGTERM.
func runServe(cfg config, site *content.Site) int {
	registry := site.Registry()
	log.Printf("navigation registry built pages=%d", registry.Len())

	scfg := web.ServerConfig{
		Addr:     fmt.Sprintf("%s:%d", cfg.host, cfg.port),
		Site:     site,
		Registry: registry,
		BaseURL:  cfg.baseURL,
	}
	if info, err := os.Stat(cfg.imageDir); err == nil && info.IsDir() {
		scfg.ImageDir = cfg.imageDir
	} else {
		log.Printf("image directory %s not found; run placeholders to generate images", cfg.imageDir)
	}

	if !cfg.noSignups {
		dataDir, err := resolveDataDir(cfg.dataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		store, err := openSignups(dataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer store.Close()
		scfg.Signups = store
		log.Printf("email signups enabled db=%s", filepath.Join(dataDir, "signups.db"))
	}

	srv, err := web.NewServer(scfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("listening addr=%s", srv.Addr())
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	log.Printf("server stopped")
	return 0
}

// runBrowse opens the interactive navigation browser.
func runBrowse(site *content.Site) int {
	b := tui.NewBrowser(site.Navigation, site.Registry(), web.HasDedicatedHandler)
	if _, err := tea.NewProgram(b, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// envOr returns the named environment variable, or def when unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt parses the named environment variable as an int, or returns def when unset.
func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
