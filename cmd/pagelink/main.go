package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagelink"
	"github.com/fwojciec/pagelink/clipboard"
	"github.com/fwojciec/pagelink/copier"
	"github.com/fwojciec/pagelink/goquery"
	"github.com/fwojciec/pagelink/htmltomarkdown"
	"github.com/fwojciec/pagelink/rod"
	pageslog "github.com/fwojciec/pagelink/slog"
	"github.com/fwojciec/pagelink/sqlite"
	"github.com/fwojciec/pagelink/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding the activation cache.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store pagelink.ActivationStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelink"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelink --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGELINK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Store = sqlite.NewActivationStore(m.DB)
	deps.DB = m.DB
	deps.Store = m.Store

	// Wire command-specific dependencies based on command
	if cmd == "copy" || cmd == "watch" {
		browser, window, generic := cli.Copy.Browser, cli.Copy.Window, cli.Copy.Generic
		verbose, debug := cli.Copy.Verbose, cli.Copy.Debug
		if cmd == "watch" {
			browser, window, generic = cli.Watch.Browser, cli.Watch.Window, cli.Watch.Generic
			verbose, debug = cli.Watch.Verbose, cli.Watch.Debug
		}

		source, err := connectSource(browser)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to connect to browser: %w", err)
		}
		defer source.Close()

		var clip pagelink.Clipboard = clipboard.NewSystem()
		if verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			source = pageslog.NewLoggingSource(source, logger)
			clip = pageslog.NewLoggingClipboard(clip, logger)
		}

		c := &copier.Copier{
			Source:   source,
			Registry: buildRegistry(generic),
			Detector: pagelink.NewDetector(m.Store, window),
			Gateway:  pagelink.NewGateway(clip),
			Notifier: &writerNotifier{stdout: stdout, stderr: stderr},
			Debug:    debug,
		}
		if cmd == "copy" && cli.Copy.ClipboardCheck {
			c.Checker = clipboard.NewChecker(clip)
		}
		if cmd == "copy" && cli.Copy.Format == "markdown" {
			c.Converter = htmltomarkdown.NewConverter()
		}

		deps.Source = source
		deps.Copier = c
	}

	if cmd == "sites" {
		deps.Registry = buildRegistry(cli.Sites.Generic)
	}

	if cmd == "doctor" {
		deps.ConnectSource = func() (pagelink.PageSource, error) {
			return connectSource(cli.Doctor.Browser)
		}
		deps.Clipboard = clipboard.NewSystem()
	}

	return kongCtx.Run(deps)
}

// connectSource attaches to the browser at the given DevTools address, or
// launches the user's own browser profile when none is given.
func connectSource(browser string) (pagelink.PageSource, error) {
	if browser != "" {
		return rod.NewSource(browser)
	}
	return rod.NewUserSource()
}

// buildRegistry assembles the site handlers in selection order. Hosts and
// prefixes beyond the built-in defaults come from environment variables; a
// handler configured with nothing simply never matches.
func buildRegistry(generic bool) *pagelink.Registry {
	registry := pagelink.NewRegistry(
		goquery.NewDocsHandler(envList("PAGELINK_DOCS_HOSTS")...),
		goquery.NewWikiHandler(envList("PAGELINK_WIKI_HOSTS")...),
		goquery.NewRecordsHandler(envList("PAGELINK_RECORDS_PREFIXES")...),
		goquery.NewReviewHandler(envList("PAGELINK_REVIEW_HOSTS")...),
		goquery.NewPipelinesHandler(envList("PAGELINK_PIPELINE_HOSTS")...),
	)
	// The generic handler recognizes everything, so it must come last.
	if generic {
		registry.Register(trafilatura.NewHandler())
	}
	return registry
}

// envList parses a comma-separated environment variable into a list.
func envList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func defaultDBPath() string {
	if path := os.Getenv("PAGELINK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagelink.db"
	}
	dir := filepath.Join(home, ".pagelink")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagelink.db")
}
