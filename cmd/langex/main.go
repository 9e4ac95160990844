package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/langex"
	"github.com/fwojciec/langex/crawl"
	"github.com/fwojciec/langex/fs"
	"github.com/fwojciec/langex/goquery"
	langexhttp "github.com/fwojciec/langex/http"
	langexslog "github.com/fwojciec/langex/slog"
	"github.com/fwojciec/langex/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher langex.Fetcher

	// SQLite database used for the optional export.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Headers string        `short:"d" type:"path" env:"LANGEX_HEADERS" help:"File of 'Key: Value' request headers sent with every fetch"`
	Begin   int           `short:"b" default:"1" help:"First page to fetch"`
	End     int           `short:"e" default:"1" help:"Page to stop at (exclusive); 0 fetches until a page fails"`
	BaseURL string        `name:"base-url" default:"${base_url}" env:"LANGEX_BASE_URL" help:"URL of the first listing page"`
	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Output  string        `short:"o" type:"path" help:"Write JSON to this file instead of stdout"`
	DB      string        `name:"db" type:"path" env:"LANGEX_DB" help:"Also export the run to this SQLite database"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("langex"),
		kong.Description("Export profiles from the language exchange listing as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"base_url": langex.DefaultBaseURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.End < 0 {
		return fmt.Errorf("end must not be negative, got %d", cli.End)
	}

	// Headers are loaded before anything touches the network.
	var headers langex.Headers
	if cli.Headers != "" {
		headers, err = langexhttp.LoadHeaders(cli.Headers)
		if err != nil {
			return fmt.Errorf("failed to load headers from %q: %w", cli.Headers, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var fetcher langex.Fetcher = langexhttp.NewFetcher(langexhttp.WithTimeout(cli.Timeout))
	if m.Fetcher != nil {
		fetcher = m.Fetcher
	}

	var writer langex.PersonWriter = fs.NewWriter(stdout)
	if cli.Output != "" {
		writer = fs.NewFileWriter(cli.Output)
	}

	var store langex.PersonStore
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LANGEX_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		store = sqlite.NewPersonStore(m.DB)
	}

	cmd := &ExportCmd{
		Crawler: &crawl.Crawler{
			Fetcher:   langexslog.NewLoggingFetcher(fetcher, logger),
			Extractor: langexslog.NewLoggingPageExtractor(goquery.NewPageExtractor(), logger),
			BaseURL:   cli.BaseURL,
			Headers:   headers,
		},
		Writer: writer,
		Store:  store,
		Stderr: stderr,
	}

	return cmd.Run(ctx, langex.PageRange{Begin: cli.Begin, End: cli.End})
}
