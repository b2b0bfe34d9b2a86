package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/ogniew/pith"
	"github.com/ogniew/pith/distill"
	"github.com/ogniew/pith/fs"
	pithhtml "github.com/ogniew/pith/html"
	"github.com/ogniew/pith/htmltomarkdown"
	pithhttp "github.com/ogniew/pith/http"
	"github.com/ogniew/pith/readability"
	pithslog "github.com/ogniew/pith/slog"
	"github.com/ogniew/pith/sqlite"
	"github.com/ogniew/pith/trafilatura"
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

	// SQLite database used by the document service.
	DB *sqlite.DB

	// DocumentService for end-to-end testing.
	DocumentService pith.DocumentService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pith"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pith --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PITH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()
	m.DocumentService = sqlite.NewDocumentService(m.DB)

	// Wire services into dependencies.
	deps.Documents = m.DocumentService
	deps.Fetcher = pithslog.NewLoggingFetcher(pithhttp.NewFetcher(), deps.Logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Inspector = distill.NewExtractor(pithhtml.NewParser(), distill.DefaultConfig())
	deps.Extractor = pithslog.NewLoggingExtractor(engineFor(cli.Extract.Engine), deps.Logger)

	if cmd == "batch" {
		deps.Limiter = pithhttp.NewDomainLimiter(cli.Batch.RPS)
		if cli.Batch.Out != "" {
			deps.Writer = fs.NewWriter(cli.Batch.Out)
		}
	}

	return kongCtx.Run(deps)
}

// engineFor selects the extraction engine by name. Kong's enum constraint
// guarantees the name is one of the known engines.
func engineFor(name string) pith.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return distill.NewExtractor(pithhtml.NewParser(), distill.DefaultConfig())
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PITH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pith.db"
	}
	dir := filepath.Join(home, ".pith")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pith.db")
}
