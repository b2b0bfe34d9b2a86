package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ogniew/pith"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   pith.Fetcher
	Extractor pith.Extractor
	Inspector pith.Extractor
	Converter pith.Converter
	Documents pith.DocumentService
	Writer    pith.DocumentWriter
	Limiter   pith.DomainLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log each fetch and extraction"`
	DB      string `help:"Database path (default $PITH_DB or ~/.pith/pith.db)"`

	Extract ExtractCmd `cmd:"" help:"Extract the main content of a page"`
	Inspect InspectCmd `cmd:"" help:"Dump the annotated document tree as XML"`
	Batch   BatchCmd   `cmd:"" help:"Fetch, extract, and store a list of URLs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source   string        `arg:"" help:"URL, local HTML file, or '-' for stdin"`
	Engine   string        `short:"e" default:"distill" enum:"distill,readability,trafilatura" help:"Extraction engine"`
	Markdown bool          `short:"m" help:"Emit Markdown instead of plain text (distill engine only)"`
	Store    bool          `short:"s" help:"Store the extraction in the local database"`
	Timeout  time.Duration `default:"10s" help:"Overall fetch and extraction deadline"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Source    string `arg:"" help:"URL, local HTML file, or '-' for stdin"`
	Candidate bool   `help:"Dump only the selected candidate subtree"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" help:"URLs to fetch and extract"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `default:"1" help:"Requests per second per domain"`
	Out         string   `short:"o" help:"Also write each document as a markdown file under this directory"`
}
