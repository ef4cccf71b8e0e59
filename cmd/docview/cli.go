package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/helpsite/docview"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Transport docview.Transport
	Converter docview.Converter
	Build     docview.IndexBuilder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Base    string `help:"Corpus base: a URL or a local directory" env:"DOCVIEW_BASE"`
	Verbose bool   `short:"v" help:"Log retrievals and queries to stderr"`

	Page   PageCmd   `cmd:"" help:"Retrieve and print one page"`
	Search SearchCmd `cmd:"" help:"Query the corpus and print ranked excerpts"`
	Open   OpenCmd   `cmd:"" help:"Browse the corpus interactively"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	ID string `arg:"" help:"Page identifier (e.g. 14-interrupts.html)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Query text"`
}

// OpenCmd is the "open" subcommand.
type OpenCmd struct {
	Start string `help:"Page to open first instead of the landing page"`
}
