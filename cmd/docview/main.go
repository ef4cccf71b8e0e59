package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/alecthomas/kong"
	"github.com/helpsite/docview"
	"github.com/helpsite/docview/bleve"
	"github.com/helpsite/docview/fs"
	"github.com/helpsite/docview/goquery"
	"github.com/helpsite/docview/htmltomarkdown"
	dochttp "github.com/helpsite/docview/http"
	docslog "github.com/helpsite/docview/slog"
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
	// Input stream for the interactive session. Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docview"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docview --help' to see available commands")
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

	logOut := io.Discard
	if cli.Verbose {
		logOut = stderr
	}
	deps.Logger = slog.New(slog.NewTextHandler(logOut, nil))

	transport, err := newTransport(cli.Base, deps.Logger)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set DOCVIEW_BASE or pass --base with a corpus URL or directory")
		return err
	}
	defer transport.Close()

	deps.Transport = transport
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Build = func(records []docview.Record) (docview.Index, error) {
		index, err := bleve.NewIndex(records)
		if err != nil {
			return nil, err
		}
		return docslog.NewLoggingIndex(index, deps.Logger), nil
	}

	return kongCtx.Run(deps)
}

// newTransport picks the retrieval variant once, from the shape of base: a
// URL gets the network transport, anything else is treated as a corpus
// directory.
func newTransport(base string, logger *slog.Logger) (docview.Transport, error) {
	if base == "" {
		return nil, fmt.Errorf("no corpus base specified")
	}

	extractor := goquery.NewExtractor()

	var transport docview.Transport
	if u, err := url.Parse(base); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		transport = dochttp.NewTransport(base, extractor)
	} else {
		info, err := os.Stat(base)
		if err != nil {
			return nil, fmt.Errorf("corpus base %q: %w", base, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("corpus base %q is not a directory", base)
		}
		transport = fs.NewTransport(base, extractor)
	}

	return docslog.NewLoggingTransport(transport, logger), nil
}
