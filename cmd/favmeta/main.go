package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/favmeta"
	"github.com/fwojciec/favmeta/goquery"
	favhttp "github.com/fwojciec/favmeta/http"
	"github.com/fwojciec/favmeta/i18n"
	"github.com/fwojciec/favmeta/lookup"
	"github.com/fwojciec/favmeta/rod"
	favslog "github.com/fwojciec/favmeta/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by the shell command. Set before calling Run().
	Stdin io.Reader

	// Fetcher overrides the fetcher selected by --via. Used for end-to-end testing.
	Fetcher favmeta.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
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
		kong.Name("favmeta"),
		kong.Description("Look up a website's favicons, title, keywords and description"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(kongVars),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'favmeta --help' to see available commands")
		fmt.Fprintln(stderr, err)
		return err
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher, err := m.newFetcher(cli)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	defer fetcher.Close()

	deps.Localizer = i18n.New(cli.Locale)
	deps.JSON = cli.JSON
	deps.Examples = DefaultExamples
	deps.Service = lookup.NewService(
		favslog.NewLoggingFetcher(fetcher, logger),
		favslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		lookup.WithLogger(logger),
	)

	return kongCtx.Run(deps)
}

func (m *Main) newFetcher(cli *CLI) (favmeta.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	switch cli.Via {
	case ViaDirect:
		return favhttp.NewFetcher(favhttp.WithTimeout(cli.Timeout)), nil
	case ViaBrowser:
		timeout := cli.Timeout
		if timeout == 0 {
			timeout = rod.DefaultFetchTimeout
		}
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return fetcher, nil
	default:
		return favhttp.NewRelayFetcher(
			favhttp.WithEndpoint(cli.Relay),
			favhttp.WithTimeout(cli.Timeout),
		), nil
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
