package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/favmeta"
	favhttp "github.com/fwojciec/favmeta/http"
	"github.com/fwojciec/favmeta/lookup"
)

// Fetch backends selectable with --via.
const (
	ViaRelay   = "relay"
	ViaDirect  = "direct"
	ViaBrowser = "browser"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Service   *lookup.Service
	Localizer favmeta.Localizer
	Examples  []Example
	JSON      bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Via     string        `default:"relay" enum:"relay,direct,browser" env:"FAVMETA_VIA" help:"How to fetch pages: relay, direct or browser"`
	Relay   string        `default:"${relay}" env:"FAVMETA_RELAY" help:"Relay endpoint; the target is passed as its url query parameter"`
	Locale  string        `short:"l" default:"en" env:"FAVMETA_LOCALE" help:"Locale for messages (en, zh)"`
	Timeout time.Duration `short:"t" default:"0s" help:"Request timeout (0 keeps the client default)"`
	JSON    bool          `short:"j" help:"Print results as JSON"`
	Verbose bool          `short:"v" help:"Log fetch and lookup details to stderr"`

	Lookup   LookupCmd   `cmd:"" help:"Look up icons and metadata for a website (the title is printed trimmed)"`
	Examples ExamplesCmd `cmd:"" help:"List example websites, or look them all up with --run"`
	Shell    ShellCmd    `cmd:"" help:"Read websites from stdin, one per line, and show the latest result"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	URL string `arg:"" optional:"" help:"Website address, e.g. github.com"`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	RunAll      bool `short:"r" name:"run" help:"Look up every example"`
	Concurrency int  `short:"c" default:"3" help:"Concurrent lookups with --run"`
}

// ShellCmd is the "shell" subcommand.
type ShellCmd struct{}

// Example is a website offered to try without typing.
type Example struct {
	Name string
	URL  string
}

// DefaultExamples are the websites listed by the examples command.
var DefaultExamples = []Example{
	{Name: "GitHub", URL: "github.com"},
	{Name: "Stack Overflow", URL: "stackoverflow.com"},
	{Name: "Microsoft", URL: "microsoft.com"},
	{Name: "Apple", URL: "apple.com"},
	{Name: "Amazon", URL: "amazon.com"},
	{Name: "Google", URL: "google.com"},
}

// kongVars are interpolated into CLI struct tags.
var kongVars = map[string]string{
	"relay": favhttp.DefaultRelayEndpoint,
}
