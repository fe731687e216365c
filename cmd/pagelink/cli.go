package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagelink"
	"github.com/fwojciec/pagelink/copier"
	"github.com/fwojciec/pagelink/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Store  pagelink.ActivationStore

	// Registry is set for commands that inspect or select site handlers.
	Registry *pagelink.Registry

	// Copier and Source are set for copy and watch.
	Copier *copier.Copier
	Source pagelink.PageSource

	// ConnectSource and Clipboard are set for doctor, which probes the
	// environment itself instead of failing during wiring.
	ConnectSource func() (pagelink.PageSource, error)
	Clipboard     pagelink.Clipboard
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Copy   CopyCmd   `cmd:"" help:"Copy a link to the current browser page"`
	Watch  WatchCmd  `cmd:"" help:"Copy a link every time the active tab's address changes"`
	Sites  SitesCmd  `cmd:"" help:"List site handlers, or show which ones recognize a URL"`
	Clear  ClearCmd  `cmd:"" help:"Drop the cached activation"`
	Doctor DoctorCmd `cmd:"" help:"Check the environment (browser, clipboard, cache)"`
}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Browser        string        `help:"DevTools address of a running browser (defaults to launching the user profile)" env:"PAGELINK_BROWSER"`
	Window         time.Duration `default:"1s" help:"Activation window for double-activation detection"`
	Format         string        `default:"text" enum:"text,markdown" help:"Extra stdout rendering of the copied link"`
	Generic        bool          `help:"Fall back to a generic title handler for unrecognized pages"`
	ClipboardCheck bool          `help:"Also treat matching clipboard contents as a repeat activation"`
	Verbose        bool          `short:"v" help:"Log boundary calls to stderr"`
	Debug          bool          `help:"Emit per-step debug notifications"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Browser  string        `help:"DevTools address of a running browser (defaults to launching the user profile)" env:"PAGELINK_BROWSER"`
	Window   time.Duration `default:"1s" help:"Activation window for double-activation detection"`
	Interval time.Duration `default:"2s" help:"Polling interval for the active tab's address"`
	Generic  bool          `help:"Fall back to a generic title handler for unrecognized pages"`
	Verbose  bool          `short:"v" help:"Log boundary calls to stderr"`
	Debug    bool          `help:"Emit per-step debug notifications"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct {
	URL     string `arg:"" optional:"" help:"Show which handlers recognize this URL"`
	Generic bool   `help:"Include the generic fallback handler"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct{}

// DoctorCmd is the "doctor" subcommand.
type DoctorCmd struct {
	Browser string `help:"DevTools address of a running browser (defaults to launching the user profile)" env:"PAGELINK_BROWSER"`
}
