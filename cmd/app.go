// Package cmd implements the pl command line application.
//
// Each subcommand interprets one request: it loads the ledger file, appends
// at most one event, saves the ledger back and prints at most one report.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ledger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&createUnitCmd{}, "units")
	c.Register(&unitsCmd{}, "units")

	c.Register(&recordTransactionCmd{}, "transactions")
	c.Register(&showTransactionCmd{}, "transactions")
	c.Register(&addMoveCmd{}, "transactions")

	c.Register(&balancesCmd{}, "reports")
	c.Register(&runningBalanceCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSONL format). Defaults to $"+EnvLedgerFile+" or ledger.jsonl")
var Verbose = flag.Bool("v", false, "Print debug logs on stderr")
var raw = flag.Bool("raw", false, "Print reports as raw markdown")

var logFormat = "console"
var logger = zerolog.Nop()

// stdout and stderr are variables so tests can capture the output.
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

// Setup merges the environment configuration with the command line flags and
// installs the logger. It must be called after flag.Parse().
func Setup(cfg *Config) {
	if *ledgerFile == "" {
		*ledgerFile = cfg.LedgerFile
	}
	*Verbose = *Verbose || cfg.Verbose
	logFormat = cfg.LogFormat
	logger = NewLogger(stderr, logFormat, *Verbose)
	logger.Debug().Str("file", *ledgerFile).Msg("configured")
}

// LedgerFile returns the path of the ledger file in use.
func LedgerFile() string { return *ledgerFile }

// decodeLedger loads the ledger file, creating an empty one if it does not exist yet.
func decodeLedger() (*ledger.Events, error) {
	path := *ledgerFile
	l, err := ledger.DecodeFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("file", path).Msg("ledger-file-missing-creating-empty-ledger")
		if err := ledger.InitFile(path); err != nil {
			return nil, err
		}
		return ledger.NewEvents(), nil
	}
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", path).Int("events", l.Len()).Msg("ledger-loaded")
	return l, nil
}

// report renders a markdown report from the ledger.
type report func(l *ledger.Events) (string, error)

// execute runs the process contract of a request: load the ledger, append ev
// if not nil, save the ledger if it changed, and print rep if not nil.
func execute(ev ledger.Event, rep report) subcommands.ExitStatus {
	l, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if ev != nil {
		if err := l.TryPush(ev); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		logger.Debug().Str("event", string(ev.What())).Int("position", l.Len()-1).Msg("event-appended")

		if err := ledger.SaveFile(*ledgerFile, l); err != nil {
			fmt.Fprintf(stderr, "Error saving ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		logger.Debug().Str("file", *ledgerFile).Int("events", l.Len()).Msg("ledger-saved")
	}

	if rep != nil {
		doc, err := rep(l)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(doc)
	}
	return subcommands.ExitSuccess
}

// printMarkdown prints a markdown document, styled for the terminal unless -raw is set.
func printMarkdown(doc string) {
	if *raw {
		fmt.Fprint(stdout, doc)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("glamour-unavailable")
		fmt.Fprint(stdout, doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		logger.Debug().Err(err).Msg("glamour-render-failed")
		fmt.Fprint(stdout, doc)
		return
	}
	fmt.Fprint(stdout, out)
}
