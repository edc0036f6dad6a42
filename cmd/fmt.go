package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pl fmt

  Validates the whole ledger file, event by event, and writes it back in the
  canonical JSONL format: one event per line, keys in a fixed order.
  Fails without touching the file if any event is invalid.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := *ledgerFile
	l, err := ledger.DecodeFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.SaveFile(path, l); err != nil {
		fmt.Fprintf(stderr, "Error saving formatted ledger %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	logger.Info().Str("file", path).Int("events", l.Len()).Msg("ledger-formatted")
	return subcommands.ExitSuccess
}
