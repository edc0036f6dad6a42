package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type recordTransactionCmd struct {
	date string
}

func (*recordTransactionCmd) Name() string     { return "record-transaction" }
func (*recordTransactionCmd) Synopsis() string { return "record a new transaction" }
func (*recordTransactionCmd) Usage() string {
	return `pl record-transaction [-date <YYYY-MM-DD>]

  Records a new, empty, transaction and prints its id. Moves are then added to
  it with add-move. Transaction ids are assigned in recording order, starting
  at #1.
`
}

func (c *recordTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Transaction date (defaults to today)")
}

func (c *recordTransactionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		day = d
	}

	return execute(ledger.TransactionRecorded{Date: day}, func(l *ledger.Events) (string, error) {
		id, ok := l.LastTransactionID()
		if !ok {
			return "", fmt.Errorf("no transaction recorded")
		}
		return renderer.TransactionRecorded(id), nil
	})
}

type showTransactionCmd struct {
	id string
}

func (*showTransactionCmd) Name() string     { return "show-transaction" }
func (*showTransactionCmd) Synopsis() string { return "show a transaction and its moves" }
func (*showTransactionCmd) Usage() string {
	return `pl show-transaction -id <id>

  Shows the date of a transaction and all its moves, in the order they were added.
  The id can be written "3" or "#3".
`
}

func (c *showTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id (required)")
}

func (c *showTransactionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := ledger.ParseTransactionID(c.id)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return execute(nil, func(l *ledger.Events) (string, error) {
		tx, moves, err := l.TransactionMoves(id)
		if err != nil {
			return "", err
		}
		return renderer.Transaction(tx, moves), nil
	})
}
