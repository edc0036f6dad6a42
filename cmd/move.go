package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

type addMoveCmd struct {
	transaction string
	debit       string
	credit      string
	amount      string
	unit        string
}

func (*addMoveCmd) Name() string     { return "add-move" }
func (*addMoveCmd) Synopsis() string { return "add a move to a transaction" }
func (*addMoveCmd) Usage() string {
	return `pl add-move -transaction <id> -debit <account> -credit <account> -amount <amount> -unit <unit>

  Moves an amount of a unit from the debit account to the credit account, as
  part of a recorded transaction:
  - transaction: the transaction id, "3" or "#3".
  - debit, credit: two distinct existing accounts.
  - amount: a non negative decimal, written with exactly the decimal places of the unit.
  - unit: an existing unit.
`
}

func (c *addMoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transaction, "transaction", "", "Transaction id (required)")
	f.StringVar(&c.debit, "debit", "", "Account the amount is taken from (required)")
	f.StringVar(&c.credit, "credit", "", "Account the amount is given to (required)")
	f.StringVar(&c.amount, "amount", "", "Amount moved (required)")
	f.StringVar(&c.unit, "unit", "", "Unit of the amount (required)")
}

func (c *addMoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.debit == "" || c.credit == "" || c.unit == "" {
		fmt.Fprintln(stderr, "Error: -debit, -credit and -unit are required.")
		return subcommands.ExitUsageError
	}
	tx, err := ledger.ParseTransactionID(c.transaction)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := ledger.ParseNonNegativeAmount(c.amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ev, err := ledger.NewMoveAdded(tx, ledger.AccountName(c.debit), ledger.AccountName(c.credit), amount, ledger.UnitName(c.unit))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return execute(ev, nil)
}
