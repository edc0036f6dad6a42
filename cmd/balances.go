package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display the balance of every account" }
func (*balancesCmd) Usage() string {
	return `pl balances

  Displays, for every account, its balance in each unit it has moves in.
  Across all accounts the balances of a unit sum to zero.
`
}

func (*balancesCmd) SetFlags(f *flag.FlagSet) {}

func (*balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(nil, func(l *ledger.Events) (string, error) {
		return renderer.Balances(l.AllBalances()), nil
	})
}

type runningBalanceCmd struct {
	account string
	unit    string
}

func (*runningBalanceCmd) Name() string { return "running-balance" }
func (*runningBalanceCmd) Synopsis() string {
	return "display the balance of an account after each transaction"
}
func (*runningBalanceCmd) Usage() string {
	return `pl running-balance -account <account> -unit <unit>

  Displays, transaction by transaction, how the account balance in the unit
  changed and what it became.
`
}

func (c *runningBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account name (required)")
	f.StringVar(&c.unit, "unit", "", "Unit name (required)")
}

func (c *runningBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.unit == "" {
		fmt.Fprintln(stderr, "Error: -account and -unit are required.")
		return subcommands.ExitUsageError
	}
	account, unit := ledger.AccountName(c.account), ledger.UnitName(c.unit)

	return execute(nil, func(l *ledger.Events) (string, error) {
		return renderer.RunningBalance(account, unit, l.RunningBalance(account, unit)), nil
	})
}
