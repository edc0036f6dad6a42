package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type createAccountCmd struct {
	name string
	kind string
}

func (*createAccountCmd) Name() string     { return "create-account" }
func (*createAccountCmd) Synopsis() string { return "create a new account" }
func (*createAccountCmd) Usage() string {
	return `pl create-account -name <name> -kind <external|budget>

  Creates a new account:
  - name: the account name, unique among accounts (e.g., "checking").
  - kind: "external" for accounts outside of your budget (employer, shops),
    "budget" for the envelopes you manage.
`
}

func (c *createAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required)")
	f.StringVar(&c.kind, "kind", "", "Account kind: external or budget (required)")
}

func (c *createAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	kind, err := ledger.ParseAccountKind(c.kind)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid -kind: %v\n", err)
		return subcommands.ExitUsageError
	}

	return execute(ledger.AccountCreated{Name: ledger.AccountName(c.name), Kind: kind}, nil)
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts" }
func (*accountsCmd) Usage() string {
	return `pl accounts

  Lists all accounts and their kind, by name.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(nil, func(l *ledger.Events) (string, error) {
		return renderer.Accounts(l.AllAccounts()), nil
	})
}
