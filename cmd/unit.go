package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type createUnitCmd struct {
	name          string
	decimalPlaces int
}

func (*createUnitCmd) Name() string     { return "create-unit" }
func (*createUnitCmd) Synopsis() string { return "create a new unit" }
func (*createUnitCmd) Usage() string {
	return `pl create-unit -name <name> [-decimal-places <n>]

  Creates a new unit of account:
  - name: the unit name, unique among units (e.g., "USD", "BTC", "hours").
  - decimal-places: the exact number of decimal places every amount of this
    unit must be written with. Defaults to the minor unit of the currency
    when the name is an ISO 4217 code (e.g., 2 for "USD", 0 for "JPY").
`
}

func (c *createUnitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Unit name (required)")
	f.IntVar(&c.decimalPlaces, "decimal-places", -1, "Number of decimal places of the unit amounts")
}

// currencyDecimalPlaces returns the minor unit of an ISO 4217 currency code.
func currencyDecimalPlaces(code string) (uint8, bool) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return 0, false
	}
	return uint8(cur.Fraction), true
}

func (c *createUnitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	var places uint8
	switch {
	case c.decimalPlaces < 0:
		p, ok := currencyDecimalPlaces(c.name)
		if !ok {
			fmt.Fprintf(stderr, "Error: %q is not a known currency code, -decimal-places is required.\n", c.name)
			return subcommands.ExitUsageError
		}
		places = p
	case c.decimalPlaces > math.MaxUint8:
		fmt.Fprintf(stderr, "Error: -decimal-places must be at most %d.\n", math.MaxUint8)
		return subcommands.ExitUsageError
	default:
		places = uint8(c.decimalPlaces)
	}

	return execute(ledger.UnitCreated{Name: ledger.UnitName(c.name), DecimalPlaces: places}, nil)
}

type unitsCmd struct{}

func (*unitsCmd) Name() string     { return "units" }
func (*unitsCmd) Synopsis() string { return "list units" }
func (*unitsCmd) Usage() string {
	return `pl units

  Lists all units and their decimal places, by name.
`
}

func (*unitsCmd) SetFlags(f *flag.FlagSet) {}

func (*unitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execute(nil, func(l *ledger.Events) (string, error) {
		return renderer.Units(l.AllUnits()), nil
	})
}
