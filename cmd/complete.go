package cmd

import (
	"os"
	"slices"
	"strings"

	"github.com/etnz/ledger"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictAccounts predicts the account names of the ledger file returned by path.
func predictAccounts(path func() string) complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		l, err := ledger.DecodeFile(path())
		if err != nil {
			return nil
		}
		var names []string
		for _, n := range l.AllAccountNames() {
			names = append(names, n.String())
		}
		return names
	})
}

// predictUnits predicts the unit names of the ledger file returned by path.
func predictUnits(path func() string) complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		l, err := ledger.DecodeFile(path())
		if err != nil {
			return nil
		}
		var names []string
		for _, n := range l.AllUnitNames() {
			names = append(names, n.String())
		}
		return names
	})
}

// predictTransactions predicts the transaction ids of the ledger file returned by path, most recent first.
func predictTransactions(path func() string) complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		l, err := ledger.DecodeFile(path())
		if err != nil {
			return nil
		}
		var ids []string
		for _, id := range slices.Backward(l.AllTransactionIDs()) {
			ids = append(ids, id.String()[1:])
		}
		return ids
	})
}

// ledgerFileFromLine returns the value of the -ledger-file flag typed in a
// command line, or fallback if there is none. Quoted paths are not supported.
func ledgerFileFromLine(line, fallback string) string {
	file := fallback
	args := strings.Fields(line)
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "ledger-file" {
			continue
		}
		switch {
		case hasValue:
			file = value
		case i+1 < len(args):
			file = args[i+1]
		}
	}
	return file
}

// Completion returns the shell completion of pl, predicting names from the ledger file at path,
// unless the line being completed sets -ledger-file.
func Completion(path string) *complete.Command {
	file := func() string { return ledgerFileFromLine(os.Getenv("COMP_LINE"), path) }
	accounts, units, transactions := predictAccounts(file), predictUnits(file), predictTransactions(file)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"v":           predict.Nothing,
			"raw":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"create-account": {Flags: map[string]complete.Predictor{
				"name": predict.Something,
				"kind": predict.Set{ledger.External.String(), ledger.Budget.String()},
			}},
			"accounts": {},
			"create-unit": {Flags: map[string]complete.Predictor{
				"name":           predict.Something,
				"decimal-places": predict.Something,
			}},
			"units": {},
			"record-transaction": {Flags: map[string]complete.Predictor{
				"date": predict.Something,
			}},
			"show-transaction": {Flags: map[string]complete.Predictor{
				"id": transactions,
			}},
			"add-move": {Flags: map[string]complete.Predictor{
				"transaction": transactions,
				"debit":       accounts,
				"credit":      accounts,
				"amount":      predict.Something,
				"unit":        units,
			}},
			"balances": {},
			"running-balance": {Flags: map[string]complete.Predictor{
				"account": accounts,
				"unit":    units,
			}},
			"fmt":   {},
			"topic": {},
		},
	}
}
