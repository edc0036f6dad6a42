package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// document is the parsed form of a rendered report.
type document struct {
	headings []string
	tables   [][][]string // rows of cells, header first
	texts    []string     // paragraphs
}

// textOf concatenates the text segments below n.
func textOf(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// parse parses markdown with the GFM table extension and collects its structure.
func parse(t *testing.T, src string) document {
	t.Helper()
	source := []byte(src)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var doc document
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			doc.headings = append(doc.headings, textOf(v, source))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			doc.texts = append(doc.texts, textOf(v, source))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			var rows [][]string
			for row := v.FirstChild(); row != nil; row = row.NextSibling() {
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, textOf(cell, source))
				}
				rows = append(rows, cells)
			}
			doc.tables = append(doc.tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return doc
}

// checkTable compares a table to the expected header (case-insensitively) and body.
func checkTable(t *testing.T, got [][]string, header []string, body [][]string) {
	t.Helper()
	if len(got) == 0 {
		t.Fatalf("empty table")
	}
	if len(got[0]) != len(header) {
		t.Fatalf("header = %q, want %q", got[0], header)
	}
	for i := range header {
		if !strings.EqualFold(got[0][i], header[i]) {
			t.Errorf("header[%d] = %q, want %q", i, got[0][i], header[i])
		}
	}
	if diff := cmp.Diff(body, got[1:]); diff != "" {
		t.Errorf("table body mismatch (-want +got):\n%s", diff)
	}
}

func amt(s string) ledger.Amount { return ledger.MustParseAmount(s) }

func TestTransactionRecorded(t *testing.T) {
	if got, want := TransactionRecorded(3), "Recorded transaction #3\n"; got != want {
		t.Errorf("TransactionRecorded(3) = %q, want %q", got, want)
	}
}

func TestBalances(t *testing.T) {
	out := Balances(map[ledger.AccountName]ledger.Balance{
		"groceries": {"USD": amt("12.34")},
		"checking":  {"USD": amt("-12.34"), "BTC": amt("0.00150000")},
	})
	doc := parse(t, out)
	if diff := cmp.Diff([]string{"Balances"}, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	if len(doc.tables) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(doc.tables), out)
	}
	checkTable(t, doc.tables[0], []string{"Account", "Balance", "Unit"}, [][]string{
		{"checking", "0.00150000", "BTC"},
		{"checking", "-12.34", "USD"},
		{"groceries", "12.34", "USD"},
	})
}

func TestBalancesEmpty(t *testing.T) {
	doc := parse(t, Balances(nil))
	if len(doc.tables) != 0 || len(doc.texts) != 1 {
		t.Errorf("empty balances should render a single sentence, got %+v", doc)
	}
}

func TestRunningBalance(t *testing.T) {
	out := RunningBalance("checking", "USD", []ledger.RunningBalanceRow{
		{Transaction: 1, Date: date.MustParse("2024-01-01"), Affect: amt("2500.00"), Balance: amt("2500.00")},
		{Transaction: 2, Date: date.MustParse("2024-01-03"), Affect: amt("-1020.50"), Balance: amt("1479.50")},
	})
	doc := parse(t, out)
	if diff := cmp.Diff([]string{"Running balance of checking in USD"}, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	if len(doc.tables) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(doc.tables), out)
	}
	checkTable(t, doc.tables[0], []string{"Transaction", "Date", "Affect", "Balance"}, [][]string{
		{"#1", "2024-01-01", "+2500.00", "2500.00"},
		{"#2", "2024-01-03", "-1020.50", "1479.50"},
	})
}

func TestTransaction(t *testing.T) {
	tx := ledger.Transaction{ID: 2, Date: date.MustParse("2024-01-03")}
	out := Transaction(tx, []ledger.Move{
		{Transaction: 2, DebitAccount: "checking", CreditAccount: "groceries", Amount: amt("120.50"), Unit: "USD"},
		{Transaction: 2, DebitAccount: "checking", CreditAccount: "rent", Amount: amt("900.00"), Unit: "USD"},
	})
	doc := parse(t, out)
	if diff := cmp.Diff([]string{"Transaction #2"}, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	if len(doc.texts) == 0 || doc.texts[0] != "Date: 2024-01-03" {
		t.Errorf("texts = %q, want the transaction date first", doc.texts)
	}
	if len(doc.tables) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(doc.tables), out)
	}
	checkTable(t, doc.tables[0], []string{"From", "To", "Amount"}, [][]string{
		{"checking", "groceries", "120.50 USD"},
		{"checking", "rent", "900.00 USD"},
	})
}

func TestAccountsAndUnits(t *testing.T) {
	accounts := parse(t, Accounts(map[ledger.AccountName]ledger.Account{
		"employer": {Name: "employer", Kind: ledger.External},
		"checking": {Name: "checking", Kind: ledger.Budget},
	}))
	if len(accounts.tables) != 1 {
		t.Fatalf("got %d account tables, want 1", len(accounts.tables))
	}
	checkTable(t, accounts.tables[0], []string{"Account", "Kind"}, [][]string{
		{"checking", "budget"},
		{"employer", "external"},
	})

	units := parse(t, Units(map[ledger.UnitName]ledger.Unit{
		"USD": {Name: "USD", DecimalPlaces: 2},
		"BTC": {Name: "BTC", DecimalPlaces: 8},
	}))
	if len(units.tables) != 1 {
		t.Fatalf("got %d unit tables, want 1", len(units.tables))
	}
	checkTable(t, units.tables[0], []string{"Unit", "Decimal places"}, [][]string{
		{"BTC", "8"},
		{"USD", "2"},
	})
}

func TestPipeInNames(t *testing.T) {
	outputs := map[string]string{
		"Balances": Balances(map[ledger.AccountName]ledger.Balance{
			"a|b": {"U|SD": amt("1.00")},
		}),
		"Transaction": Transaction(ledger.Transaction{ID: 1, Date: date.MustParse("2024-01-01")}, []ledger.Move{
			{DebitAccount: "a|b", CreditAccount: "c", Amount: amt("1.00"), Unit: "U|SD"},
		}),
		"Accounts": Accounts(map[ledger.AccountName]ledger.Account{"a|b": {Name: "a|b", Kind: ledger.Budget}}),
		"Units":    Units(map[ledger.UnitName]ledger.Unit{"a|b": {Name: "a|b", DecimalPlaces: 2}}),
	}
	for name, out := range outputs {
		t.Run(name, func(t *testing.T) {
			doc := parse(t, out)
			if len(doc.tables) != 1 {
				t.Fatalf("got %d tables, want 1:\n%s", len(doc.tables), out)
			}
			for i, row := range doc.tables[0] {
				if len(row) != len(doc.tables[0][0]) {
					t.Errorf("row %d has %d cells, want %d:\n%s", i, len(row), len(doc.tables[0][0]), out)
				}
			}
			var html bytes.Buffer
			if err := goldmark.New(goldmark.WithExtensions(extension.Table)).Convert([]byte(out), &html); err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if !strings.Contains(html.String(), ">a|b</td>") {
				t.Errorf("no cell reads a|b in:\n%s", html.String())
			}
		})
	}
}
