// Package renderer turns ledger projections into markdown reports.
package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/ledger"
	md "github.com/nao1215/markdown"
)

// cell escapes s for a markdown table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// TransactionRecorded is the answer to a newly recorded transaction.
func TransactionRecorded(id ledger.TransactionID) string {
	return fmt.Sprintf("Recorded transaction %v\n", id)
}

// Balances renders one row per account and unit, sorted by account then unit.
func Balances(balances map[ledger.AccountName]ledger.Balance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Balances")

	if len(balances) == 0 {
		doc.PlainText("No moves recorded yet.")
		return doc.String()
	}

	var rows [][]string
	for _, account := range slices.Sorted(maps.Keys(balances)) {
		balance := balances[account]
		for _, unit := range slices.Sorted(maps.Keys(balance)) {
			rows = append(rows, []string{cell(account.String()), balance[unit].String(), cell(unit.String())})
		}
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Account", "Balance", "Unit"},
		Rows:      rows,
	})
	return doc.String()
}

// RunningBalance renders the effect of each transaction on an account, for a unit.
func RunningBalance(account ledger.AccountName, unit ledger.UnitName, rows []ledger.RunningBalanceRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Running balance of %s in %s", account, unit))

	if len(rows) == 0 {
		doc.PlainText(fmt.Sprintf("No move of %s on %s.", unit, account))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Transaction", "Date", "Affect", "Balance"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Transaction.String(),
			row.Date.String(),
			row.Affect.SignedString(),
			row.Balance.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Transaction renders a transaction date and its moves.
func Transaction(tx ledger.Transaction, moves []ledger.Move) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Transaction %v", tx.ID))
	doc.PlainText(fmt.Sprintf("Date: %s", tx.Date))
	doc.PlainText("")

	if len(moves) == 0 {
		doc.PlainText("No moves.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"From", "To", "Amount"},
	}
	for _, m := range moves {
		table.Rows = append(table.Rows, []string{
			cell(m.DebitAccount.String()),
			cell(m.CreditAccount.String()),
			cell(fmt.Sprintf("%s %s", m.Amount, m.Unit)),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Accounts lists accounts by name.
func Accounts(accounts map[ledger.AccountName]ledger.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}
	table := md.TableSet{Header: []string{"Account", "Kind"}}
	for _, name := range slices.Sorted(maps.Keys(accounts)) {
		table.Rows = append(table.Rows, []string{cell(name.String()), accounts[name].Kind.String()})
	}
	doc.Table(table)
	return doc.String()
}

// Units lists units by name.
func Units(units map[ledger.UnitName]ledger.Unit) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Units")
	if len(units) == 0 {
		doc.PlainText("No units yet.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Unit", "Decimal places"},
	}
	for _, name := range slices.Sorted(maps.Keys(units)) {
		table.Rows = append(table.Rows, []string{cell(name.String()), fmt.Sprint(units[name].DecimalPlaces)})
	}
	doc.Table(table)
	return doc.String()
}
