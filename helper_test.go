package ledger

import (
	"testing"

	"github.com/etnz/ledger/date"
)

// helpers to write short fixtures.

func account(name string, kind AccountKind) AccountCreated {
	return AccountCreated{Name: AccountName(name), Kind: kind}
}

func unit(name string, places uint8) UnitCreated {
	return UnitCreated{Name: UnitName(name), DecimalPlaces: places}
}

func transaction(day string) TransactionRecorded {
	return TransactionRecorded{Date: date.MustParse(day)}
}

func move(tx TransactionID, debit, credit, amount, unit string) MoveAdded {
	return MoveAdded{
		Transaction:   tx,
		DebitAccount:  AccountName(debit),
		CreditAccount: AccountName(credit),
		Amount:        MustParseNonNegativeAmount(amount),
		Unit:          UnitName(unit),
	}
}

func amt(s string) Amount { return MustParseAmount(s) }

// mustEvents builds a log from valid events and fails the test otherwise.
func mustEvents(t *testing.T, events ...Event) *Events {
	t.Helper()
	l, err := TryFromSequence(events)
	if err != nil {
		t.Fatalf("TryFromSequence() unexpected error: %v", err)
	}
	return l
}

// household is a small but complete ledger used across tests.
func household(t *testing.T) *Events {
	t.Helper()
	return mustEvents(t,
		account("employer", External),
		account("checking", Budget),
		account("groceries", Budget),
		account("rent", Budget),
		unit("USD", 2),
		unit("BTC", 8),
		transaction("2024-01-01"), // #1
		move(1, "employer", "checking", "2500.00", "USD"),
		transaction("2024-01-03"), // #2
		move(2, "checking", "groceries", "120.50", "USD"),
		move(2, "checking", "rent", "900.00", "USD"),
		transaction("2024-01-05"), // #3
		move(3, "checking", "groceries", "30.25", "USD"),
		move(3, "groceries", "checking", "5.00", "USD"),
		move(3, "employer", "checking", "0.00150000", "BTC"),
	)
}
