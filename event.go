package ledger

import (
	"github.com/etnz/ledger/date"
)

// EventType is a typed string identifying an event variant in the persisted log.
type EventType string

// Event types, as they appear in the "event" property of each line.
const (
	EvtAccountCreated      EventType = "account-created"
	EvtTransactionRecorded EventType = "transaction-recorded"
	EvtUnitCreated         EventType = "unit-created"
	EvtMoveAdded           EventType = "move-added"
)

// Event is an immutable fact recorded in the log.
//
// The set of events is closed: only AccountCreated, TransactionRecorded,
// UnitCreated and MoveAdded implement it.
type Event interface {
	What() EventType
	Equal(Event) bool
	event()
}

// AccountCreated opens a new account.
type AccountCreated struct {
	Name AccountName
	Kind AccountKind
}

func (AccountCreated) What() EventType { return EvtAccountCreated }
func (AccountCreated) event()          {}

func (e AccountCreated) Equal(other Event) bool {
	o, ok := other.(AccountCreated)
	return ok && e == o
}

func (e AccountCreated) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("event", e.What())
	w.Append("name", e.Name)
	w.Append("kind", e.Kind)
	return w.MarshalJSON()
}

// TransactionRecorded opens a new transaction on a date. Its id is derived
// from its position in the log.
type TransactionRecorded struct {
	Date date.Date
}

func (TransactionRecorded) What() EventType { return EvtTransactionRecorded }
func (TransactionRecorded) event()          {}

func (e TransactionRecorded) Equal(other Event) bool {
	o, ok := other.(TransactionRecorded)
	return ok && e == o
}

func (e TransactionRecorded) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("event", e.What())
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// UnitCreated declares a unit and the exact number of decimal places its amounts must have.
type UnitCreated struct {
	Name          UnitName
	DecimalPlaces uint8
}

func (UnitCreated) What() EventType { return EvtUnitCreated }
func (UnitCreated) event()          {}

func (e UnitCreated) Equal(other Event) bool {
	o, ok := other.(UnitCreated)
	return ok && e == o
}

func (e UnitCreated) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("event", e.What())
	w.Append("name", e.Name)
	w.Append("decimalPlaces", e.DecimalPlaces)
	return w.MarshalJSON()
}

// MoveAdded moves Amount of Unit from DebitAccount to CreditAccount, as part of Transaction.
type MoveAdded struct {
	Transaction   TransactionID
	DebitAccount  AccountName
	CreditAccount AccountName
	Amount        NonNegativeAmount
	Unit          UnitName
}

// NewMoveAdded builds a MoveAdded event from a user request.
// It refuses to move money from an account to itself.
func NewMoveAdded(tx TransactionID, debit, credit AccountName, amount NonNegativeAmount, unit UnitName) (MoveAdded, error) {
	if debit == credit {
		return MoveAdded{}, &SameAccountError{Account: debit}
	}
	return MoveAdded{
		Transaction:   tx,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        amount,
		Unit:          unit,
	}, nil
}

func (MoveAdded) What() EventType { return EvtMoveAdded }
func (MoveAdded) event()          {}

func (e MoveAdded) Equal(other Event) bool {
	o, ok := other.(MoveAdded)
	return ok &&
		e.Transaction == o.Transaction &&
		e.DebitAccount == o.DebitAccount &&
		e.CreditAccount == o.CreditAccount &&
		e.Amount.Equal(o.Amount) &&
		e.Unit == o.Unit
}

func (e MoveAdded) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("event", e.What())
	w.Append("transaction", uint64(e.Transaction))
	w.Append("debit", e.DebitAccount)
	w.Append("credit", e.CreditAccount)
	w.Append("amount", e.Amount)
	w.Append("unit", e.Unit)
	return w.MarshalJSON()
}
