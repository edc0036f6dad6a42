package ledger

import (
	"fmt"
	"strings"
)

// errPrefix starts every append-time validation message.
const errPrefix = "event invalid for appending"

// InvalidNameError is returned when an account or unit name is empty or not valid UTF-8.
type InvalidNameError struct {
	Event EventType
	Name  string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s: %s: invalid name %q: must be non-empty valid UTF-8", errPrefix, e.Event, e.Name)
}

// AccountNameCollisionError is returned when an AccountCreated reuses an existing account name.
type AccountNameCollisionError struct{ Name AccountName }

func (e *AccountNameCollisionError) Error() string {
	return fmt.Sprintf("%s: %s: account name collision: %q", errPrefix, EvtAccountCreated, e.Name)
}

// UnitNameCollisionError is returned when a UnitCreated reuses an existing unit name.
type UnitNameCollisionError struct{ Name UnitName }

func (e *UnitNameCollisionError) Error() string {
	return fmt.Sprintf("%s: %s: unit name collision: %q", errPrefix, EvtUnitCreated, e.Name)
}

// TransactionNotFoundError is returned when a transaction id is out of the recorded range.
type TransactionNotFoundError struct{ ID TransactionID }

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("transaction not found: %v", e.ID)
}

// DebitAccountNotFoundError is returned when a move debits an unknown account.
type DebitAccountNotFoundError struct{ Name AccountName }

func (e *DebitAccountNotFoundError) Error() string {
	return fmt.Sprintf("debit account not found: %q", e.Name)
}

// CreditAccountNotFoundError is returned when a move credits an unknown account.
type CreditAccountNotFoundError struct{ Name AccountName }

func (e *CreditAccountNotFoundError) Error() string {
	return fmt.Sprintf("credit account not found: %q", e.Name)
}

// UnitNotFoundError is returned when a move uses an unknown unit.
type UnitNotFoundError struct{ Name UnitName }

func (e *UnitNotFoundError) Error() string {
	return fmt.Sprintf("unit not found: %q", e.Name)
}

// DecimalPlacesMismatchError is returned when a move amount does not have
// exactly the decimal places declared by its unit.
type DecimalPlacesMismatchError struct {
	Unit        UnitName
	UnitScale   uint8
	AmountScale uint32
}

func (e *DecimalPlacesMismatchError) Error() string {
	return fmt.Sprintf("decimal places mismatch: unit %q scale: %d, amount scale: %d", e.Unit, e.UnitScale, e.AmountScale)
}

// InvalidMoveError gathers every reason a MoveAdded was rejected.
//
// Causes are ordered: transaction, debit account, credit account, unit.
// errors.Is and errors.As see each of them.
type InvalidMoveError struct {
	Causes []error
}

func (e *InvalidMoveError) Error() string {
	msgs := make([]string, len(e.Causes))
	for i, c := range e.Causes {
		msgs[i] = c.Error()
	}
	return fmt.Sprintf("%s: %s: %s", errPrefix, EvtMoveAdded, strings.Join(msgs, "; "))
}

func (e *InvalidMoveError) Unwrap() []error { return e.Causes }

// SameAccountError is returned when a move request debits and credits the same account.
type SameAccountError struct{ Account AccountName }

func (e *SameAccountError) Error() string {
	return fmt.Sprintf("invalid move: debit and credit are the same account: %q", e.Account)
}
