package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/etnz/ledger/date"
)

// AccountName identifies an account.
type AccountName string

func (n AccountName) String() string { return string(n) }

// validName reports whether s can name an account or a unit: not empty, and
// valid UTF-8 so that it is stored in the JSONL file as is.
func validName(s string) bool { return s != "" && utf8.ValidString(s) }

// UnitName identifies a unit (a currency or any other denomination).
type UnitName string

func (n UnitName) String() string { return string(n) }

// AccountKind tells whether an account lives outside the budget or inside it.
type AccountKind int

const (
	// External accounts are counterparties: employers, shops, banks.
	External AccountKind = iota
	// Budget accounts are the envelopes money is allocated to.
	Budget
)

func (k AccountKind) String() string {
	switch k {
	case External:
		return "external"
	case Budget:
		return "budget"
	default:
		return "unknown"
	}
}

// ParseAccountKind parses "external" or "budget".
func ParseAccountKind(s string) (AccountKind, error) {
	switch strings.ToLower(s) {
	case "external":
		return External, nil
	case "budget":
		return Budget, nil
	default:
		return 0, fmt.Errorf("unknown account kind: %q", s)
	}
}

func (k AccountKind) MarshalText() ([]byte, error) {
	if k != External && k != Budget {
		return nil, fmt.Errorf("unknown account kind: %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *AccountKind) UnmarshalText(text []byte) error {
	v, err := ParseAccountKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ErrInvalidTransactionID is returned when a transaction id literal is malformed.
var ErrInvalidTransactionID = errors.New("invalid transaction id")

// TransactionID is the 1-based position of a TransactionRecorded event among
// all TransactionRecorded events of the log. It is never stored.
type TransactionID uint64

func (id TransactionID) String() string { return "#" + strconv.FormatUint(uint64(id), 10) }

// ParseTransactionID parses "3" or "#3".
func ParseTransactionID(s string) (TransactionID, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidTransactionID, s, err)
	}
	return TransactionID(v), nil
}

// Account is the projection of an AccountCreated event.
type Account struct {
	Name AccountName
	Kind AccountKind
}

// Unit is the projection of a UnitCreated event.
type Unit struct {
	Name          UnitName
	DecimalPlaces uint8
}

// Transaction is the projection of a TransactionRecorded event, paired with its derived id.
type Transaction struct {
	ID   TransactionID
	Date date.Date
}

// Move is the projection of a MoveAdded event.
type Move struct {
	Transaction   TransactionID
	DebitAccount  AccountName
	CreditAccount AccountName
	Amount        Amount
	Unit          UnitName
}

// Balance holds, for a single account, the signed total per unit.
type Balance map[UnitName]Amount
