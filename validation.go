package ledger

import "fmt"

// validate checks ev against the log as it currently is.
func (l *Events) validate(ev Event) error {
	switch v := ev.(type) {
	case AccountCreated:
		if !validName(string(v.Name)) {
			return &InvalidNameError{Event: v.What(), Name: string(v.Name)}
		}
		if _, exists := l.Account(v.Name); exists {
			return &AccountNameCollisionError{Name: v.Name}
		}
	case UnitCreated:
		if !validName(string(v.Name)) {
			return &InvalidNameError{Event: v.What(), Name: string(v.Name)}
		}
		if _, exists := l.Unit(v.Name); exists {
			return &UnitNameCollisionError{Name: v.Name}
		}
	case TransactionRecorded:
		// always valid
	case MoveAdded:
		return l.validateMove(v)
	default:
		return fmt.Errorf("%s: unsupported event type %T", errPrefix, ev)
	}
	return nil
}

// validateMove reports every failing dimension of a move at once.
//
// An unknown unit has no scale to compare with, so the decimal places are
// only checked when the unit exists.
func (l *Events) validateMove(m MoveAdded) error {
	var causes []error

	// transaction ids are positions, so existence is a bound check.
	if m.Transaction < 1 || uint64(m.Transaction) > uint64(l.transactionCount()) {
		causes = append(causes, &TransactionNotFoundError{ID: m.Transaction})
	}

	accounts := l.AllAccounts()
	if _, ok := accounts[m.DebitAccount]; !ok {
		causes = append(causes, &DebitAccountNotFoundError{Name: m.DebitAccount})
	}
	if _, ok := accounts[m.CreditAccount]; !ok {
		causes = append(causes, &CreditAccountNotFoundError{Name: m.CreditAccount})
	}

	if unit, ok := l.Unit(m.Unit); !ok {
		causes = append(causes, &UnitNotFoundError{Name: m.Unit})
	} else if scale := m.Amount.Scale(); scale != uint32(unit.DecimalPlaces) {
		causes = append(causes, &DecimalPlacesMismatchError{
			Unit:        m.Unit,
			UnitScale:   unit.DecimalPlaces,
			AmountScale: scale,
		})
	}

	if len(causes) > 0 {
		return &InvalidMoveError{Causes: causes}
	}
	return nil
}
