package ledger

import (
	"iter"
	"maps"
	"slices"

	"github.com/etnz/ledger/date"
)

// Projections are recomputed from the log on every call. Nothing is cached,
// so derived transaction ids can never drift from the events.

// AllAccounts returns every created account indexed by name.
func (l *Events) AllAccounts() map[AccountName]Account {
	accounts := make(map[AccountName]Account)
	for _, ev := range l.events {
		if v, ok := ev.(AccountCreated); ok {
			accounts[v.Name] = Account{Name: v.Name, Kind: v.Kind}
		}
	}
	return accounts
}

// AllAccountNames returns the sorted account names.
func (l *Events) AllAccountNames() []AccountName {
	return slices.Sorted(maps.Keys(l.AllAccounts()))
}

// Account returns the account created with this name.
func (l *Events) Account(name AccountName) (Account, bool) {
	a, ok := l.AllAccounts()[name]
	return a, ok
}

// AllUnits returns every created unit indexed by name.
func (l *Events) AllUnits() map[UnitName]Unit {
	units := make(map[UnitName]Unit)
	for _, ev := range l.events {
		if v, ok := ev.(UnitCreated); ok {
			units[v.Name] = Unit{Name: v.Name, DecimalPlaces: v.DecimalPlaces}
		}
	}
	return units
}

// AllUnitNames returns the sorted unit names.
func (l *Events) AllUnitNames() []UnitName {
	return slices.Sorted(maps.Keys(l.AllUnits()))
}

// Unit returns the unit created with this name.
func (l *Events) Unit(name UnitName) (Unit, bool) {
	u, ok := l.AllUnits()[name]
	return u, ok
}

// transactionCount counts the TransactionRecorded events.
func (l *Events) transactionCount() int {
	n := 0
	for _, ev := range l.events {
		if _, ok := ev.(TransactionRecorded); ok {
			n++
		}
	}
	return n
}

// AllTransactionIDs returns the dense sequence 1..N of recorded transactions.
func (l *Events) AllTransactionIDs() []TransactionID {
	n := l.transactionCount()
	ids := make([]TransactionID, n)
	for i := range ids {
		ids[i] = TransactionID(i + 1)
	}
	return ids
}

// AllTransactions yields every transaction in id order.
func (l *Events) AllTransactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		var id TransactionID
		for _, ev := range l.events {
			v, ok := ev.(TransactionRecorded)
			if !ok {
				continue
			}
			id++
			if !yield(Transaction{ID: id, Date: v.Date}) {
				return
			}
		}
	}
}

// Transaction returns the transaction with this id.
func (l *Events) Transaction(id TransactionID) (Transaction, bool) {
	for tx := range l.AllTransactions() {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// LastTransactionID returns the id of the latest recorded transaction, or false
// if none has been recorded yet.
func (l *Events) LastTransactionID() (TransactionID, bool) {
	n := l.transactionCount()
	if n == 0 {
		return 0, false
	}
	return TransactionID(n), true
}

// AllMoves yields one Move per MoveAdded event, in log order.
func (l *Events) AllMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, ev := range l.events {
			v, ok := ev.(MoveAdded)
			if !ok {
				continue
			}
			m := Move{
				Transaction:   v.Transaction,
				DebitAccount:  v.DebitAccount,
				CreditAccount: v.CreditAccount,
				Amount:        v.Amount.Amount(),
				Unit:          v.Unit,
			}
			if !yield(m) {
				return
			}
		}
	}
}

// TransactionMoves returns the transaction and its moves in log order.
func (l *Events) TransactionMoves(id TransactionID) (Transaction, []Move, error) {
	tx, ok := l.Transaction(id)
	if !ok {
		return Transaction{}, nil, &TransactionNotFoundError{ID: id}
	}
	var moves []Move
	for m := range l.AllMoves() {
		if m.Transaction == id {
			moves = append(moves, m)
		}
	}
	return tx, moves, nil
}

// AllBalances folds every move: the debit account decreases and the credit
// account increases by the same amount of the same unit.
func (l *Events) AllBalances() map[AccountName]Balance {
	balances := make(map[AccountName]Balance)
	adjust := func(account AccountName, unit UnitName, delta Amount) {
		b, ok := balances[account]
		if !ok {
			b = make(Balance)
			balances[account] = b
		}
		b[unit] = b[unit].Add(delta)
	}
	for m := range l.AllMoves() {
		adjust(m.DebitAccount, m.Unit, m.Amount.Neg())
		adjust(m.CreditAccount, m.Unit, m.Amount)
	}
	return balances
}

// RunningBalanceRow is the effect of one transaction on an account, for a unit.
type RunningBalanceRow struct {
	Transaction TransactionID
	Date        date.Date
	Affect      Amount // net change brought by the transaction
	Balance     Amount // balance after the transaction
}

// affect returns the signed effect of m on account.
func (m Move) affect(account AccountName) Amount {
	var a Amount
	if m.DebitAccount == account {
		a = a.Sub(m.Amount)
	}
	if m.CreditAccount == account {
		a = a.Add(m.Amount)
	}
	return a
}

// RunningBalance returns, in transaction id order, one row per transaction that
// moved unit in or out of account.
func (l *Events) RunningBalance(account AccountName, unit UnitName) []RunningBalanceRow {
	affects := make(map[TransactionID]Amount)
	for m := range l.AllMoves() {
		if m.Unit != unit || (m.DebitAccount != account && m.CreditAccount != account) {
			continue
		}
		affects[m.Transaction] = affects[m.Transaction].Add(m.affect(account))
	}

	rows := make([]RunningBalanceRow, 0, len(affects))
	var balance Amount
	for tx := range l.AllTransactions() {
		affect, ok := affects[tx.ID]
		if !ok {
			continue
		}
		balance = balance.Add(affect)
		rows = append(rows, RunningBalanceRow{
			Transaction: tx.ID,
			Date:        tx.Date,
			Affect:      affect,
			Balance:     balance,
		})
	}
	return rows
}
