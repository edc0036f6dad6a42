package ledger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/etnz/ledger/date"
)

// The log is persisted as JSONL: one event per line, keys in a fixed order,
// starting with "event". It stays human-readable and diffs well under git.

// decodeStrict unmarshals data into v and refuses any property not spelled
// exactly as one of keys. encoding/json alone would match keys case-insensitively.
func decodeStrict(data []byte, v any, keys ...string) error {
	var props map[string]json.RawMessage
	if err := json.Unmarshal(data, &props); err != nil {
		return err
	}
	for k := range props {
		if !slices.Contains(keys, k) {
			return fmt.Errorf("unknown property %q", k)
		}
	}
	return json.Unmarshal(data, v)
}

// DecodeEvent decodes a single JSON line into the event it represents.
func DecodeEvent(line []byte) (Event, error) {
	var identifier struct {
		Event EventType `json:"event"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify event in line %q: %w", string(line), err)
	}

	switch identifier.Event {
	case EvtAccountCreated:
		var temp struct {
			Event EventType    `json:"event"`
			Name  AccountName  `json:"name"`
			Kind  *AccountKind `json:"kind"`
		}
		if err := decodeStrict(line, &temp, "event", "name", "kind"); err != nil {
			return nil, err
		}
		if temp.Kind == nil {
			return nil, fmt.Errorf("missing property %q", "kind")
		}
		return AccountCreated{Name: temp.Name, Kind: *temp.Kind}, nil
	case EvtTransactionRecorded:
		var temp struct {
			Event EventType  `json:"event"`
			Date  *date.Date `json:"date"`
		}
		if err := decodeStrict(line, &temp, "event", "date"); err != nil {
			return nil, err
		}
		if temp.Date == nil {
			return nil, fmt.Errorf("missing property %q", "date")
		}
		return TransactionRecorded{Date: *temp.Date}, nil
	case EvtUnitCreated:
		var temp struct {
			Event         EventType `json:"event"`
			Name          UnitName  `json:"name"`
			DecimalPlaces *uint8    `json:"decimalPlaces"`
		}
		if err := decodeStrict(line, &temp, "event", "name", "decimalPlaces"); err != nil {
			return nil, err
		}
		if temp.DecimalPlaces == nil {
			return nil, fmt.Errorf("missing property %q", "decimalPlaces")
		}
		return UnitCreated{Name: temp.Name, DecimalPlaces: *temp.DecimalPlaces}, nil
	case EvtMoveAdded:
		var temp struct {
			Event       EventType          `json:"event"`
			Transaction TransactionID      `json:"transaction"`
			Debit       AccountName        `json:"debit"`
			Credit      AccountName        `json:"credit"`
			Amount      *NonNegativeAmount `json:"amount"`
			Unit        UnitName           `json:"unit"`
		}
		if err := decodeStrict(line, &temp, "event", "transaction", "debit", "credit", "amount", "unit"); err != nil {
			return nil, err
		}
		if temp.Amount == nil {
			return nil, fmt.Errorf("missing property %q", "amount")
		}
		return MoveAdded{
			Transaction:   temp.Transaction,
			DebitAccount:  temp.Debit,
			CreditAccount: temp.Credit,
			Amount:        *temp.Amount,
			Unit:          temp.Unit,
		}, nil
	default:
		return nil, fmt.Errorf("unknown event type: %q", identifier.Event)
	}
}

// DecodeEvents decodes events from a stream of JSONL data, in order.
// Blank lines are skipped. It does not validate the events against each other,
// see TryFromSequence.
func DecodeEvents(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue // Skip empty lines
		}
		ev, err := DecodeEvent(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return events, nil
}

// EncodeEvent marshals a single event to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEvent(w io.Writer, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", ev.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// EncodeEvents writes the whole log to w in JSONL format, in log order.
func EncodeEvents(w io.Writer, l *Events) error {
	for _, ev := range l.events {
		if err := EncodeEvent(w, ev); err != nil {
			return err
		}
	}
	return nil
}
