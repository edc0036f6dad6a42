// Package ledger implements a personal double-entry ledger kept as a single,
// append-only log of events.
//
// The core functionalities include:
//   - Event Store: an ordered log of AccountCreated, UnitCreated,
//     TransactionRecorded and MoveAdded events. Events are validated against
//     the log before being appended, and are never modified afterward.
//   - Projections: stateless functions that derive accounts, units,
//     transactions, moves, balances and running balances from the log.
//   - Exact Amounts: decimal values that keep their scale, so that a unit with
//     two decimal places only ever receives amounts written with two decimals.
//   - Data Persistence: encoding and decoding of the log to and from a
//     human-readable, version-controllable JSONL file.
//
// Transaction ids are never stored: a transaction's id is its position among
// the TransactionRecorded events of the log.
//
// This package serves as the foundational logic for the `pl` command-line tool.
package ledger
