// Package teller provides the core types and rules for managing a small,
// single-user bank ledger. It is designed to be local-first and auditable:
// all state lives in plain text files that the user owns and can inspect.
//
// The core functionalities include:
//   - Account Management: Each account carries a holder name, a unique
//     account number, a non-negative balance, and a secret credential that
//     gates every sensitive operation.
//   - Transaction History: An append-only, chronological record of deposits,
//     withdrawals and transfers per account. Amounts are signed: positive is
//     a credit to the account, negative is a debit.
//   - Transfers: A two-sided transfer protocol (withdraw, deposit, rollback
//     on failure) that guarantees a transfer is never observably partial
//     across the two accounts.
//   - Sessions: A login state machine with bounded credential retry that
//     every sensitive operation must pass through.
//   - Data Persistence: Mapping of accounts and transactions to and from the
//     line-oriented record format of the Store collaborator.
//
// This package serves as the foundational logic for the `tlr` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package teller
