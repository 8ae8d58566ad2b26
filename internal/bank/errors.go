// Package bank implements the ledger engine: every operation that moves
// money between balances, the savings-goal lifecycle, contacts, and the
// read-only aggregations built on top of them. All mutations run inside a
// database transaction and debits are guarded conditional updates, so an
// operation either lands all of its effects or none of them.
package bank

import "errors"

// Domain errors. Handlers map these to HTTP status codes with errors.Is;
// anything not listed here is treated as an internal error.
var (
	// ErrInvalidAmount: payment amount missing, non-numeric, or <= 0. 400.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCredential: wrong password for a payment or login. 401/403.
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrAccountLocked: too many failed logins. 401.
	ErrAccountLocked = errors.New("account temporarily locked")

	// ErrInsufficientFunds: debit would take the balance negative. 400.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUserNotFound: the acting or referenced user does not exist. 404.
	ErrUserNotFound = errors.New("user not found")

	// ErrRecipientNotFound: transfer recipient does not exist. 404.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrSelfTransfer: transfer where recipient == sender. 400.
	ErrSelfTransfer = errors.New("cannot self-transfer")

	// ErrGoalNotFound: saving goal missing or owned by someone else. 404.
	ErrGoalNotFound = errors.New("saving goal not found")

	// ErrInvalidTarget: saving goal target amount <= 0. 400.
	ErrInvalidTarget = errors.New("invalid target amount")

	// ErrContactNotFound: contact missing or owned by someone else. 404.
	ErrContactNotFound = errors.New("contact not found")

	// ErrSelfContact: contact referencing the owner's own account. 400.
	ErrSelfContact = errors.New("cannot add self")

	// ErrDuplicateContact: (owner, account) pair already exists. 409.
	ErrDuplicateContact = errors.New("contact already exists")

	// ErrDuplicatePhone: phone number already registered at signup. 409.
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrInvalidPaymentKind: unknown transaction_type. 400.
	ErrInvalidPaymentKind = errors.New("invalid transaction type")
)
