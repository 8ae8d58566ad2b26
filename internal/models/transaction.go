package models

import "time"

// Transaction types as they appear in statements and API payloads.
const (
	TxDeposit       = "Deposit"
	TxWithdrawal    = "Withdrawal"
	TxBankTransfer  = "Bank Transfer"
	TxSavingDeposit = "Saving Deposit"
	TxRefund        = "Refund"
)

// Transaction is one append-only ledger entry owned by a single user.
// Amounts are signed cents: positive credits the owner, negative debits.
// A transfer produces two rows, one per party, with mirrored signs.
// Date is kept as a plain YYYY-MM-DD string; historical rows may carry
// malformed dates and readers are expected to tolerate them.
type Transaction struct {
	ID          string `gorm:"primaryKey;size:64"` // tid_<uuid>
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"size:128;not null"` // counterparty label, e.g. "Transfer to Alice"
	Type        string `gorm:"size:32;index;not null"`
	AmountCent  int64  `gorm:"not null"`
	Date        string `gorm:"size:10;not null"`
	Description string `gorm:"size:255"`
	Status      string `gorm:"size:32;default:Completed"`
	CreatedAt   time.Time
}
