package models

import "time"

// User represents a bank account holder.
// Account ids are assigned manually at signup (max existing id + 1, starting
// at 1000), never by the database, so the id doubles as the account number.
// Balance is stored in cents; it must only change through ledger operations.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"size:64;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Balance      int64  `gorm:"not null;default:0"` // cents, never written without a transaction row
	Age          int    `gorm:"not null"`
	Gender       string `gorm:"size:16"`
	PhoneNumber  string `gorm:"size:10;uniqueIndex;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FailedLoginAttempts int        `gorm:"default:0"`
	LockedUntil         *time.Time `gorm:"index"`
	LastLoginAt         *time.Time
	LastLoginIP         string `gorm:"size:64"`
}
