package models

import "time"

// Contact is an address-book entry pointing at another account.
// Phone is a snapshot taken when the contact was added; it is not kept in
// sync with the referenced user afterwards.
type Contact struct {
	ID        string `gorm:"primaryKey;size:64"` // pid_<uuid>
	UserID    uint   `gorm:"index:idx_owner_account,unique;not null"`
	Name      string `gorm:"size:64;not null"`
	Phone     string `gorm:"size:10"`
	AccountID uint   `gorm:"index:idx_owner_account,unique;not null"`
	Relation  string `gorm:"size:32"`
	CreatedAt time.Time
}
