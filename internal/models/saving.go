package models

import "time"

// SavingGoal is a named savings target partially funded from the owner's
// balance. SavedCent may exceed TargetCent; goals track progress, they do
// not cap it. Deleting a goal refunds SavedCent back to the owner.
type SavingGoal struct {
	ID          string `gorm:"primaryKey;size:64"` // sid_<uuid>
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"size:64;not null"`
	TargetCent  int64  `gorm:"not null"`
	SavedCent   int64  `gorm:"not null;default:0"`
	ColorCode   string `gorm:"size:16"`
	Description string `gorm:"size:255"`
	CreatedDate string `gorm:"size:10"` // YYYY-MM-DD, surfaced to the frontend
	CreatedAt   time.Time
}
