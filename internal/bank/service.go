package bank

import (
	"errors"
	"fmt"
	"time"

	"github.com/arpandhara/mini-banking-system/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns all domain operations. It is safe for concurrent use: every
// mutation runs in its own database transaction and never trusts a balance
// read outside one.
type Service struct {
	db         *gorm.DB
	bcryptCost int
}

// New builds a Service on an already-migrated database.
func New(db *gorm.DB, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = 12
	}
	return &Service{db: db, bcryptCost: bcryptCost}
}

// DB exposes the underlying handle for collaborators that only read
// (middleware user lookup, audit rows).
func (s *Service) DB() *gorm.DB {
	return s.db
}

// newTransaction builds a ledger row. amountCent is signed: positive
// credits the owner, negative debits.
func newTransaction(userID uint, name, txType string, amountCent int64, note string) models.Transaction {
	return models.Transaction{
		ID:          "tid_" + uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Type:        txType,
		AmountCent:  amountCent,
		Date:        time.Now().Format("2006-01-02"),
		Description: note,
		Status:      "Completed",
	}
}

// debit subtracts amountCent from a user's balance as a conditional update.
// The WHERE guard makes it a compare-and-swap: if the balance is too low
// (or was drained by a concurrent operation) no row matches and the caller
// rolls back with ErrInsufficientFunds.
func debit(tx *gorm.DB, userID uint, amountCent int64) error {
	res := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amountCent).
		UpdateColumn("balance", gorm.Expr("balance - ?", amountCent))
	if res.Error != nil {
		return fmt.Errorf("debit user %d: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientFunds
	}
	return nil
}

// credit adds amountCent to a user's balance.
func credit(tx *gorm.DB, userID uint, amountCent int64) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amountCent))
	if res.Error != nil {
		return fmt.Errorf("credit user %d: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// currentBalance re-reads the authoritative balance from the store.
func currentBalance(tx *gorm.DB, userID uint) (int64, error) {
	var user models.User
	if err := tx.Select("balance").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("read balance: %w", err)
	}
	return user.Balance, nil
}
