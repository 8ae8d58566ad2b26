package bank

import (
	"errors"
	"fmt"
	"time"

	"github.com/arpandhara/mini-banking-system/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateGoal creates a savings goal with zero funding.
func (s *Service) CreateGoal(userID uint, name string, targetCent int64, colorCode, description string) (*models.SavingGoal, error) {
	if targetCent <= 0 {
		return nil, ErrInvalidTarget
	}
	goal := models.SavingGoal{
		ID:          "sid_" + uuid.NewString(),
		UserID:      userID,
		Name:        name,
		TargetCent:  targetCent,
		SavedCent:   0,
		ColorCode:   colorCode,
		Description: description,
		CreatedDate: time.Now().Format("2006-01-02"),
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &goal, nil
}

// DeleteGoal refunds whatever the goal holds back to the owner's balance,
// logs the refund, and removes the goal. Refund and delete share one
// transaction: both happen or neither does. A goal with nothing saved
// produces no refund row. Returns the refunded amount in cents.
func (s *Service) DeleteGoal(userID uint, goalID string) (int64, error) {
	var refunded int64
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var goal models.SavingGoal
		if err := tx.Where("id = ? AND user_id = ?", goalID, userID).
			First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("load goal: %w", err)
		}

		if goal.SavedCent > 0 {
			if err := credit(tx, userID, goal.SavedCent); err != nil {
				return err
			}
			record := newTransaction(userID,
				fmt.Sprintf("Refund from '%s'", goal.Name),
				models.TxRefund, goal.SavedCent, "Saving goal deleted.")
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("log refund: %w", err)
			}
			refunded = goal.SavedCent
		}

		if err := tx.Delete(&goal).Error; err != nil {
			return fmt.Errorf("delete goal: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return refunded, nil
}

// ListGoals returns the owner's goals, most recently created first.
func (s *Service) ListGoals(userID uint) ([]models.SavingGoal, error) {
	var goals []models.SavingGoal
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}
