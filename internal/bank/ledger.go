package bank

import (
	"errors"
	"fmt"

	"github.com/arpandhara/mini-banking-system/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Payment kinds accepted by ProcessPayment, matching the wire values of
// the transaction_type field.
const (
	PayDeposit       = "deposit"
	PayWithdraw      = "withdraw"
	PayBankTransfer  = "bank_transfer"
	PaySavingDeposit = "saving_deposit"
)

// PaymentRequest carries one ledger operation. AmountCent must already be
// parsed and positive; RecipientID is only read for bank_transfer and
// SavingID only for saving_deposit.
type PaymentRequest struct {
	Kind        string
	AmountCent  int64
	Note        string
	RecipientID uint
	SavingID    string
}

// ProcessPayment validates and executes one money-movement operation for
// userID. The password is re-checked against the stored hash even for a
// logged-in caller. On success it returns the actor's balance as re-read
// from the store after the mutation.
//
// All validation happens before any mutation; the mutation itself runs in
// a single transaction, so a transfer either lands both balance updates
// and both ledger rows or none of them.
func (s *Service) ProcessPayment(userID uint, password string, req PaymentRequest) (int64, error) {
	var sender models.User
	if err := s.db.First(&sender, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("load sender: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(sender.PasswordHash), []byte(password)); err != nil {
		return 0, ErrInvalidCredential
	}

	if req.AmountCent <= 0 {
		return 0, ErrInvalidAmount
	}

	var newBalance int64
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		switch req.Kind {
		case PayDeposit:
			if err := credit(tx, userID, req.AmountCent); err != nil {
				return err
			}
			record := newTransaction(userID, "Deposit", models.TxDeposit, req.AmountCent, req.Note)
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("log deposit: %w", err)
			}

		case PayWithdraw:
			if err := debit(tx, userID, req.AmountCent); err != nil {
				return err
			}
			record := newTransaction(userID, "Withdrawal", models.TxWithdrawal, -req.AmountCent, req.Note)
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("log withdrawal: %w", err)
			}

		case PayBankTransfer:
			if req.RecipientID == userID {
				return ErrSelfTransfer
			}
			var recipient models.User
			if err := tx.First(&recipient, req.RecipientID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrRecipientNotFound
				}
				return fmt.Errorf("load recipient: %w", err)
			}
			if err := debit(tx, userID, req.AmountCent); err != nil {
				return err
			}
			if err := credit(tx, recipient.ID, req.AmountCent); err != nil {
				return err
			}
			out := newTransaction(userID, "Transfer to "+recipient.Username, models.TxBankTransfer, -req.AmountCent, req.Note)
			in := newTransaction(recipient.ID, "Transfer from "+sender.Username, models.TxBankTransfer, req.AmountCent, req.Note)
			if err := tx.Create(&out).Error; err != nil {
				return fmt.Errorf("log transfer out: %w", err)
			}
			if err := tx.Create(&in).Error; err != nil {
				return fmt.Errorf("log transfer in: %w", err)
			}

		case PaySavingDeposit:
			var goal models.SavingGoal
			if err := tx.Where("id = ? AND user_id = ?", req.SavingID, userID).
				First(&goal).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrGoalNotFound
				}
				return fmt.Errorf("load goal: %w", err)
			}
			if err := debit(tx, userID, req.AmountCent); err != nil {
				return err
			}
			if err := tx.Model(&goal).
				UpdateColumn("saved_cent", gorm.Expr("saved_cent + ?", req.AmountCent)).Error; err != nil {
				return fmt.Errorf("fund goal: %w", err)
			}
			record := newTransaction(userID, "Deposit to "+goal.Name, models.TxSavingDeposit, -req.AmountCent, req.Note)
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("log saving deposit: %w", err)
			}

		default:
			return ErrInvalidPaymentKind
		}

		var err error
		newBalance, err = currentBalance(tx, userID)
		return err
	})
	if txErr != nil {
		return 0, txErr
	}
	return newBalance, nil
}
