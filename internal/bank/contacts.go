package bank

import (
	"errors"
	"fmt"

	"github.com/arpandhara/mini-banking-system/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddContact adds another account to the owner's address book. The target
// must exist, must not be the owner, and may appear at most once per
// owner. The target's current phone number is copied into the contact and
// never resynced afterwards.
func (s *Service) AddContact(userID, accountID uint, name, relation string) (*models.Contact, error) {
	if accountID == userID {
		return nil, ErrSelfContact
	}

	var contact models.Contact
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.First(&target, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load target: %w", err)
		}

		var count int64
		if err := tx.Model(&models.Contact{}).
			Where("user_id = ? AND account_id = ?", userID, accountID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if count > 0 {
			return ErrDuplicateContact
		}

		contact = models.Contact{
			ID:        "pid_" + uuid.NewString(),
			UserID:    userID,
			Name:      name,
			Phone:     target.PhoneNumber,
			AccountID: accountID,
			Relation:  relation,
		}
		if err := tx.Create(&contact).Error; err != nil {
			return fmt.Errorf("create contact: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &contact, nil
}

// UpdateContact renames a contact or changes its relation, scoped to the
// owner.
func (s *Service) UpdateContact(userID uint, contactID, name, relation string) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.Where("id = ? AND user_id = ?", contactID, userID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("load contact: %w", err)
	}

	contact.Name = name
	contact.Relation = relation
	if err := s.db.Save(&contact).Error; err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return &contact, nil
}

// RemoveContact deletes a contact, scoped to the owner.
func (s *Service) RemoveContact(userID uint, contactID string) error {
	res := s.db.Where("id = ? AND user_id = ?", contactID, userID).
		Delete(&models.Contact{})
	if res.Error != nil {
		return fmt.Errorf("delete contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// ListContacts returns the owner's contacts, most recently added first.
func (s *Service) ListContacts(userID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
