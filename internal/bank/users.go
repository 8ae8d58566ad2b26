package bank

import (
	"errors"
	"fmt"
	"time"

	"github.com/arpandhara/mini-banking-system/internal/models"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account ids start here; new ids are always max existing id + 1.
const firstAccountID = 1000

// SignUp registers a new account holder with a zero balance. Field
// validation (age bounds, phone shape) happens at the handler; the service
// owns the parts that need the store: phone uniqueness and id assignment,
// both inside one transaction so concurrent signups cannot collide.
func (s *Service) SignUp(username, password string, age int, gender, phone string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user models.User
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("phone_number = ?", phone).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check phone: %w", err)
		}
		if count > 0 {
			return ErrDuplicatePhone
		}

		var maxID int64
		if err := tx.Model(&models.User{}).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return fmt.Errorf("next id: %w", err)
		}
		newID := uint(firstAccountID)
		if maxID > 0 {
			newID = uint(maxID) + 1
		}

		user = models.User{
			ID:           newID,
			Username:     username,
			PasswordHash: string(hash),
			Balance:      0,
			Age:          age,
			Gender:       gender,
			PhoneNumber:  phone,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &user, nil
}

// Authenticate checks id + username + password. Five consecutive failures
// lock the account for ten minutes.
func (s *Service) Authenticate(userID uint, username, password, ip string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	now := time.Now()
	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if user.Username != username ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= 5 {
			lockUntil := now.Add(10 * time.Minute)
			user.LockedUntil = &lockUntil
			user.FailedLoginAttempts = 0
		}
		_ = s.db.Save(&user).Error
		return nil, ErrInvalidCredential
	}

	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now
	user.LastLoginIP = ip
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	return &user, nil
}

// ChangePassword verifies the old password then stores a new hash.
func (s *Service) ChangePassword(userID uint, oldPassword, newPassword string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ResetPassword replaces the password of the account registered under
// phone with a generated temporary one and returns it, so the caller can
// deliver it out of band. The temp password is "@0" plus 6 random
// alphanumerics.
func (s *Service) ResetPassword(phone string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("phone_number = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("load user: %w", err)
	}

	suffix, err := util.RandomString(6)
	if err != nil {
		return nil, "", err
	}
	tempPassword := "@0" + suffix

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	if err := s.db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return nil, "", fmt.Errorf("update password: %w", err)
	}
	return &user, tempPassword, nil
}

// Profile returns the user record for read-only display. Callers must not
// expose PasswordHash.
func (s *Service) Profile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &user, nil
}
