package bank

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arpandhara/mini-banking-system/internal/database"
	"github.com/arpandhara/mini-banking-system/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// bcrypt at min cost keeps the suite fast; production cost comes from config.
const testBcryptCost = 4

// newTestService builds a Service on a fresh in-memory database. The DSN
// is keyed by test name so parallel tests never share state.
func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return New(db, testBcryptCost)
}

// signUp is a shorthand for registering a test user with a unique phone.
func signUp(t *testing.T, s *Service, name, password, phone string) *models.User {
	t.Helper()
	user, err := s.SignUp(name, password, 30, "other", phone)
	require.NoError(t, err)
	return user
}

// fund deposits cents into a user's account through the ledger so the
// balance and the log stay consistent.
func fund(t *testing.T, s *Service, user *models.User, password string, cents int64) {
	t.Helper()
	_, err := s.ProcessPayment(user.ID, password, PaymentRequest{
		Kind:       PayDeposit,
		AmountCent: cents,
	})
	require.NoError(t, err)
}

// balanceOf reads the stored balance.
func balanceOf(t *testing.T, s *Service, userID uint) int64 {
	t.Helper()
	var user models.User
	require.NoError(t, s.db.First(&user, userID).Error)
	return user.Balance
}

// transactionsOf reads all ledger rows for a user in insertion order.
func transactionsOf(t *testing.T, s *Service, userID uint) []models.Transaction {
	t.Helper()
	var txs []models.Transaction
	require.NoError(t, s.db.Where("user_id = ?", userID).
		Order("created_at ASC").Find(&txs).Error)
	return txs
}

// totalBalance sums every balance in the system, for conservation checks.
func totalBalance(t *testing.T, s *Service) int64 {
	t.Helper()
	var total int64
	require.NoError(t, s.db.Model(&models.User{}).
		Select("COALESCE(SUM(balance), 0)").Scan(&total).Error)
	return total
}
