package bank

import (
	"testing"
	"time"

	"github.com/arpandhara/mini-banking-system/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insertTransaction writes a raw ledger row with an arbitrary date, for
// exercising the aggregator against historical and malformed data.
func insertTransaction(t *testing.T, s *Service, userID uint, amountCent int64, date string) {
	t.Helper()
	row := models.Transaction{
		ID:         "tid_" + uuid.NewString(),
		UserID:     userID,
		Name:       "Deposit",
		Type:       models.TxDeposit,
		AmountCent: amountCent,
		Date:       date,
		Status:     "Completed",
	}
	require.NoError(t, s.db.Create(&row).Error)
}

func TestDashboardMonthlyTotals(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	thisMonth := time.Now().Format("2006-01-02")
	lastYear := time.Now().AddDate(-1, 0, 0).Format("2006-01-02")

	insertTransaction(t, s, alice.ID, 5000, thisMonth)  // income, counted
	insertTransaction(t, s, alice.ID, -2000, thisMonth) // outcome, counted
	insertTransaction(t, s, alice.ID, 99999, lastYear)  // outside the month

	data, err := s.Dashboard(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), data.MonthlyIncomeCent)
	assert.Equal(t, int64(-2000), data.MonthlyOutcomeCent)
	assert.Len(t, data.Transactions, 3) // history still carries everything
	assert.Equal(t, "Alice", data.Username)
	assert.Equal(t, alice.ID, data.AccountNumber)
}

func TestDashboardSkipsMalformedDates(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	insertTransaction(t, s, alice.ID, 5000, time.Now().Format("2006-01-02"))
	insertTransaction(t, s, alice.ID, 7777, "not-a-date")
	insertTransaction(t, s, alice.ID, 8888, "")

	data, err := s.Dashboard(alice.ID)
	require.NoError(t, err)
	// bad rows are skipped from the totals but never break the call
	assert.Equal(t, int64(5000), data.MonthlyIncomeCent)
	assert.Len(t, data.Transactions, 3)
}

func TestDashboardLastFourByRecency(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	for _, name := range []string{"G1", "G2", "G3", "G4", "G5"} {
		_, err := s.CreateGoal(alice.ID, name, 1000, "", "")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	data, err := s.Dashboard(alice.ID)
	require.NoError(t, err)
	require.Len(t, data.LastSavings, 4)
	assert.Equal(t, "G5", data.LastSavings[0].Name)
	assert.Equal(t, "G2", data.LastSavings[3].Name)
}

func TestDashboardUnknownUser(t *testing.T) {
	s := newTestService(t)

	_, err := s.Dashboard(4242)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSummaryTotals(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	fund(t, s, alice, "secret-pw", 30000)

	goal, err := s.CreateGoal(alice.ID, "Bike", 50000, "", "")
	require.NoError(t, err)
	_, err = s.ProcessPayment(alice.ID, "secret-pw", PaymentRequest{
		Kind: PaySavingDeposit, AmountCent: 12000, SavingID: goal.ID,
	})
	require.NoError(t, err)
	_, err = s.ProcessPayment(alice.ID, "secret-pw", PaymentRequest{
		Kind: PayWithdraw, AmountCent: 5000,
	})
	require.NoError(t, err)

	summary, err := s.Summary(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(13000), summary.BalanceCent)      // 300 - 120 - 50
	assert.Equal(t, int64(12000), summary.TotalSavingsCent) // parked in the goal
	assert.Equal(t, int64(30000), summary.TotalIncomeCent)
	assert.Equal(t, int64(-17000), summary.TotalOutcomeCent)
	assert.Len(t, summary.Transactions, 3)
}
