package bank

import (
	"testing"
	"time"

	"github.com/arpandhara/mini-banking-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoalRejectsNonPositiveTarget(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	for _, target := range []int64{0, -500} {
		_, err := s.CreateGoal(alice.ID, "Bad", target, "", "")
		assert.ErrorIs(t, err, ErrInvalidTarget, "target %d", target)
	}
}

func TestCreateGoalStartsEmpty(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	goal, err := s.CreateGoal(alice.ID, "Bike", 20000, "#00ff00", "mountain bike")
	require.NoError(t, err)
	assert.Equal(t, int64(0), goal.SavedCent)
	assert.Equal(t, int64(20000), goal.TargetCent)
	assert.True(t, len(goal.ID) > 4 && goal.ID[:4] == "sid_")
	assert.Equal(t, time.Now().Format("2006-01-02"), goal.CreatedDate)
}

func TestDeleteGoalRefundsSavedAmount(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	fund(t, s, alice, "secret-pw", 20000)

	goal, err := s.CreateGoal(alice.ID, "Bike", 50000, "", "")
	require.NoError(t, err)
	_, err = s.ProcessPayment(alice.ID, "secret-pw", PaymentRequest{
		Kind: PaySavingDeposit, AmountCent: 6000, SavingID: goal.ID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(14000), balanceOf(t, s, alice.ID))

	refunded, err := s.DeleteGoal(alice.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), refunded)
	assert.Equal(t, int64(20000), balanceOf(t, s, alice.ID))

	// goal is gone
	var count int64
	require.NoError(t, s.db.Model(&models.SavingGoal{}).
		Where("id = ?", goal.ID).Count(&count).Error)
	assert.Zero(t, count)

	// exactly one refund row, positive, referencing the goal
	txs := transactionsOf(t, s, alice.ID)
	last := txs[len(txs)-1]
	assert.Equal(t, models.TxRefund, last.Type)
	assert.Equal(t, int64(6000), last.AmountCent)
	assert.Equal(t, "Refund from 'Bike'", last.Name)
	assert.Equal(t, "Saving goal deleted.", last.Description)
}

func TestDeleteEmptyGoalProducesNoRefundRow(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	goal, err := s.CreateGoal(alice.ID, "Bike", 50000, "", "")
	require.NoError(t, err)

	refunded, err := s.DeleteGoal(alice.ID, goal.ID)
	require.NoError(t, err)
	assert.Zero(t, refunded)
	assert.Empty(t, transactionsOf(t, s, alice.ID))
}

func TestDeleteGoalScopedToOwner(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	bob := signUp(t, s, "Bob", "other-pw", "9000000002")

	goal, err := s.CreateGoal(alice.ID, "Bike", 50000, "", "")
	require.NoError(t, err)

	_, err = s.DeleteGoal(bob.ID, goal.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = s.DeleteGoal(alice.ID, "sid_missing")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestListGoalsNewestFirst(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		_, err := s.CreateGoal(alice.ID, name, 1000, "", "")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // distinct created_at
	}

	goals, err := s.ListGoals(alice.ID)
	require.NoError(t, err)
	require.Len(t, goals, 3)
	assert.Equal(t, "Third", goals[0].Name)
	assert.Equal(t, "Second", goals[1].Name)
	assert.Equal(t, "First", goals[2].Name)
}
