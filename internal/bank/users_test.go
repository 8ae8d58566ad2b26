package bank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAssignsMonotonicIDsFromFloor(t *testing.T) {
	s := newTestService(t)

	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	assert.Equal(t, uint(1000), alice.ID)
	assert.Equal(t, int64(0), alice.Balance)

	bob := signUp(t, s, "Bob", "other-pw", "9000000002")
	assert.Equal(t, uint(1001), bob.ID)
}

func TestSignUpRejectsDuplicatePhone(t *testing.T) {
	s := newTestService(t)
	signUp(t, s, "Alice", "secret-pw", "9000000001")

	_, err := s.SignUp("Mallory", "mallory-pw", 30, "other", "9000000001")
	assert.ErrorIs(t, err, ErrDuplicatePhone)
}

func TestSignUpDoesNotStorePlaintextPassword(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	assert.NotContains(t, alice.PasswordHash, "secret-pw")
	assert.True(t, strings.HasPrefix(alice.PasswordHash, "$2"))
}

func TestAuthenticateChecksIDUsernameAndPassword(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	user, err := s.Authenticate(alice.ID, "Alice", "secret-pw", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
	assert.NotNil(t, user.LastLoginAt)
	assert.Equal(t, "127.0.0.1", user.LastLoginIP)

	_, err = s.Authenticate(alice.ID, "Alice", "wrong-pw", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = s.Authenticate(alice.ID, "Bob", "secret-pw", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = s.Authenticate(9999, "Alice", "secret-pw", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestAuthenticateLocksAfterFiveFailures(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	for i := 0; i < 5; i++ {
		_, err := s.Authenticate(alice.ID, "Alice", "wrong-pw", "")
		assert.ErrorIs(t, err, ErrInvalidCredential)
	}

	// even the right password bounces while locked
	_, err := s.Authenticate(alice.ID, "Alice", "secret-pw", "")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestChangePassword(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	assert.ErrorIs(t, s.ChangePassword(alice.ID, "wrong-pw", "new-pw"), ErrInvalidCredential)

	require.NoError(t, s.ChangePassword(alice.ID, "secret-pw", "new-pw"))
	_, err := s.Authenticate(alice.ID, "Alice", "new-pw", "")
	assert.NoError(t, err)
	_, err = s.Authenticate(alice.ID, "Alice", "secret-pw", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestResetPasswordIssuesTempCredential(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	user, temp, err := s.ResetPassword("9000000001")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
	assert.True(t, strings.HasPrefix(temp, "@0"))
	assert.Len(t, temp, 8)

	// old password is dead, temp one works
	_, err = s.Authenticate(alice.ID, "Alice", "secret-pw", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = s.Authenticate(alice.ID, "Alice", temp, "")
	assert.NoError(t, err)
}

func TestResetPasswordUnknownPhone(t *testing.T) {
	s := newTestService(t)

	_, _, err := s.ResetPassword("1234567890")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileLookup(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	profile, err := s.Profile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Username)
	assert.Equal(t, "9000000001", profile.PhoneNumber)

	_, err = s.Profile(4242)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
