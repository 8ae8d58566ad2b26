package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddContactSnapshotsPhone(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	bob := signUp(t, s, "Bob", "other-pw", "9000000002")

	contact, err := s.AddContact(alice.ID, bob.ID, "Bobby", "friend")
	require.NoError(t, err)
	assert.Equal(t, "9000000002", contact.Phone)
	assert.Equal(t, bob.ID, contact.AccountID)
	assert.True(t, len(contact.ID) > 4 && contact.ID[:4] == "pid_")

	// the snapshot does not follow later phone changes
	require.NoError(t, s.db.Model(bob).Update("phone_number", "9000000099").Error)
	contacts, err := s.ListContacts(alice.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "9000000002", contacts[0].Phone)
}

func TestAddContactRejectsSelf(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	_, err := s.AddContact(alice.ID, alice.ID, "Me", "self")
	assert.ErrorIs(t, err, ErrSelfContact)
}

func TestAddContactRejectsUnknownAccount(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")

	_, err := s.AddContact(alice.ID, 4242, "Ghost", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddContactRejectsDuplicatePair(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	bob := signUp(t, s, "Bob", "other-pw", "9000000002")

	_, err := s.AddContact(alice.ID, bob.ID, "Bobby", "friend")
	require.NoError(t, err)

	_, err = s.AddContact(alice.ID, bob.ID, "Bob again", "colleague")
	assert.ErrorIs(t, err, ErrDuplicateContact)

	// the pair is per owner: Bob may still add Alice
	_, err = s.AddContact(bob.ID, alice.ID, "Alice", "friend")
	assert.NoError(t, err)
}

func TestUpdateContactScopedToOwner(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	bob := signUp(t, s, "Bob", "other-pw", "9000000002")

	contact, err := s.AddContact(alice.ID, bob.ID, "Bobby", "friend")
	require.NoError(t, err)

	updated, err := s.UpdateContact(alice.ID, contact.ID, "Robert", "colleague")
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)
	assert.Equal(t, "colleague", updated.Relation)

	_, err = s.UpdateContact(bob.ID, contact.ID, "X", "")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestRemoveContact(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	bob := signUp(t, s, "Bob", "other-pw", "9000000002")

	contact, err := s.AddContact(alice.ID, bob.ID, "Bobby", "friend")
	require.NoError(t, err)

	assert.ErrorIs(t, s.RemoveContact(bob.ID, contact.ID), ErrContactNotFound)
	require.NoError(t, s.RemoveContact(alice.ID, contact.ID))
	assert.ErrorIs(t, s.RemoveContact(alice.ID, contact.ID), ErrContactNotFound)

	contacts, err := s.ListContacts(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestListContactsNewestFirst(t *testing.T) {
	s := newTestService(t)
	alice := signUp(t, s, "Alice", "secret-pw", "9000000001")
	bob := signUp(t, s, "Bob", "a-pw", "9000000002")
	carol := signUp(t, s, "Carol", "b-pw", "9000000003")

	_, err := s.AddContact(alice.ID, bob.ID, "Bob", "")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = s.AddContact(alice.ID, carol.ID, "Carol", "")
	require.NoError(t, err)

	contacts, err := s.ListContacts(alice.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Carol", contacts[0].Name)
	assert.Equal(t, "Bob", contacts[1].Name)
}
