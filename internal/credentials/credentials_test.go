package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Password347"))
	assert.True(t, IsValidPassword("abc12345"))
	assert.True(t, IsValidPassword("p@ss*word#1"))

	assert.False(t, IsValidPassword("valid"), "too short")
	assert.False(t, IsValidPassword("password with spaces"))
	assert.False(t, IsValidPassword("sixteencharslong"), "too long")
	assert.False(t, IsValidPassword("bad!chars$"))
	assert.False(t, IsValidPassword(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))

	assert.False(t, IsValidEmail("user"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("user@example"))
}

func TestPasswordsMatch(t *testing.T) {
	assert.True(t, PasswordsMatch("secret12", "secret12"))
	assert.False(t, PasswordsMatch("secret12", "Secret12"))
}

func TestRegistrationComplete(t *testing.T) {
	assert.True(t, RegistrationComplete("user@example.com", "Password347", "Password347"))

	assert.False(t, RegistrationComplete("user", "Password347", "Password347"))
	assert.False(t, RegistrationComplete("user@example.com", "short", "short"))
	assert.False(t, RegistrationComplete("user@example.com", "Password347", "Password348"))
}

func TestStoreSaveRetrieve(t *testing.T) {
	keyring.MockInit()
	store := NewStore("ischedule-test")

	require.NoError(t, store.Save("user@example.com", "Password347"))

	creds, err := store.Retrieve()
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", creds.Username)
	assert.Equal(t, "Password347", creds.Password)
}

func TestStoreRetrieveMissing(t *testing.T) {
	keyring.MockInit()
	store := NewStore("ischedule-test-empty")

	_, err := store.Retrieve()
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestStoreRetrieveCorrupt(t *testing.T) {
	keyring.MockInit()
	service := "ischedule-test-corrupt"
	require.NoError(t, keyring.Set(service, keyringAccount, "not json"))

	store := NewStore(service)
	_, err := store.Retrieve()
	assert.ErrorIs(t, err, ErrCorruptCredentials)
}

func TestStoreValidate(t *testing.T) {
	keyring.MockInit()
	store := NewStore("ischedule-test-validate")
	require.NoError(t, store.Save("user@example.com", "Password347"))

	assert.True(t, store.Validate("user@example.com", "Password347"))
	assert.False(t, store.Validate("user@example.com", "wrongpass1"))
	assert.False(t, store.Validate("other@example.com", "Password347"))
}

func TestStoreValidateNoRecord(t *testing.T) {
	keyring.MockInit()
	store := NewStore("ischedule-test-none")

	// Absent and wrong credentials are indistinguishable to the caller.
	assert.False(t, store.Validate("user@example.com", "Password347"))
}
