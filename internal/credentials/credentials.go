// Package credentials stores the single local account record in the OS
// keyring and validates registration input.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultService is the keyring service name the record is stored under.
const DefaultService = "ischedule"

// keyringAccount is the fixed account key; the username lives inside
// the record so retrieval needs no prior knowledge of it.
const keyringAccount = "credentials"

var (
	// ErrNoCredentials means no record has been stored yet.
	ErrNoCredentials = errors.New("no stored credentials")
	// ErrCorruptCredentials means the stored record could not be decoded.
	ErrCorruptCredentials = errors.New("stored credentials are malformed")
)

// Credentials is the stored account record.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store reads and writes Credentials in the OS keyring.
type Store struct {
	service string
}

// NewStore creates a Store under the given keyring service name,
// falling back to DefaultService when empty.
func NewStore(service string) *Store {
	if service == "" {
		service = DefaultService
	}
	return &Store{service: service}
}

// Save writes the credential record, replacing any existing one.
func (s *Store) Save(username, password string) error {
	data, err := json.Marshal(Credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := keyring.Set(s.service, keyringAccount, string(data)); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}

// Retrieve reads the credential record. It returns ErrNoCredentials
// when nothing is stored and ErrCorruptCredentials when the record
// cannot be decoded.
func (s *Store) Retrieve() (Credentials, error) {
	data, err := keyring.Get(s.service, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return Credentials{}, ErrNoCredentials
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var c Credentials
	if err := json.Unmarshal([]byte(data), &c); err != nil || c.Username == "" {
		return Credentials{}, ErrCorruptCredentials
	}
	return c, nil
}

// Validate compares entered credentials against the stored record. Any
// retrieval failure reads as a mismatch: the login flow shows the same
// message whether the record is absent, corrupt, or simply wrong.
func (s *Store) Validate(username, password string) bool {
	stored, err := s.Retrieve()
	if err != nil {
		return false
	}
	return stored.Username == username && stored.Password == password
}
