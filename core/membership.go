package core

import (
	"fmt"
	"strings"
)

// Membership is the directory of every registered Account. It owns the
// Accounts exclusively and preserves registration order. There is no
// removal operation.
type Membership struct {
	accounts []*Account
}

func NewMembership() *Membership {
	return &Membership{accounts: []*Account{}}
}

// Register constructs and stores a new Account.
//
// Checks run in a fixed order: a raw username with surrounding
// whitespace is rejected outright, then a duplicate email, then a
// duplicate username (both byte-exact, so cross-case duplicates are
// allowed), then full field validation via NewAccount. Uniqueness is
// enforced here only; direct mutation of a stored Account bypasses it.
func (m *Membership) Register(username, password, email string) (*Account, error) {
	if username != strings.TrimSpace(username) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}

	for _, a := range m.accounts {
		if a.Email == email {
			return nil, fmt.Errorf("%w: %q", ErrEmailExists, email)
		}
	}
	for _, a := range m.accounts {
		if a.Username == username {
			return nil, fmt.Errorf("%w: %q", ErrUsernameExists, username)
		}
	}

	account, err := NewAccount(username, password, email)
	if err != nil {
		return nil, err
	}

	m.accounts = append(m.accounts, account)
	return account, nil
}

// Find returns the Account with the given username, or nil if no such
// Account is registered. Matching is byte-exact.
func (m *Membership) Find(username string) *Account {
	for _, a := range m.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

// Accounts returns the directory contents in registration order. The
// returned slice is shared; callers must not reorder it.
func (m *Membership) Accounts() []*Account {
	return m.accounts
}

// Len returns the number of registered Accounts.
func (m *Membership) Len() int {
	return len(m.accounts)
}
