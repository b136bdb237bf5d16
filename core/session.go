package core

// SessionManager tracks the single currently-authenticated Account. It
// holds a non-owning reference into the Membership directory; at most
// one Account is current at a time.
type SessionManager struct {
	membership *Membership
	current    *Account
}

func NewSessionManager(membership *Membership) *SessionManager {
	return &SessionManager{membership: membership}
}

// Login scans the directory for an Account whose username and password
// both match byte-exactly. On a match it becomes the current session
// and its own flag is set; a previous session is silently replaced
// without clearing the prior Account's flag. On a miss nothing changes
// and Login reports false.
func (sm *SessionManager) Login(username, password string) bool {
	for _, a := range sm.membership.Accounts() {
		if a.Username == username && a.Password == password {
			sm.current = a
			a.Login()
			return true
		}
	}
	return false
}

// Logout unconditionally clears the current session reference. It does
// not clear the Account's own session flag; the two can diverge and
// that asymmetry is part of the contract.
func (sm *SessionManager) Logout() {
	sm.current = nil
}

// Current returns the currently-authenticated Account, or nil.
func (sm *SessionManager) Current() *Account {
	return sm.current
}
