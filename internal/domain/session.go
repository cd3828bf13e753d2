package domain

import "time"

// AdminSession is the time-boxed credential the admin client holds after a
// successful login. The client stores it and presents it back on status
// checks; the server keeps no session table of its own.
type AdminSession struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	ExpiresAt       int64 `json:"expiresAt"` // epoch milliseconds
}

// Valid reports whether the session is authenticated and not yet expired.
func (s AdminSession) Valid(now time.Time) bool {
	return s.IsAuthenticated && s.ExpiresAt > now.UnixMilli()
}

// SessionStatus is the answer to a status check.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
}
