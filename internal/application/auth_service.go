package application

import (
	"time"

	"github.com/khannoor710/carerefrigeration/internal/domain"
)

// SessionDuration is how long an issued admin session stays valid.
const SessionDuration = 24 * time.Hour

// AuthService issues and evaluates the admin session credential. The session
// lives on the client: the server hands one out on login and re-evaluates
// whatever the client presents, but keeps no session state and performs no
// authorization on the gallery mutation routes. That matches the original
// site, where the guard is basic client-side protection only — adding real
// security means adding server-side verification, which would be a deliberate
// behavior change, not a cleanup.
type AuthService struct {
	username string
	password string
	now      func() time.Time
}

func NewAuthService(username, password string) *AuthService {
	return &AuthService{
		username: username,
		password: password,
		now:      time.Now,
	}
}

// Login compares against the single fixed credential pair. On an exact match
// it issues a session expiring 24 hours out; otherwise the caller stays
// logged out. There is no lockout or credential rate limit (accepted
// weakness; the HTTP layer applies its generic per-IP limiter).
func (s *AuthService) Login(username, password string) (domain.AdminSession, bool) {
	if username != s.username || password != s.password {
		return domain.AdminSession{}, false
	}
	return domain.AdminSession{
		IsAuthenticated: true,
		ExpiresAt:       s.now().Add(SessionDuration).UnixMilli(),
	}, true
}

// Status evaluates a client-held session. An expired session reports
// unauthenticated and comes back cleared so the client drops it.
func (s *AuthService) Status(session domain.AdminSession) (domain.SessionStatus, domain.AdminSession) {
	if !session.Valid(s.now()) {
		return domain.SessionStatus{Authenticated: false}, domain.AdminSession{}
	}
	return domain.SessionStatus{Authenticated: true}, session
}

// Logout returns the cleared session for the client to store.
func (s *AuthService) Logout() domain.AdminSession {
	return domain.AdminSession{}
}
