package services

import (
	"errors"

	"github.com/RedBeret/ChatPoweredEcommerce/apperr"
	"github.com/RedBeret/ChatPoweredEcommerce/auth"
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/RedBeret/ChatPoweredEcommerce/store"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const msgInvalidLogin = "Invalid username or password"

// SessionService moves a client between the anonymous and authenticated
// states.
type SessionService struct {
	accounts *store.AccountRepository
	hasher   *auth.Hasher
	sessions session.Store
	log      zerolog.Logger
}

func NewSessionService(accounts *store.AccountRepository, hasher *auth.Hasher, sessions session.Store, log zerolog.Logger) *SessionService {
	return &SessionService{accounts: accounts, hasher: hasher, sessions: sessions, log: log}
}

// Login verifies the credentials and, on success, stores a fresh
// authenticated session. Failure mutates nothing.
func (s *SessionService) Login(in models.LoginInput) (models.AccountView, string, error) {
	account, err := s.accounts.ByUsername(in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AccountView{}, "", apperr.Authentication(msgInvalidLogin)
		}
		return models.AccountView{}, "", apperr.Internal(err)
	}

	if !s.hasher.Check(in.Password, account.PasswordHash) {
		return models.AccountView{}, "", apperr.Authentication(msgInvalidLogin)
	}

	token, err := session.GenerateToken()
	if err != nil {
		return models.AccountView{}, "", apperr.Internal(err)
	}
	s.sessions.Put(token, session.Session{
		UserID:        account.ID,
		Username:      account.Username,
		Authenticated: true,
	})

	s.log.Info().Str("username", account.Username).Msg("login")
	return account.View(), token, nil
}

// Logout clears the session unconditionally. Logging out without an active
// session is not an error.
func (s *SessionService) Logout(token string) {
	if token != "" {
		s.sessions.Delete(token)
	}
}

// CheckResult is the read-only session report.
type CheckResult struct {
	Authenticated bool
	// Stale is set when the session claims authentication but the referenced
	// account no longer exists.
	Stale   bool
	Account *models.AccountView
}

// Check never fails for a missing or stale session; it reports instead. A
// stale session is dropped so the dangling reference cannot recur.
func (s *SessionService) Check(token string) (CheckResult, error) {
	if token == "" {
		return CheckResult{}, nil
	}

	sess, ok := s.sessions.Get(token)
	if !ok || !sess.Authenticated {
		return CheckResult{}, nil
	}

	account, err := s.accounts.ByID(sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.sessions.Delete(token)
			return CheckResult{Stale: true}, nil
		}
		return CheckResult{}, apperr.Internal(err)
	}

	view := account.View()
	return CheckResult{Authenticated: true, Account: &view}, nil
}
