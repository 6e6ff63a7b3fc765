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

const (
	msgUsernameExists     = "Username already exists."
	msgUserNotFound       = "User not found"
	msgIncorrectPassword  = "Incorrect password"
	msgInvalidCredentials = "Invalid credentials"
)

// AccountService owns account records and the credential secret. Registration
// implies login: a successful Register also establishes an authenticated
// session for the new account.
type AccountService struct {
	accounts *store.AccountRepository
	hasher   *auth.Hasher
	sessions session.Store
	log      zerolog.Logger
}

func NewAccountService(accounts *store.AccountRepository, hasher *auth.Hasher, sessions session.Store, log zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, hasher: hasher, sessions: sessions, log: log}
}

// Register creates the account and logs it in, returning the new session
// token alongside the account view.
func (s *AccountService) Register(in models.RegisterInput) (models.AccountView, string, error) {
	taken, err := s.accounts.UsernameTaken(in.Username)
	if err != nil {
		return models.AccountView{}, "", apperr.Internal(err)
	}
	if taken {
		return models.AccountView{}, "", apperr.Duplicate(msgUsernameExists)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.AccountView{}, "", apperr.Internal(err)
	}

	account := models.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(&account); err != nil {
		// The unique constraint is defense in depth behind the explicit
		// check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.AccountView{}, "", apperr.Duplicate(msgUsernameExists)
		}
		return models.AccountView{}, "", apperr.Internal(err)
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

	s.log.Info().Str("username", account.Username).Uint("user_id", account.ID).Msg("account registered")
	return account.View(), token, nil
}

// Delete removes the account after verifying its credentials and invalidates
// every session referencing it.
func (s *AccountService) Delete(in models.DeleteAccountInput) error {
	account, err := s.accounts.ByUsername(in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(msgUserNotFound)
		}
		return apperr.Internal(err)
	}

	if !s.hasher.Check(in.Password, account.PasswordHash) {
		return apperr.Authentication(msgIncorrectPassword)
	}

	if err := s.accounts.Delete(account.ID); err != nil {
		return apperr.Internal(err)
	}
	s.sessions.DeleteByUserID(account.ID)

	s.log.Info().Str("username", account.Username).Uint("user_id", account.ID).Msg("account deleted")
	return nil
}

// ChangePassword replaces the digest after the old password verifies.
// Existing sessions stay valid; the reference behavior does not revoke them
// on password change.
func (s *AccountService) ChangePassword(in models.ChangePasswordInput) error {
	account, err := s.accounts.ByUsername(in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Indistinguishable from a bad password on purpose.
			return apperr.Authentication(msgInvalidCredentials)
		}
		return apperr.Internal(err)
	}

	if !s.hasher.Check(in.Password, account.PasswordHash) {
		return apperr.Authentication(msgInvalidCredentials)
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := s.accounts.UpdatePasswordHash(account.ID, hash); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *AccountService) List() ([]models.AccountView, error) {
	views, err := s.accounts.List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return views, nil
}
