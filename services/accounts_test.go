package services

import (
	"encoding/json"
	"testing"

	"github.com/RedBeret/ChatPoweredEcommerce/apperr"
	"github.com/RedBeret/ChatPoweredEcommerce/auth"
	"github.com/RedBeret/ChatPoweredEcommerce/initializers"
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/RedBeret/ChatPoweredEcommerce/store"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

type AccountServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	sessions *session.MemoryStore
	accounts *AccountService
	logins   *SessionService
}

func (s *AccountServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.sessions = session.NewMemoryStore()
	repo := store.NewAccountRepository(s.db)
	hasher := auth.NewHasher()
	s.accounts = NewAccountService(repo, hasher, s.sessions, zerolog.Nop())
	s.logins = NewSessionService(repo, hasher, s.sessions, zerolog.Nop())
}

func (s *AccountServiceSuite) register(username, password string) (models.AccountView, string) {
	view, token, err := s.accounts.Register(models.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	})
	require.NoError(s.T(), err)
	return view, token
}

func (s *AccountServiceSuite) TestRegisterEstablishesSession() {
	view, token := s.register("alice", "secret1")

	assert.NotZero(s.T(), view.ID)
	assert.Equal(s.T(), "alice", view.Username)
	assert.Equal(s.T(), "alice@example.com", view.Email)

	sess, ok := s.sessions.Get(token)
	require.True(s.T(), ok, "registration should log the user in")
	assert.True(s.T(), sess.Authenticated)
	assert.Equal(s.T(), view.ID, sess.UserID)
}

func (s *AccountServiceSuite) TestRegisterDuplicateUsername() {
	s.register("alice", "secret1")

	_, _, err := s.accounts.Register(models.RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret2",
	})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindDuplicate, apperr.KindOf(err))

	var count int64
	s.db.Model(&models.Account{}).Count(&count)
	assert.Equal(s.T(), int64(1), count, "no second account row may exist")
}

func (s *AccountServiceSuite) TestLoginWrongPasswordLeavesSessionsUntouched() {
	view, priorToken := s.register("alice", "secret1")

	_, _, err := s.logins.Login(models.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindAuthentication, apperr.KindOf(err))

	sess, ok := s.sessions.Get(priorToken)
	require.True(s.T(), ok, "failed login must not touch existing sessions")
	assert.Equal(s.T(), view.ID, sess.UserID)
}

func (s *AccountServiceSuite) TestLoginSuccess() {
	view, _ := s.register("alice", "secret1")

	got, token, err := s.logins.Login(models.LoginInput{Username: "alice", Password: "secret1"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), view, got)

	result, err := s.logins.Check(token)
	require.NoError(s.T(), err)
	assert.True(s.T(), result.Authenticated)
	require.NotNil(s.T(), result.Account)
	assert.Equal(s.T(), view.ID, result.Account.ID)
	assert.Equal(s.T(), "alice", result.Account.Username)
	assert.Equal(s.T(), "alice@example.com", result.Account.Email)
}

func (s *AccountServiceSuite) TestLoginUnknownUser() {
	_, _, err := s.logins.Login(models.LoginInput{Username: "nobody", Password: "secret1"})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindAuthentication, apperr.KindOf(err))
}

func (s *AccountServiceSuite) TestDeleteUnknownUser() {
	err := s.accounts.Delete(models.DeleteAccountInput{Username: "nobody", Password: "secret1"})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindNotFound, apperr.KindOf(err))
}

func (s *AccountServiceSuite) TestDeleteWrongPassword() {
	s.register("alice", "secret1")

	err := s.accounts.Delete(models.DeleteAccountInput{Username: "alice", Password: "wrong"})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindAuthentication, apperr.KindOf(err))

	var count int64
	s.db.Model(&models.Account{}).Count(&count)
	assert.Equal(s.T(), int64(1), count)
}

func (s *AccountServiceSuite) TestDeleteInvalidatesSessions() {
	_, token := s.register("alice", "secret1")

	err := s.accounts.Delete(models.DeleteAccountInput{Username: "alice", Password: "secret1"})
	require.NoError(s.T(), err)

	_, ok := s.sessions.Get(token)
	assert.False(s.T(), ok, "account deletion must invalidate its sessions")

	result, err := s.logins.Check(token)
	require.NoError(s.T(), err)
	assert.False(s.T(), result.Authenticated)
}

func (s *AccountServiceSuite) TestDeleteFreesUsernameForReuse() {
	view, _ := s.register("alice", "secret1")

	err := s.accounts.Delete(models.DeleteAccountInput{Username: "alice", Password: "secret1"})
	require.NoError(s.T(), err)

	// Deletion destroys the row outright, so the username is registrable
	// again and the new account is a distinct identity.
	reborn, _ := s.register("alice", "secret2")
	assert.NotEqual(s.T(), view.ID, reborn.ID)

	var count int64
	s.db.Unscoped().Model(&models.Account{}).Count(&count)
	assert.Equal(s.T(), int64(1), count, "no deleted account row may linger")
}

func (s *AccountServiceSuite) TestDeleteRemovesShippingProfile() {
	view, _ := s.register("alice", "secret1")

	info := models.ShippingInfo{UserID: view.ID, AddressLine1: "1 Main St", City: "Springfield"}
	require.NoError(s.T(), s.db.Create(&info).Error)

	err := s.accounts.Delete(models.DeleteAccountInput{Username: "alice", Password: "secret1"})
	require.NoError(s.T(), err)

	var count int64
	s.db.Unscoped().Model(&models.ShippingInfo{}).Count(&count)
	assert.Zero(s.T(), count, "shipping profile must go with its account")
}

func (s *AccountServiceSuite) TestChangePassword() {
	_, token := s.register("alice", "secret1")

	err := s.accounts.ChangePassword(models.ChangePasswordInput{
		Username:    "alice",
		Password:    "wrong",
		NewPassword: "secret2",
	})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindAuthentication, apperr.KindOf(err))

	err = s.accounts.ChangePassword(models.ChangePasswordInput{
		Username:    "alice",
		Password:    "secret1",
		NewPassword: "secret2",
	})
	require.NoError(s.T(), err)

	_, _, err = s.logins.Login(models.LoginInput{Username: "alice", Password: "secret1"})
	assert.Error(s.T(), err, "old password must stop working")

	_, _, err = s.logins.Login(models.LoginInput{Username: "alice", Password: "secret2"})
	assert.NoError(s.T(), err)

	// Observed contract: password change does not revoke existing sessions.
	result, err := s.logins.Check(token)
	require.NoError(s.T(), err)
	assert.True(s.T(), result.Authenticated)
}

func (s *AccountServiceSuite) TestListNeverIncludesDigest() {
	s.register("alice", "secret1")
	s.register("bob", "secret2")

	views, err := s.accounts.List()
	require.NoError(s.T(), err)
	require.Len(s.T(), views, 2)

	payload, err := json.Marshal(views)
	require.NoError(s.T(), err)
	assert.NotContains(s.T(), string(payload), "password")
	assert.NotContains(s.T(), string(payload), "$2a$")
}

func (s *AccountServiceSuite) TestLogoutIsIdempotent() {
	_, token := s.register("alice", "secret1")

	s.logins.Logout(token)
	result, err := s.logins.Check(token)
	require.NoError(s.T(), err)
	assert.False(s.T(), result.Authenticated)

	// A second logout with no active session is still fine.
	s.logins.Logout(token)
	s.logins.Logout("")
}

func (s *AccountServiceSuite) TestCheckStaleSessionIsDropped() {
	view, token := s.register("alice", "secret1")

	// Simulate the account vanishing underneath a live session.
	require.NoError(s.T(), s.db.Unscoped().Delete(&models.Account{}, view.ID).Error)

	result, err := s.logins.Check(token)
	require.NoError(s.T(), err)
	assert.False(s.T(), result.Authenticated)
	assert.True(s.T(), result.Stale)

	_, ok := s.sessions.Get(token)
	assert.False(s.T(), ok, "stale session must be dropped")
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}
