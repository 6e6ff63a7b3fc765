package store

import (
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// UsernameTaken reports whether any account already uses the username.
func (r *AccountRepository) UsernameTaken(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *AccountRepository) ByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) ByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) UpdatePasswordHash(id uint, hash string) error {
	return r.db.Model(&models.Account{}).Where("id = ?", id).
		Update("password_hash", hash).Error
}

// Delete destroys the account outright, together with its shipping profile.
// A soft delete would leave the username held by the unique index and the
// shipping row keyed to a dead user id.
func (r *AccountRepository) Delete(id uint) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Unscoped().Where("user_id = ?", id).Delete(&models.ShippingInfo{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Unscoped().Delete(&models.Account{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// List returns outward projections only; the password hash never leaves the
// store.
func (r *AccountRepository) List() ([]models.AccountView, error) {
	var views []models.AccountView
	err := r.db.Model(&models.Account{}).
		Select("id", "username", "email").
		Order("id").
		Find(&views).Error
	return views, err
}
