package models

import "gorm.io/gorm"

type Account struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"not null"`
	PasswordHash string `json:"-" gorm:"not null"`

	// Optional one-to-one shipping profile.
	ShippingInfo *ShippingInfo `json:"shippingInfo,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// AccountView is the outward projection of an account. It can never carry
// the password hash.
type AccountView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (a Account) View() AccountView {
	return AccountView{ID: a.ID, Username: a.Username, Email: a.Email}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DeleteAccountInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
