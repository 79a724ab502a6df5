package models

import (
	"time"
)

// User types
const (
	UserTypeCommon   = "COMMON"
	UserTypeMerchant = "MERCHANT"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FullName  string    `gorm:"not null" json:"full_name"`
	Document  string    `gorm:"uniqueIndex;not null" json:"document"` // CPF or CNPJ, digits only
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Type      string    `gorm:"not null;default:'COMMON'" json:"type"`
	Wallet    *Wallet   `gorm:"foreignKey:UserID" json:"wallet,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsMerchant reports whether the user is forbidden from initiating transfers.
func (u *User) IsMerchant() bool {
	return u.Type == UserTypeMerchant
}
