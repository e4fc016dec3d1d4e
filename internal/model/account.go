package model

import "time"

// Account is a registered login. The email doubles as the identity key the
// ledger partitions state by.
type Account struct {
	Email        string    `gorm:"column:email;primaryKey;size:255"`
	Name         string    `gorm:"column:name;size:120;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Account) TableName() string {
	return "accounts"
}
