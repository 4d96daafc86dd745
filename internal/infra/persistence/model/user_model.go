// Package model contains the GORM persistence models, kept separate from the
// pure domain entities.
package model

// UserModel mirrors the 'users' table. The store assigns ids from a
// bigserial sequence; username and email carry unique constraints that back
// the registration conflict checks.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);unique;not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null;column:password_hash"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
