// internal/model/admin_user.go
package model

import "time"

const RoleSuperAdmin = "super_admin"

// AdminUser is a reviewer account. PasswordHash is an encoded argon2id hash
// and never leaves the service layer.
type AdminUser struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"column:username;type:text;not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"column:password_hash;type:text;not null" json:"-"`
	Email        string     `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	Role         string     `gorm:"column:role;type:text;not null" json:"role"`
	Active       bool       `gorm:"column:active;not null" json:"active"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"lastLogin"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
}

// TableName specifies the table name for AdminUser
func (AdminUser) TableName() string {
	return "admin_users"
}
