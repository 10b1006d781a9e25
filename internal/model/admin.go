package model

import "time"

// Admin is a staff account. Login and every authenticated request are
// gated on Activo, so disabling an admin revokes tokens issued earlier.
// At least one of Email / Nombre must be set at registration.
type Admin struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Email     *string `gorm:"uniqueIndex" json:"email"`
	Password  string  `gorm:"not null" json:"-"`
	Nombre    *string `json:"nombre"`
	Activo    bool    `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Admin) TableName() string { return "admins" }
