package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegistrarAdminRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password string  `json:"password" validate:"required"`
	Nombre   *string `json:"nombre"`
	Activo   *bool   `json:"activo"`
}

type ActualizarAdminRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Nombre   *string `json:"nombre"`
	Activo   *bool   `json:"activo"`
	Password *string `json:"password"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AdminResponse projects an Admin for read endpoints. The password hash has
// no field here, so it can never leak into a response body.
type AdminResponse struct {
	ID        uint      `json:"id"`
	Email     *string   `json:"email"`
	Nombre    *string   `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegistroResponse struct {
	Mensaje string `json:"mensaje"`
	AdminID uint   `json:"adminId"`
}

type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
