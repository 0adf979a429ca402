package dto

import "time"

// RegisterDTO registration payload
type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
}

// CredentialDTO login payload
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangeEmailDTO email update
type ChangeEmailDTO struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordDTO password update
type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"min=6,max=72"`
}

// UserDTO account info returned to the owner
type UserDTO struct {
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
