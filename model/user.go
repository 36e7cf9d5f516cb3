package model

import "time"

type User struct {
	DTO
	FullName string `gorm:"type:varchar(255);not null" validate:"required" json:"fullName"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null;default:USER" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

type Users []User

type RegisterInput struct {
	FullName        string `json:"fullName" validate:"required,min=3,max=50"`
	EmailAddress    string `json:"emailAddress" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"uniqueIndex;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
}
