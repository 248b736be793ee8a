package domain

import "time"

// Role values form a closed set; new accounts default to RoleSubscriber.
const (
	RoleAdmin      = "admin"
	RoleOrganizer  = "organizer"
	RoleSubscriber = "subscriber"
)

type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Email        string    `json:"email" dynamodbav:"email"`
	FirstName    string    `json:"firstname" dynamodbav:"firstname"`
	LastName     string    `json:"lastname" dynamodbav:"lastname"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Role         string    `json:"role" dynamodbav:"role"`
	Active       bool      `json:"active" dynamodbav:"active"`
	AuthToken    *string   `json:"auth_token,omitempty" dynamodbav:"auth_token"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

type ActivateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}
