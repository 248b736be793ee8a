package domain

import "time"

// Otp is the pending verification code for an email address.
// Email is the partition key, so there is never more than one live code
// per address: a new request atomically replaces the previous record.
// A spent code is hard-deleted; ExpiresAt doubles as the DynamoDB TTL.
type Otp struct {
	Email     string    `json:"email" dynamodbav:"email"`
	CodeHash  string    `json:"-" dynamodbav:"code_hash"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"` // Unix seconds
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// OTPResult is the structured outcome returned by OTP lifecycle operations.
type OTPResult struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type SendOTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}
