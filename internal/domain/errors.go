package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
//
// The three OTP sentinels stay distinct internally even though the HTTP
// layer collapses them onto one status code: tests and logs need to tell
// a missing code from a wrong one from a stale one.
var (
	ErrNotFound     = errors.New("not found")
	ErrOTPNotFound  = errors.New("OTP not found")
	ErrOTPInvalid   = errors.New("invalid otp")
	ErrOTPExpired   = errors.New("OTP has expired")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)
