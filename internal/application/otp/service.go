package otp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/eventplug/signup-api/internal/domain"
	"github.com/eventplug/signup-api/internal/infrastructure/smtp"
	"github.com/eventplug/signup-api/internal/pkg/hash"
	"github.com/eventplug/signup-api/internal/pkg/otpcode"
)

// subjectPrefix is prepended to every outgoing verification email subject.
const subjectPrefix = "Event Plug: "

type Service interface {
	// Send generates a fresh code for email, persists its hash, and mails
	// the plaintext code. The record is written before the email goes out;
	// a mail failure is surfaced but the record is not rolled back.
	Send(ctx context.Context, email, subject string) (*domain.OTPResult, error)
	// Verify checks the submitted code against the stored hash and deletes
	// the record on success (a code is single-use).
	Verify(ctx context.Context, email, code string) (*domain.OTPResult, error)
	// Resend issues a new code, replacing whatever was pending.
	Resend(ctx context.Context, email, subject string) (*domain.OTPResult, error)
}

type otpStore interface {
	Upsert(ctx context.Context, o *domain.Otp) error
	GetByEmail(ctx context.Context, email string) (*domain.Otp, error)
	Delete(ctx context.Context, email string) error
}

type service struct {
	repo   otpStore
	mailer smtp.Mailer
	expiry time.Duration
}

type ServiceDeps struct {
	OtpRepo otpStore
	Mailer  smtp.Mailer
	Expiry  time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:   deps.OtpRepo,
		mailer: deps.Mailer,
		expiry: deps.Expiry,
	}
}

func (s *service) Send(ctx context.Context, email, subject string) (*domain.OTPResult, error) {
	code, err := otpcode.New()
	if err != nil {
		return nil, err
	}
	codeHash, err := hash.Hash(code)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &domain.Otp{
		Email:     email,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(s.expiry).Unix(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, o); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("<p>Your OTP code is <b>%s</b>, Kindly use it to activate your account.</p>", code)
	if err := s.mailer.SendEmail(email, subjectPrefix+subject, body); err != nil {
		slog.Error("failed to send OTP email", "email", email, "err", err)
		return nil, fmt.Errorf("send otp email: %w", err)
	}

	return &domain.OTPResult{
		Message: "OTP sent successfully",
		Status:  http.StatusCreated,
	}, nil
}

func (s *service) Verify(ctx context.Context, email, code string) (*domain.OTPResult, error) {
	o, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !hash.Compare(code, o.CodeHash) {
		return nil, fmt.Errorf("code mismatch for %s: %w", email, domain.ErrOTPInvalid)
	}
	if o.ExpiresAt <= time.Now().Unix() {
		return nil, fmt.Errorf("code for %s expired at %d: %w", email, o.ExpiresAt, domain.ErrOTPExpired)
	}
	if err := s.repo.Delete(ctx, email); err != nil {
		return nil, err
	}
	return &domain.OTPResult{
		Message: "OTP verified successfully",
		Status:  http.StatusAccepted,
	}, nil
}

func (s *service) Resend(ctx context.Context, email, subject string) (*domain.OTPResult, error) {
	return s.Send(ctx, email, subject)
}
