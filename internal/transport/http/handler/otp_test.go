package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventplug/signup-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockOtpSvc struct{ mock.Mock }

func (m *mockOtpSvc) Send(ctx context.Context, email, subject string) (*domain.OTPResult, error) {
	args := m.Called(ctx, email, subject)
	if r, _ := args.Get(0).(*domain.OTPResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOtpSvc) Verify(ctx context.Context, email, code string) (*domain.OTPResult, error) {
	args := m.Called(ctx, email, code)
	if r, _ := args.Get(0).(*domain.OTPResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOtpSvc) Resend(ctx context.Context, email, subject string) (*domain.OTPResult, error) {
	args := m.Called(ctx, email, subject)
	if r, _ := args.Get(0).(*domain.OTPResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func newOTPRouter(svc *mockOtpSvc) http.Handler {
	h := NewOTPHandler(svc)
	r := chi.NewRouter()
	r.Post("/otp/send", h.Send)
	r.Post("/otp/verify", h.Verify)
	r.Post("/otp/resend", h.Resend)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) domain.OTPResult {
	t.Helper()
	var res domain.OTPResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

// --- Send ---

func TestSendOTP_Created(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Send", mock.Anything, "a@b.com", "Signup").Return(&domain.OTPResult{
		Message: "OTP sent successfully", Status: http.StatusCreated,
	}, nil)

	rec := postJSON(t, newOTPRouter(svc), "/otp/send", map[string]string{
		"email": "a@b.com", "subject": "Signup",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	res := decodeResult(t, rec)
	assert.Equal(t, "OTP sent successfully", res.Message)
	assert.Equal(t, http.StatusCreated, res.Status)
	svc.AssertExpectations(t)
}

func TestSendOTP_InvalidBody(t *testing.T) {
	svc := &mockOtpSvc{}
	req := httptest.NewRequest(http.MethodPost, "/otp/send", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	newOTPRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOTP_ValidationFailure(t *testing.T) {
	svc := &mockOtpSvc{}
	rec := postJSON(t, newOTPRouter(svc), "/otp/send", map[string]string{
		"email": "not-an-email", "subject": "Signup",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOTP_MailFailure_Generic500(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Send", mock.Anything, "a@b.com", "Signup").Return(nil, errors.New("smtp: connection refused"))

	rec := postJSON(t, newOTPRouter(svc), "/otp/send", map[string]string{
		"email": "a@b.com", "subject": "Signup",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The transport error must not leak to the caller.
	assert.NotContains(t, rec.Body.String(), "smtp")
	assert.Contains(t, rec.Body.String(), "something went wrong, please try again later")
}

// --- Verify ---

func TestVerifyOTP_Accepted(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Verify", mock.Anything, "user@example.com", "ABC123").Return(&domain.OTPResult{
		Message: "OTP verified successfully", Status: http.StatusAccepted,
	}, nil)

	rec := postJSON(t, newOTPRouter(svc), "/otp/verify", map[string]string{
		"email": "user@example.com", "otp": "ABC123",
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	res := decodeResult(t, rec)
	assert.Equal(t, "OTP verified successfully", res.Message)
	assert.Equal(t, http.StatusAccepted, res.Status)
}

func TestVerifyOTP_NotFound(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Verify", mock.Anything, "user@example.com", "ABC123").Return(nil, domain.ErrOTPNotFound)

	rec := postJSON(t, newOTPRouter(svc), "/otp/verify", map[string]string{
		"email": "user@example.com", "otp": "ABC123",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	res := decodeResult(t, rec)
	assert.Equal(t, "OTP not found", res.Message)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestVerifyOTP_InvalidCode_SameStatusDifferentMessage(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Verify", mock.Anything, "user@example.com", "WRONG1").Return(nil, domain.ErrOTPInvalid)

	rec := postJSON(t, newOTPRouter(svc), "/otp/verify", map[string]string{
		"email": "user@example.com", "otp": "WRONG1",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "invalid otp", decodeResult(t, rec).Message)
}

func TestVerifyOTP_Expired(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Verify", mock.Anything, "user@example.com", "ABC123").Return(nil, domain.ErrOTPExpired)

	rec := postJSON(t, newOTPRouter(svc), "/otp/verify", map[string]string{
		"email": "user@example.com", "otp": "ABC123",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "OTP has expired", decodeResult(t, rec).Message)
}

// --- Resend ---

func TestResendOTP_Created(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Resend", mock.Anything, "a@b.com", "Signup").Return(&domain.OTPResult{
		Message: "OTP sent successfully", Status: http.StatusCreated,
	}, nil)

	rec := postJSON(t, newOTPRouter(svc), "/otp/resend", map[string]string{
		"email": "a@b.com", "subject": "Signup",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "OTP sent successfully", decodeResult(t, rec).Message)
}
