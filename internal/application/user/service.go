package user

import (
	"context"
	"fmt"
	"time"

	"github.com/eventplug/signup-api/internal/application/otp"
	"github.com/eventplug/signup-api/internal/domain"
	"github.com/eventplug/signup-api/internal/pkg/hash"
	"github.com/eventplug/signup-api/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldActive    = "active"
	fieldAuthToken = "auth_token"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Activate verifies the signup OTP for the account's email, marks the
	// account active, and issues its auth token.
	Activate(ctx context.Context, email, code string) (*domain.User, string, error)
	List(ctx context.Context, limit int, cursor string) ([]domain.User, string, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.User, string, error)
}

type tokenSigner interface {
	Sign(userID, email, role string) (string, error)
}

type service struct {
	repo   userStore
	otpSvc otp.Service
	signer tokenSigner
}

type ServiceDeps struct {
	UserRepo userStore
	OtpSvc   otp.Service
	Signer   tokenSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:   deps.UserRepo,
		otpSvc: deps.OtpSvc,
		signer: deps.Signer,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	// DynamoDB has no secondary unique constraint, so the one-user-per-email
	// invariant is enforced here rather than at the storage boundary.
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	passwordHash, err := hash.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: passwordHash,
		Role:         domain.RoleSubscriber,
		Active:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	// The hash never leaves the service after creation.
	u.PasswordHash = ""
	return u, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *service) Activate(ctx context.Context, email, code string) (*domain.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if _, err := s.otpSvc.Verify(ctx, email, code); err != nil {
		return nil, "", err
	}
	if s.signer == nil {
		return nil, "", fmt.Errorf("token signer not configured")
	}
	token, err := s.signer.Sign(u.UserID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{
		fieldActive:    true,
		fieldAuthToken: token,
	}); err != nil {
		return nil, "", err
	}
	u.Active = true
	u.AuthToken = &token
	u.PasswordHash = ""
	return u, token, nil
}

func (s *service) List(ctx context.Context, limit int, cursor string) ([]domain.User, string, error) {
	if limit < 1 {
		limit = 50
	}
	return s.repo.ScanPage(ctx, int32(limit), cursor)
}
