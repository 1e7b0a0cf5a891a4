package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/mail"
)

// RegisterRequest carries data to create an account.
type RegisterRequest struct {
	Email        string
	Password     string
	FullName     string
	Role         string
	AvatarFileID *string
}

// Service defines business logic related to users.
type Service interface {
	// Register creates an unverified account and sends a one-time code
	// to the given email. The account cannot log in until verified.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// VerifyEmail checks the one-time code and marks the account verified.
	VerifyEmail(ctx context.Context, email, otp string) error

	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	mailer mail.Mailer

	minPasswordLength int
	otpTTL            time.Duration
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher, mailer mail.Mailer, otpTTL time.Duration) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		mailer:            mailer,
		minPasswordLength: 8,
		otpTTL:            otpTTL,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(req.Password) < s.minPasswordLength {
		return nil, fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, s.minPasswordLength)
	}

	role := Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}
	otpExpiry := time.Now().UTC().Add(s.otpTTL)

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		AvatarFileID: req.AvatarFileID,
		IsVerified:   false,
		IsActive:     true,
		OTP:          &otp,
		OTPExpiresAt: &otpExpiry,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your QuickCourt verification code is %s. It expires in %d minutes.",
		otp, int(s.otpTTL.Minutes()))
	if err := s.mailer.Send(ctx, u.Email, "QuickCourt email verification", body); err != nil {
		// The account exists and the code can be re-issued, so a delivery
		// failure is logged rather than failing the registration.
		log.Printf("failed to send otp mail to %s: %v", u.Email, err)
	}

	return u, nil
}

func (s *service) VerifyEmail(ctx context.Context, email, otp string) error {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(otp) == "" {
		return ErrInvalidOTP
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		return err
	}

	if u.IsVerified {
		return ErrAlreadyVerified
	}
	if u.OTP == nil || u.OTPExpiresAt == nil {
		return ErrInvalidOTP
	}
	if time.Now().UTC().After(*u.OTPExpiresAt) {
		return ErrOTPExpired
	}
	if *u.OTP != otp {
		return ErrInvalidOTP
	}

	return s.repo.MarkVerified(ctx, u.ID)
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if !u.IsActive {
		return nil, ErrInactiveUser
	}
	if !u.IsVerified {
		return nil, ErrNotVerified
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Update last_login_at (best effort; do not fail login if update fails).
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		log.Printf("failed to update last login for %s: %v", u.ID, err)
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

// generateOTP returns a 6-digit numeric one-time code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
