package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail  map[string]*User
	created  []*User
	verified []string
	logins   []string

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*User{}}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, u *User) error {
	if r.createErr != nil {
		return r.createErr
	}
	u.ID = "user-" + u.Email
	r.created = append(r.created, u)
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, id string) error {
	r.verified = append(r.verified, id)
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, _ time.Time) error {
	r.logins = append(r.logins, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ Filter) ([]*User, int, error) {
	return nil, 0, nil
}

// plainHasher stores passwords with a fixed prefix so tests can assert on
// hashes without paying bcrypt cost.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

type recordingMailer struct {
	to      []string
	bodies  []string
	sendErr error
}

func (m *recordingMailer) Send(_ context.Context, to, _, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return nil
}

func TestServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified account and mails otp", func(t *testing.T) {
		repo := newFakeUserRepo()
		mailer := &recordingMailer{}
		svc := NewService(repo, plainHasher{}, mailer, 10*time.Minute)

		u, err := svc.Register(ctx, RegisterRequest{
			Email:    "  Alice@Example.COM ",
			Password: "supersecret",
			FullName: " Alice ",
			Role:     "facilityowner",
		})
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", u.Email)
		require.Equal(t, "Alice", u.FullName)
		require.Equal(t, RoleOwner, u.Role)
		require.Equal(t, "hashed:supersecret", u.PasswordHash)
		require.False(t, u.IsVerified)
		require.True(t, u.IsActive)

		require.NotNil(t, u.OTP)
		require.Len(t, *u.OTP, 6)
		require.NotNil(t, u.OTPExpiresAt)
		require.WithinDuration(t, time.Now().UTC().Add(10*time.Minute), *u.OTPExpiresAt, time.Minute)

		require.Equal(t, []string{"alice@example.com"}, mailer.to)
		require.Contains(t, mailer.bodies[0], *u.OTP)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, 10*time.Minute)

		_, err := svc.Register(ctx, RegisterRequest{
			Email:    "bob@example.com",
			Password: "supersecret",
			Role:     "superadmin",
		})
		require.ErrorIs(t, err, ErrInvalidRole)
		require.Empty(t, repo.created)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), plainHasher{}, &recordingMailer{}, 10*time.Minute)

		_, err := svc.Register(ctx, RegisterRequest{
			Email:    "bob@example.com",
			Password: "short",
			Role:     "user",
		})
		require.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), plainHasher{}, &recordingMailer{}, 10*time.Minute)

		_, err := svc.Register(ctx, RegisterRequest{
			Email:    "   ",
			Password: "supersecret",
			Role:     "user",
		})
		require.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, 10*time.Minute)

		_, err := svc.Register(ctx, RegisterRequest{
			Email:    "carol@example.com",
			Password: "supersecret",
			Role:     "user",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterRequest{
			Email:    "CAROL@example.com",
			Password: "anothersecret",
			Role:     "user",
		})
		require.ErrorIs(t, err, ErrEmailAlreadyUsed)
		require.Len(t, repo.created, 1)
	})

	t.Run("mail failure does not fail registration", func(t *testing.T) {
		repo := newFakeUserRepo()
		mailer := &recordingMailer{sendErr: errors.New("smtp down")}
		svc := NewService(repo, plainHasher{}, mailer, 10*time.Minute)

		u, err := svc.Register(ctx, RegisterRequest{
			Email:    "dave@example.com",
			Password: "supersecret",
			Role:     "user",
		})
		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		require.NotNil(t, u.OTP)
	})
}

func TestServiceVerifyEmail(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, repo *fakeUserRepo, svc Service) *User {
		t.Helper()
		u, err := svc.Register(ctx, RegisterRequest{
			Email:    "alice@example.com",
			Password: "supersecret",
			Role:     "user",
		})
		require.NoError(t, err)
		return u
	}

	t.Run("marks account verified on correct otp", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, 10*time.Minute)
		u := register(t, repo, svc)

		err := svc.VerifyEmail(ctx, "ALICE@example.com", *u.OTP)
		require.NoError(t, err)
		require.Equal(t, []string{u.ID}, repo.verified)
	})

	t.Run("rejects wrong otp", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, 10*time.Minute)
		u := register(t, repo, svc)

		wrong := "000000"
		if *u.OTP == wrong {
			wrong = "000001"
		}
		err := svc.VerifyEmail(ctx, u.Email, wrong)
		require.ErrorIs(t, err, ErrInvalidOTP)
		require.Empty(t, repo.verified)
	})

	t.Run("rejects expired otp", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, -time.Minute)
		u := register(t, repo, svc)

		err := svc.VerifyEmail(ctx, u.Email, *u.OTP)
		require.ErrorIs(t, err, ErrOTPExpired)
	})

	t.Run("rejects already verified account", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, 10*time.Minute)
		u := register(t, repo, svc)
		repo.byEmail[u.Email].IsVerified = true

		err := svc.VerifyEmail(ctx, u.Email, *u.OTP)
		require.ErrorIs(t, err, ErrAlreadyVerified)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), plainHasher{}, &recordingMailer{}, 10*time.Minute)

		err := svc.VerifyEmail(ctx, "nobody@example.com", "123456")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUserRepo, Service, *User) {
		t.Helper()
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, 10*time.Minute)
		u, err := svc.Register(ctx, RegisterRequest{
			Email:    "alice@example.com",
			Password: "supersecret",
			Role:     "user",
		})
		require.NoError(t, err)
		require.NoError(t, svc.VerifyEmail(ctx, u.Email, *u.OTP))
		repo.byEmail[u.Email].IsVerified = true
		return repo, svc, u
	}

	t.Run("success records last login", func(t *testing.T) {
		repo, svc, u := setup(t)

		got, err := svc.Login(ctx, "Alice@Example.com", "supersecret")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, []string{u.ID}, repo.logins)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, svc, _ := setup(t)

		_, err := svc.Login(ctx, "alice@example.com", "wrongpassword")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, svc, _ := setup(t)

		_, err := svc.Login(ctx, "nobody@example.com", "supersecret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unverified account", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{}, &recordingMailer{}, 10*time.Minute)
		u, err := svc.Register(ctx, RegisterRequest{
			Email:    "bob@example.com",
			Password: "supersecret",
			Role:     "user",
		})
		require.NoError(t, err)

		_, err = svc.Login(ctx, u.Email, "supersecret")
		require.ErrorIs(t, err, ErrNotVerified)
	})

	t.Run("inactive account", func(t *testing.T) {
		repo, svc, u := setup(t)
		repo.byEmail[u.Email].IsActive = false

		_, err := svc.Login(ctx, u.Email, "supersecret")
		require.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestGenerateOTP(t *testing.T) {
	for range 20 {
		otp, err := generateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		require.Equal(t, "", strings.TrimLeft(otp, "0123456789"))
	}
}
