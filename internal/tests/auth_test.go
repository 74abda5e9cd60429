package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pedala/internal/config"
	"pedala/internal/domain"
	"pedala/internal/service"
)

// ──────────────────────────────────────────────
// AUTH AND PROFILE
// ──────────────────────────────────────────────

func authTestConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		InitialPoints: 100,
	}
}

func validRegistration() service.RegisterRequest {
	return service.RegisterRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		Phone:    "11987654321",
		CPF:      "123.456.789-01",
	}
}

func TestRegister_CreatesUserWithInitialPoints(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := service.NewAuthService(userRepo, authTestConfig())

	user, err := auth.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Points != 100 {
		t.Errorf("initial points = %d, want 100", user.Points)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text or not at all")
	}
	if user.Rentals == nil || len(user.Rentals) != 0 {
		t.Errorf("new user should have an empty rental history, got %v", user.Rentals)
	}

	stored, err := userRepo.GetByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.Name != "Ana Souza" {
		t.Errorf("stored name = %q", stored.Name)
	}
}

func TestRegister_ValidationRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*service.RegisterRequest)
	}{
		{"missing name", func(r *service.RegisterRequest) { r.Name = "" }},
		{"invalid email", func(r *service.RegisterRequest) { r.Email = "not-an-email" }},
		{"email with spaces", func(r *service.RegisterRequest) { r.Email = "ana @example.com" }},
		{"email without tld", func(r *service.RegisterRequest) { r.Email = "ana@example" }},
		{"short password", func(r *service.RegisterRequest) { r.Password = "1234567" }},
		{"empty password", func(r *service.RegisterRequest) { r.Password = "" }},
		{"cpf too short", func(r *service.RegisterRequest) { r.CPF = "123456789" }},
		{"cpf too long", func(r *service.RegisterRequest) { r.CPF = "123456789012" }},
		{"phone too short", func(r *service.RegisterRequest) { r.Phone = "123456789" }},
		{"phone too long", func(r *service.RegisterRequest) { r.Phone = "123456789012" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())

			req := validRegistration()
			tt.mutate(&req)

			_, err := auth.Register(context.Background(), req)
			if !errors.Is(err, service.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegister_AcceptsFormattedCPFAndPhone(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())

	req := validRegistration()
	req.CPF = "123.456.789-01"
	req.Phone = "(11) 98765-4321"

	if _, err := auth.Register(context.Background(), req); err != nil {
		t.Errorf("formatted cpf/phone should validate, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())
	ctx := context.Background()

	if _, err := auth.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := auth.Register(ctx, validRegistration())
	if !errors.Is(err, service.ErrDuplicateAccount) {
		t.Errorf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())
	ctx := context.Background()

	if _, err := auth.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	user, token, err := auth.Login(ctx, "ana@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("logged-in user = %q", user.Email)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token does not look like a JWT: %q", token)
	}

	email, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if email != "ana@example.com" {
		t.Errorf("token subject = %q", email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())
	ctx := context.Background()

	if _, err := auth.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, _, err := auth.Login(ctx, "ana@example.com", "wrong-pass")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())

	_, _, err := auth.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestParseToken_RejectsTampering(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())
	ctx := context.Background()

	if _, err := auth.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	_, token, err := auth.Login(ctx, "ana@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := auth.ParseToken(token + "x"); !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("tampered token should not validate, got %v", err)
	}
	if _, err := auth.ParseToken("not-a-token"); !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("garbage token should not validate, got %v", err)
	}

	// Token signed with a different secret.
	other := service.NewAuthService(NewMockUserRepository(), config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour})
	if _, err := other.ParseToken(token); !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("foreign token should not validate, got %v", err)
	}
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := service.NewAuthService(userRepo, authTestConfig())
	ctx := context.Background()

	if _, err := auth.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	sess := domain.Session{UserEmail: "ana@example.com"}
	user, err := auth.UpdateProfile(ctx, sess, service.UpdateProfileRequest{Name: "Ana Lima"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Name != "Ana Lima" {
		t.Errorf("name = %q, want Ana Lima", user.Name)
	}
	if user.Phone != "11987654321" {
		t.Errorf("phone should be unchanged, got %q", user.Phone)
	}
}

func TestUpdateProfile_RejectsInvalidPhone(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())
	ctx := context.Background()

	if _, err := auth.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	sess := domain.Session{UserEmail: "ana@example.com"}
	_, err := auth.UpdateProfile(ctx, sess, service.UpdateProfileRequest{Phone: "123"})
	if !errors.Is(err, service.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateProfile_RequiresLogin(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository(), authTestConfig())

	_, err := auth.UpdateProfile(context.Background(), domain.Session{}, service.UpdateProfileRequest{Name: "X"})
	if !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}
