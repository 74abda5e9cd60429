package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pedala/internal/config"
	"pedala/internal/domain"
	"pedala/internal/repository"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`\D`)
)

// AuthService handles registration, login and profile updates. Passwords
// are stored as bcrypt hashes; sessions are stateless JWTs whose subject
// is the user's email.
type AuthService struct {
	userRepo repository.UserRepository
	cfg      config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, cfg config.AuthConfig) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// RegisterRequest contains the fields for creating an account.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	CPF      string
}

// Register creates a new user account with the configured initial points.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := validateFields(req.Email, req.Password, req.CPF, req.Phone); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		CPF:          req.CPF,
		Points:       s.cfg.InitialPoints,
		Rentals:      []domain.Rental{},
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UpdateProfileRequest contains the mutable profile fields. Empty fields
// are left unchanged.
type UpdateProfileRequest struct {
	Name  string
	Phone string
}

// UpdateProfile merges the request into the session user's record.
func (s *AuthService) UpdateProfile(ctx context.Context, sess domain.Session, req UpdateProfileRequest) (*domain.User, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	if req.Phone != "" {
		if err := validatePhone(req.Phone); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.GetByEmail(ctx, sess.UserEmail)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ParseToken validates a bearer token and returns the embedded user email.
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", ErrNotLoggedIn
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrNotLoggedIn
	}
	return claims.Subject, nil
}

func (s *AuthService) issueToken(email string) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// validateFields checks the registration field rules. The optional fields
// (cpf, phone) are only validated when present.
func validateFields(email, password, cpf, phone string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if cpf != "" {
		if digits := digitsPattern.ReplaceAllString(cpf, ""); len(digits) != 11 {
			return fmt.Errorf("%w: cpf must have 11 digits", ErrValidation)
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	return nil
}

func validatePhone(phone string) error {
	digits := digitsPattern.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 11 {
		return fmt.Errorf("%w: phone must have 10 or 11 digits", ErrValidation)
	}
	return nil
}
