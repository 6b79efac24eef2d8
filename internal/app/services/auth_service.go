package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/repositories"
	"github.com/mentora/mentora/internal/pkg/apperrors"
	"github.com/mentora/mentora/internal/pkg/auth"
	"github.com/rs/zerolog"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthService handles signup and login
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateSignup checks signup data beyond what binding tags cover
func (s *AuthService) validateSignup(req *dto.SignupRequest) error {
	if !emailRegex.MatchString(strings.TrimSpace(req.Email)) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}

	if len(req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidationFailed)
	}

	role := models.RoleType(req.Role)
	if !role.Valid() || role == models.RoleAdmin {
		return fmt.Errorf("%w: role must be student or teacher", apperrors.ErrValidationFailed)
	}

	return nil
}

// Signup creates a new account. Fails with ErrEmailAlreadyExists when the
// email is taken; the unique index on users.email backs the check under
// concurrent signups.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	if err := s.validateSignup(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     models.RoleType(req.Role),
		Phone:    req.Phone,
		Location: req.Location,
	}

	// Teacher-specific fields are dropped for students
	if user.Role == models.RoleTeacher {
		user.Subject = req.Subject
		user.Qualification = req.Qualification
		user.ExperienceYears = req.ExperienceYears
		user.Linkedin = req.Linkedin
		user.Availability = req.Availability
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both return ErrInvalidCredentials so callers cannot probe
// which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}
