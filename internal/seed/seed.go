package seed

import (
	"context"
	"errors"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/repositories"
	"github.com/mentora/mentora/internal/config"
	"github.com/mentora/mentora/internal/db"
	"github.com/mentora/mentora/internal/pkg/apperrors"
	"github.com/mentora/mentora/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultAdmin ensures an admin account exists so admin routes are
// reachable on a fresh database. Signup never produces admins.
func CreateDefaultAdmin(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("ADMIN_PASSWORD not set, skipping default admin creation")
		return nil
	}

	userRepo := repositories.NewUserRepository(database)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		// Concurrent startup of another instance may win the insert
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
