package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/config"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// HashFunc hashes a plaintext password for storage
type HashFunc func(password string) (string, error)

// CreateDefaultAdmin creates the configured admin account unless one with that email exists.
// It does nothing when no seed admin is configured.
func CreateDefaultAdmin(ctx context.Context, adminRepo repositories.IAdminRepository, cfg *config.Config, hash HashFunc, lgr zerolog.Logger) error {
	email := cfg.Seed.AdminEmail
	if email == "" {
		lgr.Debug().Msg("No seed admin configured, skipping")
		return nil
	}
	if hash == nil {
		hash = auth.HashPassword
	}

	existing, err := adminRepo.GetByEmail(ctx, email)
	if err == nil {
		lgr.Info().Int64("adminID", existing.ID).Str("email", email).Msg("Default admin already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return fmt.Errorf("error looking up default admin: %w", err)
	}

	passwordHash, err := hash(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	id, err := adminRepo.Create(ctx, &models.Admin{
		FirstName: cfg.Seed.AdminFirstName,
		LastName:  cfg.Seed.AdminLastName,
		Email:     email,
		Password:  passwordHash,
	})
	if err != nil {
		// a concurrent starter may have won the insert
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating default admin: %w", err)
	}

	lgr.Info().Int64("adminID", id).Str("email", email).Msg("Default admin created")
	return nil
}
