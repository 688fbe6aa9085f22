package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/db"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/dberrors"
	"github.com/careerguide/backend/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
)

var adminColumns = []string{"id", "first_name", "last_name", "email", "country", "phone", "password_hash"}

//go:generate mockgen -source=./admin_repository.go -package=repomocks -destination=mocks/admin_repository.mock.go

// IAdminRepository defines the interface for admin database operations
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
}

// AdminRepository handles admin database operations
type AdminRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

var _ IAdminRepository = (*AdminRepository)(nil)

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(pool db.Pool) *AdminRepository {
	return &AdminRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAdmin(row rowScanner) (*models.Admin, error) {
	a := &models.Admin{}
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Country, &a.Phone, &a.Password)
	return a, err
}

// Create inserts an admin. Admins have no registration endpoint; this serves seeding.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("first_name", "last_name", "email", "country", "phone", "password_hash").
		Values(admin.FirstName, admin.LastName, admin.Email, admin.Country, admin.Phone, admin.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", admin.Email).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	admin.ID = id
	return id, nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *AdminRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin SQL")
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}
	return admin, nil
}

// Update overwrites every mutable column of admin. Email is never written.
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	sql, args, err := r.sb.Update("admins").
		Set("first_name", admin.FirstName).
		Set("last_name", admin.LastName).
		Set("country", admin.Country).
		Set("phone", admin.Phone).
		Set("password_hash", admin.Password).
		Where(squirrel.Eq{"id": admin.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admin SQL")
		return fmt.Errorf("failed to build update admin query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("adminID", admin.ID).Msg("Error executing update admin query")
		return fmt.Errorf("error updating admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
