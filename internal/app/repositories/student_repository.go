package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/db"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/dberrors"
	"github.com/careerguide/backend/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// StudentSortColumns lists the columns a student listing may be ordered by
var StudentSortColumns = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"grade":      true,
	"country":    true,
	"email":      true,
}

var studentColumns = []string{
	"id", "first_name", "last_name", "grade", "email", "country", "phone",
	"password_hash", "premium", "career_test_count",
}

// StudentListFilter narrows and orders a student listing
type StudentListFilter struct {
	Search string // case-sensitive substring of first_name
	SortBy string
	Desc   bool
}

//go:generate mockgen -source=./student_repository.go -package=repomocks -destination=mocks/student_repository.mock.go

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter StudentListFilter) ([]*models.Student, error)
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

var _ IStudentRepository = (*StudentRepository)(nil)

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool db.Pool) *StudentRepository {
	return &StudentRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Grade, &s.Email, &s.Country, &s.Phone,
		&s.Password, &s.Premium, &s.CareerTestCount)
	return s, err
}

// Create inserts a new student with premium=false and no completed tests
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "grade", "email", "country", "phone",
			"password_hash", "premium", "career_test_count").
		Values(student.FirstName, student.LastName, student.Grade, student.Email, student.Country,
			student.Phone, student.Password, false, 0).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	student.Premium = false
	student.CareerTestCount = 0
	return id, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by email SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}
	return student, nil
}

// EmailExists checks if a student already uses email
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking student email")
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// List returns every student matching filter. There is no pagination.
func (r *StudentRepository) List(ctx context.Context, filter StudentListFilter) ([]*models.Student, error) {
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	if !StudentSortColumns[sortBy] {
		return nil, apperrors.NewValidationError(fmt.Sprintf("cannot sort students by %q", sortBy))
	}
	direction := "ASC"
	if filter.Desc {
		direction = "DESC"
	}

	query := r.sb.Select(studentColumns...).From("students")
	if filter.Search != "" {
		query = query.Where(squirrel.Like{"first_name": "%" + escapeLike(filter.Search) + "%"})
	}
	query = query.OrderBy(sortBy + " " + direction)
	if sortBy != "id" {
		query = query.OrderBy("id ASC")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
