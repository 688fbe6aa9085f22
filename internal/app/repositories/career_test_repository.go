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

//go:generate mockgen -source=./career_test_repository.go -package=repomocks -destination=mocks/career_test_repository.mock.go

// ICareerTestRepository defines the interface for career test aggregate operations
type ICareerTestRepository interface {
	Create(ctx context.Context, test *models.CareerTest) (*models.CareerTest, error)
	ListAll(ctx context.Context) ([]*models.CareerTest, error)
	GetByID(ctx context.Context, id int64) (*models.CareerTest, error)
	Update(ctx context.Context, test *models.CareerTest) (*models.CareerTest, error)
	Duplicate(ctx context.Context, sourceID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CareerTestRepository persists career tests together with their questions
type CareerTestRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

var _ ICareerTestRepository = (*CareerTestRepository)(nil)

// NewCareerTestRepository creates a new CareerTestRepository
func NewCareerTestRepository(pool db.Pool) *CareerTestRepository {
	return &CareerTestRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func translateTestWriteError(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.ErrCareerTestAlreadyExists
	}
	return err
}

// Create inserts the test and its questions in one transaction.
// number_of_questions is stored as given.
func (r *CareerTestRepository) Create(ctx context.Context, test *models.CareerTest) (*models.CareerTest, error) {
	created := &models.CareerTest{}
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = r.insertAggregate(ctx, tx, test.Name, test.Description, test.NumberOfQuestions, test.Questions)
		return err
	})
	if err != nil {
		return nil, translateTestWriteError(err)
	}

	logger.Info().Int64("testID", created.ID).Int("questions", len(created.Questions)).Msg("Career test created")
	return created, nil
}

// ListAll returns every test with its questions, tests by id and questions by position
func (r *CareerTestRepository) ListAll(ctx context.Context) ([]*models.CareerTest, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "number_of_questions", "last_updated").
		From("career_tests").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list career tests SQL")
		return nil, fmt.Errorf("failed to build list career tests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list career tests query")
		return nil, fmt.Errorf("error querying career tests: %w", err)
	}

	tests := []*models.CareerTest{}
	byID := map[int64]*models.CareerTest{}
	ids := []int64{}
	for rows.Next() {
		test, err := scanCareerTest(rows)
		if err != nil {
			rows.Close()
			logger.Error().Err(err).Msg("Error scanning career test row")
			return nil, fmt.Errorf("error scanning career test row: %w", err)
		}
		tests = append(tests, test)
		byID[test.ID] = test
		ids = append(ids, test.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating career test rows")
		return nil, fmt.Errorf("error iterating career test rows: %w", err)
	}

	if len(ids) == 0 {
		return tests, nil
	}

	questions, err := r.listQuestions(ctx, r.db, squirrel.Eq{"test_id": ids})
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		if test, ok := byID[q.TestID]; ok {
			test.Questions = append(test.Questions, q)
		}
	}

	return tests, nil
}

// GetByID returns the aggregate or ErrCareerTestNotFound
func (r *CareerTestRepository) GetByID(ctx context.Context, id int64) (*models.CareerTest, error) {
	return r.getAggregate(ctx, r.db, id, false)
}

// Update fully replaces the test: scalars are overwritten and the question set is
// deleted and re-inserted in payload order, all in one transaction.
func (r *CareerTestRepository) Update(ctx context.Context, test *models.CareerTest) (*models.CareerTest, error) {
	updated := &models.CareerTest{}
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("career_tests").
			Set("name", test.Name).
			Set("description", test.Description).
			Set("number_of_questions", test.NumberOfQuestions).
			Set("last_updated", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": test.ID}).
			Suffix("RETURNING id, name, description, number_of_questions, last_updated").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update career test query: %w", err)
		}

		updated, err = scanCareerTest(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCareerTestNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE test_id = $1`, test.ID); err != nil {
			return fmt.Errorf("error deleting questions: %w", err)
		}

		updated.Questions, err = r.insertQuestions(ctx, tx, test.ID, test.Questions)
		return err
	})
	if err != nil {
		err = translateTestWriteError(err)
		if !apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict) {
			logger.Error().Err(err).Int64("testID", test.ID).Msg("Error updating career test")
			return nil, fmt.Errorf("error updating career test: %w", err)
		}
		return nil, err
	}

	return updated, nil
}

// Duplicate clones the content of test sourceID into a new test named
// "<name> (Copy)" with fresh question rows. It returns the new test id.
func (r *CareerTestRepository) Duplicate(ctx context.Context, sourceID int64) (int64, error) {
	var newID int64
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		source, err := r.getAggregate(ctx, tx, sourceID, true)
		if err != nil {
			return err
		}

		copied, err := r.insertAggregate(ctx, tx, models.CopyName(source.Name), source.Description,
			source.NumberOfQuestions, source.Questions)
		if err != nil {
			return err
		}
		newID = copied.ID
		return nil
	})
	if err != nil {
		err = translateTestWriteError(err)
		if !apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict) {
			logger.Error().Err(err).Int64("sourceID", sourceID).Msg("Error duplicating career test")
			return 0, fmt.Errorf("error duplicating career test: %w", err)
		}
		return 0, err
	}

	logger.Info().Int64("sourceID", sourceID).Int64("testID", newID).Msg("Career test duplicated")
	return newID, nil
}

// Delete removes a test; its questions are removed by the foreign key cascade
func (r *CareerTestRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("career_tests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete career test SQL")
		return fmt.Errorf("failed to build delete career test query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("testID", id).Msg("Error executing delete career test query")
		return fmt.Errorf("error deleting career test: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCareerTestNotFound
	}
	return nil
}

func scanCareerTest(row rowScanner) (*models.CareerTest, error) {
	t := &models.CareerTest{Questions: []models.Question{}}
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.NumberOfQuestions, &t.LastUpdated)
	return t, err
}

// getAggregate loads one test and its questions through q. forUpdate locks the test row.
func (r *CareerTestRepository) getAggregate(ctx context.Context, q db.Querier, id int64, forUpdate bool) (*models.CareerTest, error) {
	query := r.sb.Select("id", "name", "description", "number_of_questions", "last_updated").
		From("career_tests").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get career test SQL")
		return nil, fmt.Errorf("failed to build get career test query: %w", err)
	}

	test, err := scanCareerTest(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCareerTestNotFound
		}
		logger.Error().Err(err).Int64("testID", id).Msg("Error scanning career test row")
		return nil, fmt.Errorf("error getting career test by ID: %w", err)
	}

	questions, err := r.listQuestions(ctx, q, squirrel.Eq{"test_id": id})
	if err != nil {
		return nil, err
	}
	test.Questions = append(test.Questions, questions...)
	return test, nil
}

func (r *CareerTestRepository) listQuestions(ctx context.Context, q db.Querier, where squirrel.Eq) ([]models.Question, error) {
	sql, args, err := r.sb.Select("id", "test_id", "position", "description", "tag").
		From("questions").
		Where(where).
		OrderBy("test_id ASC", "position ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list questions SQL")
		return nil, fmt.Errorf("failed to build list questions query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list questions query")
		return nil, fmt.Errorf("error querying questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.TestID, &question.Position, &question.Description, &question.Tag); err != nil {
			logger.Error().Err(err).Msg("Error scanning question row")
			return nil, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating question rows")
		return nil, fmt.Errorf("error iterating question rows: %w", err)
	}
	return questions, nil
}

func (r *CareerTestRepository) insertAggregate(ctx context.Context, tx pgx.Tx, name, description string,
	numberOfQuestions int, questions []models.Question) (*models.CareerTest, error) {
	sql, args, err := r.sb.Insert("career_tests").
		Columns("name", "description", "number_of_questions", "last_updated").
		Values(name, description, numberOfQuestions, squirrel.Expr("NOW()")).
		Suffix("RETURNING id, name, description, number_of_questions, last_updated").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create career test query: %w", err)
	}

	test, err := scanCareerTest(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if !dberrors.IsUniqueViolation(err) {
			logger.Error().Err(err).Str("name", name).Msg("Error executing create career test query")
		}
		return nil, fmt.Errorf("error creating career test: %w", err)
	}

	test.Questions, err = r.insertQuestions(ctx, tx, test.ID, questions)
	if err != nil {
		return nil, err
	}
	return test, nil
}

// insertQuestions writes questions for testID, numbering positions from 0 in slice order
func (r *CareerTestRepository) insertQuestions(ctx context.Context, tx pgx.Tx, testID int64, questions []models.Question) ([]models.Question, error) {
	inserted := make([]models.Question, 0, len(questions))
	for i, q := range questions {
		sql, args, err := r.sb.Insert("questions").
			Columns("test_id", "position", "description", "tag").
			Values(testID, i, q.Description, q.Tag).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build create question query: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			logger.Error().Err(err).Int64("testID", testID).Int("position", i).Msg("Error inserting question")
			return nil, fmt.Errorf("error creating question: %w", err)
		}

		inserted = append(inserted, models.Question{
			ID:          id,
			TestID:      testID,
			Position:    i,
			Description: q.Description,
			Tag:         q.Tag,
		})
	}
	return inserted, nil
}
