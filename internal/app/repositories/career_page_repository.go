package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/db"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/dberrors"
	"github.com/careerguide/backend/internal/pkg/helpers"
	"github.com/careerguide/backend/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	parentFKConstraint    = "career_pages_parent_id_fkey"
	slugUniqueConstraint  = "career_pages_slug_key"
	titleUniqueConstraint = "career_pages_title_key"
)

var careerPageColumns = []string{
	"id", "title", "slug", "content", "thumbnail_url", "riasec_tags", "parent_id", "created_at",
}

// descendantCheckSQL reports whether $2 is a descendant of page $1
const descendantCheckSQL = `
	WITH RECURSIVE descendants AS (
		SELECT id FROM career_pages WHERE parent_id = $1
		UNION
		SELECT c.id FROM career_pages c JOIN descendants d ON c.parent_id = d.id
	)
	SELECT EXISTS(SELECT 1 FROM descendants WHERE id = $2)`

// CareerPageFilter narrows a page listing. ParentID wins over RootsOnly.
type CareerPageFilter struct {
	ParentID  *int64
	RootsOnly bool
}

// CareerPageUpdate carries the new state of a page.
// An empty NewSlug keeps the slug, a nil ThumbnailURL keeps the thumbnail,
// and a nil ParentID detaches the page from its parent.
type CareerPageUpdate struct {
	Title        string
	Content      string
	RiasecTags   string
	ParentID     *int64
	NewSlug      string
	ThumbnailURL *string
}

//go:generate mockgen -source=./career_page_repository.go -package=repomocks -destination=mocks/career_page_repository.mock.go

// ICareerPageRepository defines the interface for career page hierarchy operations
type ICareerPageRepository interface {
	Create(ctx context.Context, page *models.CareerPage) (*models.CareerPage, error)
	ListAll(ctx context.Context, filter CareerPageFilter) ([]*models.CareerPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.CareerPage, error)
	ListChildren(ctx context.Context, slug string) ([]*models.CareerPage, error)
	Update(ctx context.Context, slug string, update CareerPageUpdate) (*models.CareerPage, error)
	Delete(ctx context.Context, slug string) (*models.CareerPage, error)
	ThumbnailInUse(ctx context.Context, thumbnailURL string) (bool, error)
}

// CareerPageRepository handles career page database operations
type CareerPageRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

var _ ICareerPageRepository = (*CareerPageRepository)(nil)

// NewCareerPageRepository creates a new CareerPageRepository
func NewCareerPageRepository(pool db.Pool) *CareerPageRepository {
	return &CareerPageRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCareerPage(row rowScanner) (*models.CareerPage, error) {
	var (
		p         models.CareerPage
		thumbnail sql.NullString
		parentID  sql.NullInt64
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &thumbnail, &p.RiasecTags, &parentID, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.ThumbnailURL = helpers.StringPtr(thumbnail)
	p.ParentID = helpers.Int64Ptr(parentID)
	return &p, nil
}

func translatePageWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, slugUniqueConstraint):
		return apperrors.ErrCareerPageSlugTaken
	case dberrors.IsDuplicateConstraintError(err, titleUniqueConstraint):
		return apperrors.ErrCareerPageTitleTaken
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrCareerPageAlreadyExists
	case dberrors.IsForeignKeyViolation(err, parentFKConstraint):
		return apperrors.ErrParentPageNotFound
	}
	return nil
}

// Create inserts a page. A parent_id that matches no page is rejected by the foreign key.
func (r *CareerPageRepository) Create(ctx context.Context, page *models.CareerPage) (*models.CareerPage, error) {
	sql, args, err := r.sb.Insert("career_pages").
		Columns("title", "slug", "content", "thumbnail_url", "riasec_tags", "parent_id").
		Values(page.Title, page.Slug, page.Content, helpers.GetNullString(page.ThumbnailURL),
			page.RiasecTags, helpers.GetNullInt64(page.ParentID)).
		Suffix("RETURNING " + columnList(careerPageColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create career page SQL")
		return nil, fmt.Errorf("failed to build create career page query: %w", err)
	}

	created, err := scanCareerPage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if appErr := translatePageWriteError(err); appErr != nil {
			return nil, appErr
		}
		logger.Error().Err(err).Str("slug", page.Slug).Msg("Error executing create career page query")
		return nil, fmt.Errorf("error creating career page: %w", err)
	}

	return created, nil
}

// ListAll returns pages ordered by id
func (r *CareerPageRepository) ListAll(ctx context.Context, filter CareerPageFilter) ([]*models.CareerPage, error) {
	query := r.sb.Select(careerPageColumns...).From("career_pages")
	switch {
	case filter.ParentID != nil:
		query = query.Where(squirrel.Eq{"parent_id": *filter.ParentID})
	case filter.RootsOnly:
		query = query.Where(squirrel.Eq{"parent_id": nil})
	}

	return r.list(ctx, query.OrderBy("id ASC"))
}

// GetBySlug returns the page or ErrCareerPageNotFound
func (r *CareerPageRepository) GetBySlug(ctx context.Context, slug string) (*models.CareerPage, error) {
	sql, args, err := r.sb.Select(careerPageColumns...).
		From("career_pages").
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get career page SQL")
		return nil, fmt.Errorf("failed to build get career page query: %w", err)
	}

	page, err := scanCareerPage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCareerPageNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error scanning career page row")
		return nil, fmt.Errorf("error getting career page by slug: %w", err)
	}
	return page, nil
}

// ListChildren returns the direct children of the page with the given slug
func (r *CareerPageRepository) ListChildren(ctx context.Context, slug string) ([]*models.CareerPage, error) {
	parent, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return r.list(ctx, r.sb.Select(careerPageColumns...).
		From("career_pages").
		Where(squirrel.Eq{"parent_id": parent.ID}).
		OrderBy("id ASC"))
}

// Update locks the page, rejects parent cycles and writes the new state in one transaction
func (r *CareerPageRepository) Update(ctx context.Context, slug string, update CareerPageUpdate) (*models.CareerPage, error) {
	var updated *models.CareerPage
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM career_pages WHERE slug = $1 FOR UPDATE`, slug).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCareerPageNotFound
			}
			return fmt.Errorf("error locking career page: %w", err)
		}

		if update.ParentID != nil {
			if *update.ParentID == id {
				return apperrors.ErrParentPageCycle
			}
			var isDescendant bool
			if err := tx.QueryRow(ctx, descendantCheckSQL, id, *update.ParentID).Scan(&isDescendant); err != nil {
				return fmt.Errorf("error checking page hierarchy: %w", err)
			}
			if isDescendant {
				return apperrors.ErrParentPageCycle
			}
		}

		query := r.sb.Update("career_pages").
			Set("title", update.Title).
			Set("content", update.Content).
			Set("riasec_tags", update.RiasecTags).
			Set("parent_id", helpers.GetNullInt64(update.ParentID))
		if update.NewSlug != "" {
			query = query.Set("slug", update.NewSlug)
		}
		if update.ThumbnailURL != nil {
			query = query.Set("thumbnail_url", *update.ThumbnailURL)
		}

		sql, args, err := query.
			Where(squirrel.Eq{"id": id}).
			Suffix("RETURNING " + columnList(careerPageColumns)).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update career page query: %w", err)
		}

		updated, err = scanCareerPage(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if appErr := translatePageWriteError(err); appErr != nil {
				return appErr
			}
			return fmt.Errorf("error updating career page: %w", err)
		}
		return nil
	})
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict, apperrors.ErrValidationFailed) {
			logger.Error().Err(err).Str("slug", slug).Msg("Error updating career page")
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes the page and returns it. Children are detached by ON DELETE SET NULL.
func (r *CareerPageRepository) Delete(ctx context.Context, slug string) (*models.CareerPage, error) {
	sql, args, err := r.sb.Delete("career_pages").
		Where(squirrel.Eq{"slug": slug}).
		Suffix("RETURNING " + columnList(careerPageColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete career page SQL")
		return nil, fmt.Errorf("failed to build delete career page query: %w", err)
	}

	deleted, err := scanCareerPage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCareerPageNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error executing delete career page query")
		return nil, fmt.Errorf("error deleting career page: %w", err)
	}
	return deleted, nil
}

// ThumbnailInUse reports whether any page still points at thumbnailURL.
// Create keeps uploaded file names, so several pages can share one file.
func (r *CareerPageRepository) ThumbnailInUse(ctx context.Context, thumbnailURL string) (bool, error) {
	var inUse bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM career_pages WHERE thumbnail_url = $1)`, thumbnailURL).Scan(&inUse)
	if err != nil {
		logger.Error().Err(err).Str("url", thumbnailURL).Msg("Error checking thumbnail usage")
		return false, fmt.Errorf("error checking thumbnail usage: %w", err)
	}
	return inUse, nil
}

func (r *CareerPageRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.CareerPage, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list career pages SQL")
		return nil, fmt.Errorf("failed to build list career pages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list career pages query")
		return nil, fmt.Errorf("error querying career pages: %w", err)
	}
	defer rows.Close()

	pages := []*models.CareerPage{}
	for rows.Next() {
		page, err := scanCareerPage(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning career page row during list")
			return nil, fmt.Errorf("error scanning career page row: %w", err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating career page rows")
		return nil, fmt.Errorf("error iterating career page rows: %w", err)
	}
	return pages, nil
}
