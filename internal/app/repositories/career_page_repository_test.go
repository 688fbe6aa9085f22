package repositories

import (
	"context"
	"testing"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageRows() *pgxmock.Rows {
	return pgxmock.NewRows(careerPageColumns)
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func TestCareerPageRepository_Create(t *testing.T) {
	testCases := []struct {
		name    string
		page    *models.CareerPage
		mock    func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "root page with thumbnail",
			page: &models.CareerPage{Title: "Engineering", Slug: "engineering", Content: "<p>hi</p>",
				RiasecTags: "R,I", ThumbnailURL: strPtr("/uploads/career-pages/eng.png")},
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO career_pages").
					WithArgs("Engineering", "engineering", "<p>hi</p>", pgxmock.AnyArg(), "R,I", pgxmock.AnyArg()).
					WillReturnRows(pageRows().AddRow(int64(1), "Engineering", "engineering", "<p>hi</p>",
						"/uploads/career-pages/eng.png", "R,I", nil, fixedTime))
			},
		},
		{
			name: "duplicate slug",
			page: &models.CareerPage{Title: "Other", Slug: "engineering"},
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO career_pages").
					WithArgs("Other", "engineering", "", pgxmock.AnyArg(), "", pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "career_pages_slug_key"})
			},
			wantErr: apperrors.ErrCareerPageSlugTaken,
		},
		{
			name: "duplicate title",
			page: &models.CareerPage{Title: "Engineering", Slug: "eng-2"},
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO career_pages").
					WithArgs("Engineering", "eng-2", "", pgxmock.AnyArg(), "", pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "career_pages_title_key"})
			},
			wantErr: apperrors.ErrCareerPageTitleTaken,
		},
		{
			name: "unknown parent",
			page: &models.CareerPage{Title: "Child", Slug: "child", ParentID: int64Ptr(404)},
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO career_pages").
					WithArgs("Child", "child", "", pgxmock.AnyArg(), "", pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "career_pages_parent_id_fkey"})
			},
			wantErr: apperrors.ErrParentPageNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := newMockPool(t)
			tc.mock(mock)

			created, err := NewCareerPageRepository(mock).Create(context.Background(), tc.page)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, apperrors.Message(tc.wantErr), apperrors.Message(err))
				if apperrors.Is(tc.wantErr, apperrors.ErrConflict) {
					assert.ErrorIs(t, err, apperrors.ErrCareerPageAlreadyExists)
				}
				assert.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), created.ID)
			require.NotNil(t, created.ThumbnailURL)
			assert.Equal(t, "/uploads/career-pages/eng.png", *created.ThumbnailURL)
			assert.True(t, created.IsRoot())
			assert.Equal(t, fixedTime, created.CreatedAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCareerPageRepository_ListAll(t *testing.T) {
	testCases := []struct {
		name   string
		filter CareerPageFilter
		query  string
		args   []any
	}{
		{name: "everything", query: `FROM career_pages ORDER BY id ASC`},
		{name: "roots only", filter: CareerPageFilter{RootsOnly: true}, query: `WHERE parent_id IS NULL ORDER BY id ASC`},
		{name: "children of parent", filter: CareerPageFilter{ParentID: int64Ptr(3)}, query: `WHERE parent_id = \$1`, args: []any{int64(3)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := newMockPool(t)
			expectation := mock.ExpectQuery(tc.query)
			if tc.args != nil {
				expectation = expectation.WithArgs(tc.args...)
			}
			expectation.WillReturnRows(pageRows().
				AddRow(int64(4), "Child", "child", "", nil, "", int64(3), fixedTime))

			pages, err := NewCareerPageRepository(mock).ListAll(context.Background(), tc.filter)
			require.NoError(t, err)
			require.Len(t, pages, 1)
			assert.Equal(t, int64(3), *pages[0].ParentID)
			assert.Nil(t, pages[0].ThumbnailURL)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCareerPageRepository_GetBySlug(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery("FROM career_pages WHERE slug").WithArgs("missing").WillReturnRows(pageRows())

	_, err := NewCareerPageRepository(mock).GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrCareerPageNotFound)
}

func TestCareerPageRepository_ListChildren(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery("FROM career_pages WHERE slug").WithArgs("engineering").
		WillReturnRows(pageRows().AddRow(int64(1), "Engineering", "engineering", "", nil, "", nil, fixedTime))
	mock.ExpectQuery(`WHERE parent_id = \$1 ORDER BY id ASC`).WithArgs(int64(1)).
		WillReturnRows(pageRows().
			AddRow(int64(2), "Civil", "civil", "", nil, "R", int64(1), fixedTime).
			AddRow(int64(3), "Software", "software", "", nil, "I", int64(1), fixedTime))

	children, err := NewCareerPageRepository(mock).ListChildren(context.Background(), "engineering")
	require.NoError(t, err)
	assert.Len(t, children, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareerPageRepository_Update(t *testing.T) {
	expectLock := func(mock pgxmock.PgxPoolIface) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM career_pages WHERE slug = \$1 FOR UPDATE`).WithArgs("software").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	}

	testCases := []struct {
		name    string
		update  CareerPageUpdate
		mock    func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "rename, reparent and replace thumbnail",
			update: CareerPageUpdate{Title: "Software", Content: "c", RiasecTags: "I,C", ParentID: int64Ptr(1),
				NewSlug: "software-eng", ThumbnailURL: strPtr("/uploads/career-pages/new.png")},
			mock: func(mock pgxmock.PgxPoolIface) {
				expectLock(mock)
				mock.ExpectQuery("WITH RECURSIVE descendants").WithArgs(int64(5), int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(`UPDATE career_pages SET title = \$1, content = \$2, riasec_tags = \$3, parent_id = \$4, slug = \$5, thumbnail_url = \$6 WHERE id = \$7`).
					WithArgs("Software", "c", "I,C", pgxmock.AnyArg(), "software-eng", "/uploads/career-pages/new.png", int64(5)).
					WillReturnRows(pageRows().AddRow(int64(5), "Software", "software-eng", "c",
						"/uploads/career-pages/new.png", "I,C", int64(1), fixedTime))
				mock.ExpectCommit()
			},
		},
		{
			name:   "detach keeps slug and thumbnail",
			update: CareerPageUpdate{Title: "Software"},
			mock: func(mock pgxmock.PgxPoolIface) {
				expectLock(mock)
				mock.ExpectQuery(`UPDATE career_pages SET title = \$1, content = \$2, riasec_tags = \$3, parent_id = \$4 WHERE id = \$5`).
					WithArgs("Software", "", "", pgxmock.AnyArg(), int64(5)).
					WillReturnRows(pageRows().AddRow(int64(5), "Software", "software", "",
						"/uploads/career-pages/old.png", "", nil, fixedTime))
				mock.ExpectCommit()
			},
		},
		{
			name:   "page as its own parent",
			update: CareerPageUpdate{Title: "Software", ParentID: int64Ptr(5)},
			mock: func(mock pgxmock.PgxPoolIface) {
				expectLock(mock)
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrParentPageCycle,
		},
		{
			name:   "descendant as parent",
			update: CareerPageUpdate{Title: "Software", ParentID: int64Ptr(8)},
			mock: func(mock pgxmock.PgxPoolIface) {
				expectLock(mock)
				mock.ExpectQuery("WITH RECURSIVE descendants").WithArgs(int64(5), int64(8)).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrParentPageCycle,
		},
		{
			name:   "missing page",
			update: CareerPageUpdate{Title: "Software"},
			mock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM career_pages WHERE slug").WithArgs("software").
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrCareerPageNotFound,
		},
		{
			name:   "new slug collides",
			update: CareerPageUpdate{Title: "Software", NewSlug: "engineering"},
			mock: func(mock pgxmock.PgxPoolIface) {
				expectLock(mock)
				mock.ExpectQuery("UPDATE career_pages").
					WithArgs("Software", "", "", pgxmock.AnyArg(), "engineering", int64(5)).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "career_pages_slug_key"})
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrCareerPageSlugTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := newMockPool(t)
			tc.mock(mock)

			updated, err := NewCareerPageRepository(mock).Update(context.Background(), "software", tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(5), updated.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCareerPageRepository_Delete(t *testing.T) {
	t.Run("returns deleted page", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("DELETE FROM career_pages WHERE slug").WithArgs("civil").
			WillReturnRows(pageRows().AddRow(int64(2), "Civil", "civil", "", "/uploads/career-pages/c.png", "R", int64(1), fixedTime))

		deleted, err := NewCareerPageRepository(mock).Delete(context.Background(), "civil")
		require.NoError(t, err)
		assert.Equal(t, "/uploads/career-pages/c.png", *deleted.ThumbnailURL)
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("DELETE FROM career_pages").WithArgs("civil").WillReturnRows(pageRows())

		_, err := NewCareerPageRepository(mock).Delete(context.Background(), "civil")
		assert.ErrorIs(t, err, apperrors.ErrCareerPageNotFound)
	})
}

func TestCareerPageRepository_ThumbnailInUse(t *testing.T) {
	testCases := []struct {
		name  string
		inUse bool
	}{
		{name: "shared", inUse: true},
		{name: "unused", inUse: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := newMockPool(t)
			mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM career_pages WHERE thumbnail_url = \$1\)`).
				WithArgs("/uploads/career-pages/logo.png").
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tc.inUse))

			inUse, err := NewCareerPageRepository(mock).ThumbnailInUse(context.Background(), "/uploads/career-pages/logo.png")
			require.NoError(t, err)
			assert.Equal(t, tc.inUse, inUse)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
