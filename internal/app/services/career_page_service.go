package services

import (
	"context"
	"strings"

	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/repositories"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/careerguide/backend/internal/pkg/filestorage"
	"github.com/careerguide/backend/internal/pkg/logger"
	"github.com/careerguide/backend/internal/pkg/validation"
)

// ThumbnailDir is the storage subdirectory holding career page thumbnails
const ThumbnailDir = "career-pages"

//go:generate mockgen -source=./career_page_service.go -package=svcmocks -destination=mocks/career_page_service.mock.go

// CareerPageService manages the career page hierarchy and its thumbnails
type CareerPageService interface {
	CreatePage(ctx context.Context, form *dto.CreateCareerPageForm) (*models.CareerPage, error)
	ListPages(ctx context.Context, query *dto.ListCareerPagesQuery) ([]*models.CareerPage, error)
	GetPage(ctx context.Context, slug string) (*models.CareerPage, error)
	ListChildren(ctx context.Context, slug string) ([]*models.CareerPage, error)
	UpdatePage(ctx context.Context, slug string, form *dto.UpdateCareerPageForm) (*models.CareerPage, error)
	DeletePage(ctx context.Context, slug string) error
}

type careerPageServiceImpl struct {
	pageRepo repositories.ICareerPageRepository
	storage  filestorage.FileStorage
}

// NewCareerPageService creates a new CareerPageService
func NewCareerPageService(pageRepo repositories.ICareerPageRepository, storage filestorage.FileStorage) CareerPageService {
	return &careerPageServiceImpl{
		pageRepo: pageRepo,
		storage:  storage,
	}
}

// CreatePage stores the thumbnail under its original file name, then inserts the page
func (s *careerPageServiceImpl) CreatePage(ctx context.Context, form *dto.CreateCareerPageForm) (*models.CareerPage, error) {
	page := &models.CareerPage{
		Title:      form.Title,
		Slug:       form.Slug,
		Content:    form.Content,
		RiasecTags: form.RiasecTags,
		ParentID:   form.ParentID,
	}
	logUnknownRiasecTags(form.Slug, form.RiasecTags)

	if form.Thumbnail != nil {
		url, err := s.storage.SaveFileAs(form.Thumbnail, ThumbnailDir)
		if err != nil {
			if apperrors.Is(err, filestorage.ErrInvalidFilename) {
				return nil, apperrors.NewValidationError("thumbnail has no usable file name")
			}
			return nil, err
		}
		page.ThumbnailURL = &url
	}

	return s.pageRepo.Create(ctx, page)
}

func (s *careerPageServiceImpl) ListPages(ctx context.Context, query *dto.ListCareerPagesQuery) ([]*models.CareerPage, error) {
	return s.pageRepo.ListAll(ctx, repositories.CareerPageFilter{
		ParentID:  query.ParentID,
		RootsOnly: query.Roots,
	})
}

func (s *careerPageServiceImpl) GetPage(ctx context.Context, slug string) (*models.CareerPage, error) {
	return s.pageRepo.GetBySlug(ctx, slug)
}

func (s *careerPageServiceImpl) ListChildren(ctx context.Context, slug string) ([]*models.CareerPage, error) {
	return s.pageRepo.ListChildren(ctx, slug)
}

// UpdatePage overwrites the page. A new thumbnail gets a random file name;
// the previous file is left on disk.
func (s *careerPageServiceImpl) UpdatePage(ctx context.Context, slug string, form *dto.UpdateCareerPageForm) (*models.CareerPage, error) {
	if _, err := s.pageRepo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	}

	update := repositories.CareerPageUpdate{
		Title:      form.Title,
		Content:    form.Content,
		RiasecTags: form.RiasecTags,
		ParentID:   form.ParentID,
		NewSlug:    form.NewSlug,
	}
	logUnknownRiasecTags(slug, form.RiasecTags)

	if form.Thumbnail != nil {
		url, err := s.storage.SaveFileWithPath(form.Thumbnail, ThumbnailDir)
		if err != nil {
			return nil, err
		}
		update.ThumbnailURL = &url
	}

	page, err := s.pageRepo.Update(ctx, slug, update)
	if err != nil {
		if update.ThumbnailURL != nil {
			if delErr := s.storage.DeleteFile(*update.ThumbnailURL); delErr != nil {
				logger.Warn().Err(delErr).Str("url", *update.ThumbnailURL).Msg("Failed to remove unused thumbnail")
			}
		}
		return nil, err
	}
	return page, nil
}

// DeletePage removes the page. Its thumbnail file is removed best-effort once no
// other page references it.
func (s *careerPageServiceImpl) DeletePage(ctx context.Context, slug string) error {
	page, err := s.pageRepo.Delete(ctx, slug)
	if err != nil {
		return err
	}

	if page.ThumbnailURL != nil {
		s.removeUnusedThumbnail(ctx, slug, *page.ThumbnailURL)
	}

	logger.Info().Str("slug", slug).Msg("Career page deleted")
	return nil
}

func (s *careerPageServiceImpl) removeUnusedThumbnail(ctx context.Context, slug, url string) {
	inUse, err := s.pageRepo.ThumbnailInUse(ctx, url)
	if err != nil {
		logger.Warn().Err(err).Str("slug", slug).Str("url", url).Msg("Keeping thumbnail, usage check failed")
		return
	}
	if inUse {
		logger.Debug().Str("slug", slug).Str("url", url).Msg("Thumbnail still used by another page")
		return
	}
	if err := s.storage.DeleteFile(url); err != nil {
		logger.Warn().Err(err).Str("slug", slug).Str("url", url).Msg("Failed to remove thumbnail of deleted page")
	}
}

// unknownRiasecTags returns the comma-separated tags that are not RIASEC codes.
// Tags are free text, so these are only logged.
func unknownRiasecTags(tags string) []string {
	var unknown []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" && !validation.IsRiasecCode(tag) {
			unknown = append(unknown, tag)
		}
	}
	return unknown
}

func logUnknownRiasecTags(slug, tags string) {
	if unknown := unknownRiasecTags(tags); len(unknown) > 0 {
		logger.Debug().Str("slug", slug).Strs("tags", unknown).Msg("Career page has non-RIASEC tags")
	}
}
