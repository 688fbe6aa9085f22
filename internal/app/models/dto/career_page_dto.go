package dto

import "mime/multipart"

// CreateCareerPageForm is the multipart form of POST /career-pages/upload
type CreateCareerPageForm struct {
	Title      string                `form:"title" binding:"required,max=255"`
	Slug       string                `form:"slug" binding:"required,max=255,slug"`
	Content    string                `form:"content"`
	RiasecTags string                `form:"riasec_tags" binding:"max=255"`
	ParentID   *int64                `form:"parent_id" binding:"omitempty,min=1"`
	Thumbnail  *multipart.FileHeader `form:"thumbnail" swaggerignore:"true"`
}

// UpdateCareerPageForm is the multipart form of PUT /career-pages/{slug}/update
type UpdateCareerPageForm struct {
	Title      string                `form:"title" binding:"required,max=255"`
	Content    string                `form:"content"`
	RiasecTags string                `form:"riasec_tags" binding:"max=255"`
	ParentID   *int64                `form:"parent_id" binding:"omitempty,min=1"`
	NewSlug    string                `form:"new_slug" binding:"omitempty,max=255,slug"`
	Thumbnail  *multipart.FileHeader `form:"thumbnail" swaggerignore:"true"`
}

// ListCareerPagesQuery holds the filters of GET /career-pages
type ListCareerPagesQuery struct {
	ParentID *int64 `form:"parent_id" binding:"omitempty,min=1"`
	Roots    bool   `form:"roots"`
}
