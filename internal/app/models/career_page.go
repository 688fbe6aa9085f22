package models

import "time"

// CareerPage is a CMS page; pages form a forest through ParentID
type CareerPage struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Slug         string    `json:"slug" db:"slug"`
	Content      string    `json:"content" db:"content"`
	ThumbnailURL *string   `json:"thumbnail_url" db:"thumbnail_url"`
	RiasecTags   string    `json:"riasec_tags" db:"riasec_tags"` // comma-separated, free text
	ParentID     *int64    `json:"parent_id" db:"parent_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsRoot reports whether the page has no parent
func (p *CareerPage) IsRoot() bool {
	return p.ParentID == nil
}
