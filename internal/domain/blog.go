package domain

import "time"

// Blog is a published article. Images are stored as URLs.
type Blog struct {
	ID               string    `json:"_id"              db:"id"`
	Title            string    `json:"title"            db:"title"`
	Slug             string    `json:"slug"             db:"slug"`
	Content          string    `json:"content"          db:"content"`
	Excerpt          string    `json:"excerpt"          db:"excerpt"`
	Author           string    `json:"author"           db:"author"`
	Category         string    `json:"category"         db:"category"`
	Tags             []string  `json:"tags"             db:"-"`
	CoverImage       string    `json:"coverImage"       db:"cover_image"`
	ContentImage     string    `json:"contentImage"     db:"content_image"`
	AdditionalImages []string  `json:"additionalImages" db:"-"`
	Published        bool      `json:"published"        db:"published"`
	CreatedAt        time.Time `json:"createdAt"        db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt"        db:"updated_at"`
}

// BlogPatch carries optional updates for a blog.
type BlogPatch struct {
	Title            *string   `json:"title"`
	Slug             *string   `json:"slug"`
	Content          *string   `json:"content"`
	Excerpt          *string   `json:"excerpt"`
	Author           *string   `json:"author"`
	Category         *string   `json:"category"`
	Tags             *[]string `json:"tags"`
	CoverImage       *string   `json:"coverImage"`
	ContentImage     *string   `json:"contentImage"`
	AdditionalImages *[]string `json:"additionalImages"`
	Published        *bool     `json:"published"`
}
