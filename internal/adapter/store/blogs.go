package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

const blogColumns = `id, title, slug, content, excerpt, author, category, tags, cover_image, content_image,
	additional_images, published, created_at, updated_at`

type blogRow struct {
	domain.Blog
	Tags             pq.StringArray `db:"tags"`
	AdditionalImages pq.StringArray `db:"additional_images"`
}

func (r *blogRow) toDomain() *domain.Blog {
	b := r.Blog
	b.Tags = nonNil(r.Tags)
	b.AdditionalImages = nonNil(r.AdditionalImages)
	return &b
}

func nonNil(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}

// CreateBlog inserts a blog. The slug must be unique.
func (s *PostgresStore) CreateBlog(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	query := `
		INSERT INTO blogs (title, slug, content, excerpt, author, category, tags, cover_image, content_image,
			additional_images, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + blogColumns

	var row blogRow
	err := s.db.GetContext(ctx, &row, query,
		b.Title, b.Slug, b.Content, b.Excerpt, b.Author, b.Category, pq.StringArray(b.Tags),
		b.CoverImage, b.ContentImage, pq.StringArray(b.AdditionalImages), b.Published,
	)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", mapError(err))
	}
	return row.toDomain(), nil
}

// GetBlog retrieves a blog by ID.
func (s *PostgresStore) GetBlog(ctx context.Context, id string) (*domain.Blog, error) {
	return s.getBlog(ctx, "id", id)
}

// GetBlogBySlug retrieves a blog by slug.
func (s *PostgresStore) GetBlogBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	return s.getBlog(ctx, "slug", slug)
}

func (s *PostgresStore) getBlog(ctx context.Context, column, value string) (*domain.Blog, error) {
	var row blogRow
	err := s.db.GetContext(ctx, &row, `SELECT `+blogColumns+` FROM blogs WHERE `+column+` = $1`, value)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", mapError(err))
	}
	return row.toDomain(), nil
}

// ListBlogs returns all blogs, newest first.
func (s *PostgresStore) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	var rows []blogRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+blogColumns+` FROM blogs ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("list blogs: %w", mapError(err))
	}
	blogs := make([]domain.Blog, 0, len(rows))
	for i := range rows {
		blogs = append(blogs, *rows[i].toDomain())
	}
	return blogs, nil
}

// UpdateBlog overwrites every editable field of the blog with b.ID.
func (s *PostgresStore) UpdateBlog(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	query := `
		UPDATE blogs SET
			title = $2, slug = $3, content = $4, excerpt = $5, author = $6, category = $7, tags = $8,
			cover_image = $9, content_image = $10, additional_images = $11, published = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + blogColumns

	var row blogRow
	err := s.db.GetContext(ctx, &row, query,
		b.ID, b.Title, b.Slug, b.Content, b.Excerpt, b.Author, b.Category, pq.StringArray(b.Tags),
		b.CoverImage, b.ContentImage, pq.StringArray(b.AdditionalImages), b.Published,
	)
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", mapError(err))
	}
	return row.toDomain(), nil
}

// DeleteBlog removes a blog by ID.
func (s *PostgresStore) DeleteBlog(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", mapError(err))
	}
	if err := affectedOne(res); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}
