package service

import (
	"context"
	"strings"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// BlogService manages blog posts.
type BlogService struct {
	store BlogStore
}

// NewBlogService creates a blog service.
func NewBlogService(store BlogStore) *BlogService {
	return &BlogService{store: store}
}

// Create stores a blog, deriving the slug from the title when none is given.
func (s *BlogService) Create(ctx context.Context, b domain.Blog) (*domain.Blog, error) {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return nil, port.Invalid("title", "Title is required")
	}
	b.Slug = slugify(b.Slug)
	if b.Slug == "" {
		b.Slug = slugify(b.Title)
	}
	if b.Slug == "" {
		return nil, port.Invalid("slug", "Title must contain letters or digits")
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.AdditionalImages == nil {
		b.AdditionalImages = []string{}
	}

	created, err := s.store.CreateBlog(ctx, &b)
	if err != nil {
		return nil, conflict(err, "A blog with this slug already exists")
	}
	return created, nil
}

// List returns all blogs.
func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	return s.store.ListBlogs(ctx)
}

// Get returns a blog by ID.
func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	b, err := s.store.GetBlog(ctx, id)
	if err != nil {
		return nil, notFound(err, "Blog not found")
	}
	return b, nil
}

// GetBySlug returns a blog by slug.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	b, err := s.store.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "Blog not found")
	}
	return b, nil
}

// Update applies patch to the blog with id.
func (s *BlogService) Update(ctx context.Context, id string, patch domain.BlogPatch) (*domain.Blog, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, b, patch)
}

// UpdateBySlug applies patch to the blog with slug.
func (s *BlogService) UpdateBySlug(ctx context.Context, slug string, patch domain.BlogPatch) (*domain.Blog, error) {
	b, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, b, patch)
}

func (s *BlogService) apply(ctx context.Context, b *domain.Blog, patch domain.BlogPatch) (*domain.Blog, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		b.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Slug != nil && slugify(*patch.Slug) != "" {
		b.Slug = slugify(*patch.Slug)
	}
	setString(&b.Content, patch.Content)
	setString(&b.Excerpt, patch.Excerpt)
	setString(&b.Author, patch.Author)
	setString(&b.Category, patch.Category)
	setString(&b.CoverImage, patch.CoverImage)
	setString(&b.ContentImage, patch.ContentImage)
	if patch.Tags != nil {
		b.Tags = *patch.Tags
	}
	if patch.AdditionalImages != nil {
		b.AdditionalImages = *patch.AdditionalImages
	}
	if patch.Published != nil {
		b.Published = *patch.Published
	}

	updated, err := s.store.UpdateBlog(ctx, b)
	if err != nil {
		return nil, conflict(notFound(err, "Blog not found"), "A blog with this slug already exists")
	}
	return updated, nil
}

// Delete removes the blog with id.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteBlog(ctx, id); err != nil {
		return notFound(err, "Blog not found")
	}
	return nil
}

// DeleteBySlug removes the blog with slug.
func (s *BlogService) DeleteBySlug(ctx context.Context, slug string) error {
	b, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return s.Delete(ctx, b.ID)
}

// TeamService manages team member profiles.
type TeamService struct {
	store TeamStore
}

// NewTeamService creates a team service.
func NewTeamService(store TeamStore) *TeamService {
	return &TeamService{store: store}
}

// Create stores a member. Name, position, email and phone are required.
func (s *TeamService) Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Position = strings.TrimSpace(m.Position)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Phone = strings.TrimSpace(m.Phone)
	if m.Name == "" || m.Position == "" || m.Email == "" || m.Phone == "" {
		return nil, port.Invalid("", "Name, position, email and phone are required")
	}
	if m.Department == "" {
		m.Department = domain.DefaultDepartment
	}
	m.IsActive = true

	created, err := s.store.CreateTeamMember(ctx, &m)
	if err != nil {
		return nil, conflict(err, "A team member with this email already exists")
	}
	return created, nil
}

// List returns all members.
func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.store.ListTeamMembers(ctx)
}

// Get returns one member.
func (s *TeamService) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	m, err := s.store.GetTeamMember(ctx, id)
	if err != nil {
		return nil, notFound(err, "Team member not found")
	}
	return m, nil
}

// Update applies patch to a member.
func (s *TeamService) Update(ctx context.Context, id string, patch domain.TeamPatch) (*domain.TeamMember, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&m.Name, patch.Name)
	setString(&m.Position, patch.Position)
	setString(&m.Email, patch.Email)
	setString(&m.Phone, patch.Phone)
	setString(&m.ProfileImage, patch.ProfileImage)
	setString(&m.Department, patch.Department)
	setString(&m.Bio, patch.Bio)
	setString(&m.LinkedIn, patch.LinkedIn)
	setString(&m.Twitter, patch.Twitter)
	setString(&m.Facebook, patch.Facebook)
	if patch.IsActive != nil {
		m.IsActive = *patch.IsActive
	}
	if m.Department == "" {
		m.Department = domain.DefaultDepartment
	}
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))

	updated, err := s.store.UpdateTeamMember(ctx, m)
	if err != nil {
		return nil, conflict(notFound(err, "Team member not found"), "A team member with this email already exists")
	}
	return updated, nil
}

// Delete removes a member.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTeamMember(ctx, id); err != nil {
		return notFound(err, "Team member not found")
	}
	return nil
}
