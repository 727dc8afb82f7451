package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

type AgentStore interface {
	UpsertAgentBySlug(ctx context.Context, a *domain.Agent) (*domain.Agent, error)
	CreateAgent(ctx context.Context, a *domain.Agent) (*domain.Agent, error)
	GetAgent(ctx context.Context, id string) (*domain.Agent, error)
	FindAgentByEmail(ctx context.Context, email string) (*domain.Agent, error)
	ListAgents(ctx context.Context, f domain.AgentFilter) ([]domain.Agent, int, error)
	UpdateAgent(ctx context.Context, a *domain.Agent) (*domain.Agent, error)
	DeleteAgent(ctx context.Context, id string) error
	FindMarketAgent(ctx context.Context, region, city string) (*domain.Agent, error)
}

type LeadStore interface {
	CreateLead(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	LeadExists(ctx context.Context, email, formType string) (bool, error)
	GetLead(ctx context.Context, id string) (*domain.Lead, error)
	ListLeads(ctx context.Context, since *time.Time) ([]domain.Lead, error)
	ListLeadsByFormTypes(ctx context.Context, formTypes []string) ([]domain.Lead, error)
	UpdateLead(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	DeleteLead(ctx context.Context, id string) (*domain.Lead, error)
}

type AdminStore interface {
	CreateAdmin(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	CountAdmins(ctx context.Context) (int, error)
	AdminExists(ctx context.Context, email, phone string) (bool, error)
	GetAdmin(ctx context.Context, id string) (*domain.Admin, error)
	GetAdminByPhone(ctx context.Context, phone string) (*domain.Admin, error)
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	UpdateAdmin(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	UpdateAdminPassword(ctx context.Context, id, hash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	DeleteAdmin(ctx context.Context, id string) error
}

type BlogStore interface {
	CreateBlog(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	GetBlog(ctx context.Context, id string) (*domain.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	ListBlogs(ctx context.Context) ([]domain.Blog, error)
	UpdateBlog(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

type TeamStore interface {
	CreateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error
}

type LeadPublisher interface {
	PublishLead(ctx context.Context, lead *domain.Lead) error
}
