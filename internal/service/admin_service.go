package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// AdminService manages other accounts. Every operation requires the caller
// to hold the admin role.
type AdminService struct {
	store AdminStore
}

// NewAdminService creates an admin management service.
func NewAdminService(store AdminStore) *AdminService {
	return &AdminService{store: store}
}

func requireAdmin(actor *domain.AdminContext, msg string) error {
	if !actor.IsAdmin() {
		return port.Errorf(port.ErrForbidden, "%s", msg)
	}
	return nil
}

// List returns every account.
func (s *AdminService) List(ctx context.Context, actor *domain.AdminContext) ([]domain.Admin, error) {
	if err := requireAdmin(actor, "Only admin can view all users."); err != nil {
		return nil, err
	}
	return s.store.ListAdmins(ctx)
}

// Update applies patch to another account.
func (s *AdminService) Update(ctx context.Context, actor *domain.AdminContext, id string, patch domain.AdminPatch) (*domain.Admin, error) {
	if err := requireAdmin(actor, "Only admin can update users."); err != nil {
		return nil, err
	}
	a, err := s.store.GetAdmin(ctx, id)
	if err != nil {
		return nil, notFound(err, "User not found.")
	}

	if patch.FirstName != nil && *patch.FirstName != "" {
		a.FirstName = *patch.FirstName
	}
	if patch.LastName != nil && *patch.LastName != "" {
		a.LastName = *patch.LastName
	}
	if patch.Email != nil && *patch.Email != "" {
		a.Email = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.PhoneNumber != nil && *patch.PhoneNumber != "" {
		a.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Role != nil && *patch.Role != "" {
		if !domain.ValidRole(*patch.Role) {
			return nil, port.Invalid("role", "Invalid role.")
		}
		a.Role = *patch.Role
	}
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}

	updated, err := s.store.UpdateAdmin(ctx, a)
	if err != nil {
		return nil, conflict(notFound(err, "User not found."), "Email or phone number is already in use")
	}
	slog.Info("admin account updated", "admin_id", id, "by", actor.AdminID)
	return updated, nil
}

// Delete removes another account.
func (s *AdminService) Delete(ctx context.Context, actor *domain.AdminContext, id string) error {
	if err := requireAdmin(actor, "Only admin can delete users."); err != nil {
		return err
	}
	if err := s.store.DeleteAdmin(ctx, id); err != nil {
		return notFound(err, "User not found.")
	}
	slog.Info("admin account deleted", "admin_id", id, "by", actor.AdminID)
	return nil
}

// SetRole changes an account's role and, when permissions is non-nil, its
// permission list.
func (s *AdminService) SetRole(ctx context.Context, actor *domain.AdminContext, userID, role string, permissions []string) (*domain.Admin, error) {
	if err := requireAdmin(actor, "Only admin can update roles and permissions."); err != nil {
		return nil, err
	}
	if userID == "" || role == "" {
		return nil, port.Invalid("", "userId and role are required.")
	}
	if !domain.ValidRole(role) {
		return nil, port.Invalid("role", "Invalid role.")
	}

	a, err := s.store.GetAdmin(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found.")
	}
	a.Role = role
	if permissions != nil {
		a.Permissions = permissions
	}

	updated, err := s.store.UpdateAdmin(ctx, a)
	if err != nil {
		return nil, notFound(err, "User not found.")
	}
	slog.Info("admin role changed", "admin_id", userID, "role", role, "by", actor.AdminID)
	return updated, nil
}
