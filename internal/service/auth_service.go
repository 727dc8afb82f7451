package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/middleware"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 12

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// AuthService handles admin registration, login and self-service profile changes.
type AuthService struct {
	store  AdminStore
	jwtCfg middleware.JWTConfig
	cost   int
	now    func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(store AdminStore, jwtCfg middleware.JWTConfig) *AuthService {
	return &AuthService{
		store:  store,
		jwtCfg: jwtCfg,
		cost:   BcryptCost,
		now:    time.Now,
	}
}

// TokenTTL is how long issued tokens stay valid.
func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtCfg.ExpiresIn
}

// Register creates an account and returns it with a signed token. The first
// account ever created becomes an admin; later ones start as plain users.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.Admin, string, error) {
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	reg.PhoneNumber = strings.TrimSpace(reg.PhoneNumber)

	if reg.FirstName == "" || reg.LastName == "" || reg.Email == "" || reg.PhoneNumber == "" || reg.Password == "" {
		return nil, "", port.Invalid("", "All fields are required")
	}
	if len(reg.Password) < MinPasswordLength {
		return nil, "", port.Invalid("password", "Password must be at least %d characters long", MinPasswordLength)
	}

	exists, err := s.store.AdminExists(ctx, reg.Email, reg.PhoneNumber)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", port.Errorf(port.ErrConflict, "Admin with this email or phone number already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	role := domain.RoleUser
	n, err := s.store.CountAdmins(ctx)
	if err != nil {
		return nil, "", err
	}
	if n == 0 {
		role = domain.RoleAdmin
	}

	admin, err := s.store.CreateAdmin(ctx, &domain.Admin{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  []string{},
		IsActive:     true,
	})
	if err != nil {
		return nil, "", conflict(err, "Admin with this email or phone number already exists")
	}

	token, err := middleware.GenerateJWT(admin, s.jwtCfg)
	if err != nil {
		return nil, "", fmt.Errorf("generate jwt: %w", err)
	}

	slog.Info("admin registered", "admin_id", admin.ID, "role", admin.Role)
	return admin, token, nil
}

// Login verifies a phone number and password pair.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*domain.Admin, string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, "", port.Invalid("", "Phone number and password are required")
	}

	admin, err := s.store.GetAdminByPhone(ctx, phone)
	if errors.Is(err, port.ErrNotFound) {
		return nil, "", port.Errorf(port.ErrUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", port.Errorf(port.ErrUnauthorized, "Invalid credentials")
	}
	if !admin.IsActive {
		return nil, "", port.Errorf(port.ErrInactive, "Account is deactivated")
	}

	now := s.now()
	if err := s.store.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return nil, "", err
	}
	admin.LastLogin = &now

	token, err := middleware.GenerateJWT(admin, s.jwtCfg)
	if err != nil {
		return nil, "", fmt.Errorf("generate jwt: %w", err)
	}

	slog.Info("admin logged in", "admin_id", admin.ID)
	return admin, token, nil
}

// Profile returns the caller's own account.
func (s *AuthService) Profile(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := s.store.GetAdmin(ctx, id)
	if err != nil {
		return nil, notFound(err, "Admin not found")
	}
	return admin, nil
}

// UpdateProfile changes the caller's name and email. Empty values are ignored.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, patch domain.AdminPatch) (*domain.Admin, error) {
	admin, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil && *patch.FirstName != "" {
		admin.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil && *patch.LastName != "" {
		admin.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Email != nil && *patch.Email != "" {
		admin.Email = strings.ToLower(strings.TrimSpace(*patch.Email))
	}

	updated, err := s.store.UpdateAdmin(ctx, admin)
	if err != nil {
		return nil, conflict(notFound(err, "Admin not found"), "Email is already in use")
	}
	return updated, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, id, current, next string) error {
	if current == "" || next == "" {
		return port.Invalid("", "Current password and new password are required")
	}
	if len(next) < MinPasswordLength {
		return port.Invalid("newPassword", "New password must be at least %d characters long", MinPasswordLength)
	}

	admin, err := s.Profile(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(current)) != nil {
		return port.Invalid("currentPassword", "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return notFound(s.store.UpdateAdminPassword(ctx, id, string(hash)), "Admin not found")
}
