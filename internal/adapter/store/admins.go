package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

const adminColumns = `id, first_name, last_name, email, phone_number, password_hash, role, permissions,
	is_active, last_login, created_at, updated_at`

type adminRow struct {
	domain.Admin
	Permissions pq.StringArray `db:"permissions"`
}

func (r *adminRow) toDomain() *domain.Admin {
	a := r.Admin
	a.Permissions = []string(r.Permissions)
	if a.Permissions == nil {
		a.Permissions = []string{}
	}
	return &a
}

// CreateAdmin inserts an account. PasswordHash must already be hashed.
func (s *PostgresStore) CreateAdmin(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	query := `
		INSERT INTO admins (first_name, last_name, email, phone_number, password_hash, role, permissions, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + adminColumns

	var row adminRow
	err := s.db.GetContext(ctx, &row, query,
		a.FirstName, a.LastName, a.Email, a.PhoneNumber, a.PasswordHash, a.Role,
		pq.StringArray(a.Permissions), a.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", mapError(err))
	}
	return row.toDomain(), nil
}

// CountAdmins returns the number of accounts.
func (s *PostgresStore) CountAdmins(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM admins`); err != nil {
		return 0, fmt.Errorf("count admins: %w", mapError(err))
	}
	return n, nil
}

// AdminExists reports whether an account uses this email or phone number.
func (s *PostgresStore) AdminExists(ctx context.Context, email, phone string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE lower(email) = lower($1) OR phone_number = $2)`,
		email, phone)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", mapError(err))
	}
	return exists, nil
}

// GetAdmin retrieves an account by ID.
func (s *PostgresStore) GetAdmin(ctx context.Context, id string) (*domain.Admin, error) {
	return s.getAdmin(ctx, "id = $1", id)
}

// GetAdminByPhone retrieves an account by phone number.
func (s *PostgresStore) GetAdminByPhone(ctx context.Context, phone string) (*domain.Admin, error) {
	return s.getAdmin(ctx, "phone_number = $1", phone)
}

// GetAdminByEmail retrieves an account by email, ignoring case.
func (s *PostgresStore) GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return s.getAdmin(ctx, "lower(email) = lower($1)", email)
}

func (s *PostgresStore) getAdmin(ctx context.Context, cond string, arg interface{}) (*domain.Admin, error) {
	var row adminRow
	if err := s.db.GetContext(ctx, &row, `SELECT `+adminColumns+` FROM admins WHERE `+cond, arg); err != nil {
		return nil, fmt.Errorf("get admin: %w", mapError(err))
	}
	return row.toDomain(), nil
}

// ListAdmins returns all accounts, newest first.
func (s *PostgresStore) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	var rows []adminRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("list admins: %w", mapError(err))
	}
	admins := make([]domain.Admin, 0, len(rows))
	for i := range rows {
		admins = append(admins, *rows[i].toDomain())
	}
	return admins, nil
}

// UpdateAdmin overwrites profile, role, permission and status fields.
func (s *PostgresStore) UpdateAdmin(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	query := `
		UPDATE admins SET
			first_name = $2, last_name = $3, email = $4, phone_number = $5,
			role = $6, permissions = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + adminColumns

	var row adminRow
	err := s.db.GetContext(ctx, &row, query,
		a.ID, a.FirstName, a.LastName, a.Email, a.PhoneNumber, a.Role, pq.StringArray(a.Permissions), a.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("update admin: %w", mapError(err))
	}
	return row.toDomain(), nil
}

// UpdateAdminPassword replaces the stored password hash.
func (s *PostgresStore) UpdateAdminPassword(ctx context.Context, id, hash string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update admin password: %w", mapError(err))
	}
	if err := affectedOne(res); err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	return nil
}

// TouchLastLogin records a successful login.
func (s *PostgresStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE admins SET last_login = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("touch last login: %w", mapError(err))
	}
	return nil
}

// DeleteAdmin removes an account.
func (s *PostgresStore) DeleteAdmin(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", mapError(err))
	}
	if err := affectedOne(res); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}
