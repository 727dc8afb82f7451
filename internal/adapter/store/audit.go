package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// WriteAudit implements middleware.AuditWriter.
func (s *PostgresStore) WriteAudit(adminID, action, resource, resourceID, details, ip, userAgent string) error {
	if details == "" {
		details = "{}"
	} else if !json.Valid([]byte(details)) {
		wrapped, _ := json.Marshal(map[string]string{"raw": details})
		details = string(wrapped)
	}

	query := `INSERT INTO audit_logs (admin_id, action, resource, resource_id, details, ip, user_agent)
	          VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)`
	_, err := s.db.ExecContext(context.Background(), query,
		adminID, action, resource, resourceID, details, ip, userAgent,
	)
	return err
}

// ListAuditLogs returns recent audit logs with optional filters.
func (s *PostgresStore) ListAuditLogs(ctx context.Context, limit int, action string) ([]domain.AuditLog, error) {
	query := `SELECT id, admin_id, action, resource, resource_id, details::text AS details, ip, user_agent, created_at
	          FROM audit_logs`
	args := []interface{}{}
	argIdx := 1

	if action != "" {
		query += fmt.Sprintf(" WHERE action = $%d", argIdx)
		args = append(args, action)
		argIdx++
	}

	query += " ORDER BY created_at DESC, id DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, limit)
	}

	logs := []domain.AuditLog{}
	if err := s.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
