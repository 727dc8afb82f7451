package domain

import "time"

// AuditLog records every API request and significant admin action.
type AuditLog struct {
	ID         string    `json:"id"          db:"id"`
	AdminID    string    `json:"admin_id"    db:"admin_id"`
	Action     string    `json:"action"      db:"action"`
	Resource   string    `json:"resource"    db:"resource"`
	ResourceID string    `json:"resource_id" db:"resource_id"`
	Details    string    `json:"details"     db:"details"` // JSON blob
	IP         string    `json:"ip"          db:"ip"`
	UserAgent  string    `json:"user_agent"  db:"user_agent"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// Audit action constants.
const (
	AuditActionRequest    = "http_request"
	AuditActionLogin      = "login"
	AuditActionLogout     = "logout"
	AuditActionRegister   = "register"
	AuditActionRoleChange = "role_change"
	AuditActionAgentSync  = "agent_sync"
)
