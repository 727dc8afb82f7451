package domain

import "time"

// Agent is a brokerage agent. Agents synced from the partner people feed
// have IsAgent set; agents created from the dashboard do not.
type Agent struct {
	ID           string    `json:"_id"          db:"id"`
	Slug         string    `json:"slug"         db:"slug"`
	KWID         string    `json:"kwId"         db:"kw_id"`
	FullName     string    `json:"fullName"     db:"full_name"`
	LastName     string    `json:"lastName"     db:"last_name"`
	Email        string    `json:"email"        db:"email"`
	Phone        string    `json:"phone"        db:"phone"`
	MarketCenter string    `json:"marketCenter" db:"market_center"`
	City         string    `json:"city"         db:"city"`
	Photo        string    `json:"photo"        db:"photo"`
	Active       bool      `json:"active"       db:"active"`
	IsAgent      bool      `json:"isAgent"      db:"is_agent"`
	CreatedAt    time.Time `json:"createdAt"    db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt"    db:"updated_at"`
}

// Person is one record from the partner people endpoint.
type Person struct {
	KWUID              string `json:"kw_uid"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Photo              string `json:"photo"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	MarketCenterNumber string `json:"market_center_number"`
	City               string `json:"city"`
	Active             *bool  `json:"active"`
	Slug               string `json:"slug"`
}

// IsActive treats a missing active flag as active.
func (p Person) IsActive() bool {
	return p.Active == nil || *p.Active
}

// PeoplePage is one page from the partner people endpoint.
type PeoplePage struct {
	People []Person
	Total  *int
}

// AgentFilter narrows the stored agent list.
type AgentFilter struct {
	Name         string
	MarketCenter string
	City         string
	Offset       int
	Limit        int
}

// AgentPatch carries optional updates for an agent.
type AgentPatch struct {
	FullName     *string `json:"fullName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	MarketCenter *string `json:"marketCenter"`
	Active       *bool   `json:"active"`
}

// SyncStats summarizes one partner people sync.
type SyncStats struct {
	OrgIDs  []string `json:"org_ids"`
	Fetched int      `json:"fetched"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Synced  int      `json:"synced"`
}
