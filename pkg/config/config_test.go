package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "Basic", cfg.PartnerAuthScheme)
	assert.Equal(t, "50394", cfg.PartnerRegion)
	assert.Equal(t, []string{"50449", "2414288"}, cfg.PartnerOrgIDs)
	assert.Equal(t, 1000, cfg.ListingPageSize)
	assert.Equal(t, 60*time.Second, cfg.ListingCacheTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL())
	assert.Zero(t, cfg.AgentSyncInterval)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PARTNER_ORG_IDS", " 1, 2 ,,3")
	t.Setenv("LISTING_CACHE_TTL_SECONDS", "5")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LISTING_PAGE_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, []string{"1", "2", "3"}, cfg.PartnerOrgIDs)
	assert.Equal(t, 5*time.Second, cfg.ListingCacheTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 1000, cfg.ListingPageSize)
}

func TestEnvOrDefaultList_OnlySeparators(t *testing.T) {
	t.Setenv("FRONTEND_URLS", " , ")
	assert.Equal(t, []string{"x"}, envOrDefaultList("FRONTEND_URLS", []string{"x"}))
}
