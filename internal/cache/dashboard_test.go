package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/config"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

func TestBuildDashboardKey(t *testing.T) {
	def := domain.DefaultFilters()
	assert.Equal(t, "dashboard:tab:market:default", buildDashboardKey(domain.TabMarket, def))
	assert.Equal(t, "dashboard:tab:market:default", buildDashboardKey(domain.TabMarket, domain.FilterSelection{}))

	north := def.With(domain.FilterRegion, "north")
	key := buildDashboardKey(domain.TabMarket, north)
	assert.True(t, strings.HasPrefix(key, "dashboard:tab:market:"))
	assert.Len(t, strings.TrimPrefix(key, "dashboard:tab:market:"), 40)
	assert.Equal(t, key, buildDashboardKey(domain.TabMarket, north), "keys must be stable")

	assert.NotEqual(t, key, buildDashboardKey(domain.TabLogistics, north))
	assert.NotEqual(t, key, buildDashboardKey(domain.TabMarket, def.With(domain.FilterRegion, "North")))
}

func TestBuildDashboardKeyIsUniquePerSelection(t *testing.T) {
	seen := make(map[string]domain.FilterSelection)
	for _, f := range domain.AllFilterSelections() {
		key := buildDashboardKey(domain.TabDemandSupply, f)
		prev, dup := seen[key]
		require.False(t, dup, "%+v collides with %+v", f, prev)
		seen[key] = f
	}
}

func TestNoopDashboardCache(t *testing.T) {
	c, err := NewDashboardCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.SetTab(ctx, &domain.TabDashboard{Tab: domain.TabMarket}))

	got, ok, err := c.GetTab(ctx, domain.TabMarket, domain.DefaultFilters())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.InvalidateAll(ctx))
	assert.NoError(t, c.Close())
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(config.CacheConfig{RedisPassword: "secret", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = redisOptions(config.CacheConfig{RedisURL: "redis://cache.internal:6380/3"})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, 3, opts.DB)

	_, err = redisOptions(config.CacheConfig{RedisURL: "http://nope"})
	assert.Error(t, err)
}

func TestDashboardTTL(t *testing.T) {
	assert.Equal(t, defaultDashboardTTL, dashboardTTL(config.CacheConfig{}))
	assert.Equal(t, defaultDashboardTTL, dashboardTTL(config.CacheConfig{DashboardTTLSeconds: -5}))
	assert.Equal(t, 90*time.Second, dashboardTTL(config.CacheConfig{DashboardTTLSeconds: 90}))
}
