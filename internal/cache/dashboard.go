package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/config"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

const dashboardKeyPrefix = "dashboard:tab"

// DashboardCache stores derived tab dashboards keyed by tab and filter selection.
type DashboardCache interface {
	GetTab(ctx context.Context, tab domain.Tab, filters domain.FilterSelection) (*domain.TabDashboard, bool, error)
	SetTab(ctx context.Context, dashboard *domain.TabDashboard) error
	InvalidateAll(ctx context.Context) error
	Close() error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

// NewDashboardCache returns a redis-backed cache, or a noop cache when caching is disabled.
func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewRedisDashboardCache(client, dashboardTTL(cfg)), nil
}

func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) DashboardCache {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &redisDashboardCache{client: client, ttl: ttl}
}

func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) GetTab(ctx context.Context, tab domain.Tab, filters domain.FilterSelection) (*domain.TabDashboard, bool, error) {
	key := buildDashboardKey(tab, filters)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var dashboard domain.TabDashboard
	if err := json.Unmarshal(payload, &dashboard); err != nil {
		return nil, false, fmt.Errorf("decode dashboard cache: %w", err)
	}

	return &dashboard, true, nil
}

func (c *redisDashboardCache) SetTab(ctx context.Context, dashboard *domain.TabDashboard) error {
	if dashboard == nil {
		return nil
	}

	key := buildDashboardKey(dashboard.Tab, dashboard.Filters)
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("encode dashboard cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisDashboardCache) InvalidateAll(ctx context.Context) error {
	return unlinkPrefix(ctx, c.client, dashboardKeyPrefix)
}

func (c *redisDashboardCache) Close() error {
	return c.client.Close()
}

func (n *noopDashboardCache) GetTab(ctx context.Context, tab domain.Tab, filters domain.FilterSelection) (*domain.TabDashboard, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) SetTab(ctx context.Context, dashboard *domain.TabDashboard) error {
	return nil
}

func (n *noopDashboardCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func (n *noopDashboardCache) Close() error {
	return nil
}

// buildDashboardKey hashes the normalized selection so equal selections share a key.
func buildDashboardKey(tab domain.Tab, filters domain.FilterSelection) string {
	prefix := fmt.Sprintf("%s:%s", dashboardKeyPrefix, tab)

	filters = filters.Normalize()
	if filters.IsDefault() {
		return prefix + ":default"
	}

	parts := []string{
		"region=" + string(filters.Region),
		"time_range=" + string(filters.TimeRange),
		"product_category=" + string(filters.ProductCategory),
		"channel=" + string(filters.Channel),
	}

	raw := strings.Join(parts, "|")
	hash := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}
