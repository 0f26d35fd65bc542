package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/cache"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/metrics"
)

type DashboardService struct {
	cache cache.DashboardCache
}

func NewDashboardService(cacheImpl cache.DashboardCache) *DashboardService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &DashboardService{cache: cacheImpl}
}

func (s *DashboardService) Filters() domain.FilterOptions {
	return domain.AvailableFilters()
}

// GetTab derives one tab for the applied filters. Cache failures only cost a re-derive.
func (s *DashboardService) GetTab(ctx context.Context, tab domain.Tab, filters domain.FilterSelection) (*domain.TabDashboard, error) {
	filters = filters.Normalize()

	if dashboard, ok, err := s.cache.GetTab(ctx, tab, filters); err == nil && ok {
		return dashboard, nil
	} else if err != nil {
		log.Warn().Err(err).Str("tab", string(tab)).Msg("dashboard: cache get failed")
	}

	dashboard, err := metrics.Dashboard(tab, filters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTab(ctx, dashboard); err != nil {
		log.Warn().Err(err).Str("tab", string(tab)).Msg("dashboard: cache set failed")
	}

	return dashboard, nil
}

// Overview derives every filterable tab for the same selection.
func (s *DashboardService) Overview(ctx context.Context, filters domain.FilterSelection) (*domain.DashboardOverview, error) {
	filters = filters.Normalize()
	tabs := metrics.Tabs()
	results := make([]domain.TabDashboard, len(tabs))

	g, gctx := errgroup.WithContext(ctx)
	for i, tab := range tabs {
		i, tab := i, tab
		g.Go(func() error {
			dashboard, err := s.GetTab(gctx, tab, filters)
			if err != nil {
				return err
			}
			results[i] = *dashboard
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardOverview{Filters: filters, Tabs: results}, nil
}

func (s *DashboardService) ExecutiveSummary() metrics.ExecutiveSummary {
	return metrics.Summary()
}

// ExecutiveAlert moves the alert carousel from current by step ("next",
// "previous" or anything else to stay) and returns the alert it lands on.
func (s *DashboardService) ExecutiveAlert(current int, step string) (int, metrics.CarouselAlert) {
	alerts := metrics.Summary().Alerts
	total := len(alerts)
	if total == 0 {
		return 0, metrics.CarouselAlert{}
	}

	current = ((current % total) + total) % total
	switch step {
	case "next":
		current = metrics.NextAlert(current, total)
	case "previous":
		current = metrics.PreviousAlert(current, total)
	}
	return current, alerts[current]
}

func (s *DashboardService) ExecutiveAnswer(question string) string {
	return metrics.QuickAnswer(question)
}

// InvalidateCache drops every cached tab.
func (s *DashboardService) InvalidateCache(ctx context.Context) error {
	return s.cache.InvalidateAll(ctx)
}
