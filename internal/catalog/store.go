package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

// Store holds the loaded catalog. It is written once at startup and read by
// every assistant reply.
type Store struct {
	mu       sync.RWMutex
	kpis     []domain.KPI
	source   string
	loadedAt time.Time
}

func NewStore(kpis []domain.KPI) *Store {
	return &Store{kpis: kpis, loadedAt: time.Now()}
}

// Open loads the catalog at location. A failed load is logged and yields an
// empty store; it is not retried.
func Open(ctx context.Context, loader *Loader, location string) *Store {
	s := &Store{source: location}

	kpis, err := loader.Load(ctx, location)
	if err != nil {
		log.Error().Stack().Err(err).Str("location", location).Msg("Failed to load KPI catalog, continuing with an empty catalog")
		return s
	}

	s.kpis = kpis
	s.loadedAt = time.Now()
	log.Info().Str("location", location).Int("kpis", len(kpis)).Msg("KPI catalog loaded")

	return s
}

// KPIs returns a copy of the catalog entries.
func (s *Store) KPIs() []domain.KPI {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.KPI(nil), s.kpis...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.kpis)
}

// Sections lists the distinct sections in catalog order.
func (s *Store) Sections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var sections []string
	for _, k := range s.kpis {
		if k.Section == "" || seen[k.Section] {
			continue
		}
		seen[k.Section] = true
		sections = append(sections, k.Section)
	}
	return sections
}

func (s *Store) Source() string { return s.source }

// LoadedAt is zero when the catalog failed to load.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
