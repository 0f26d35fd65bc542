// Package metrics derives the KPI tiles and chart series of each dashboard tab
// from the applied filter selection.
//
// Every tab is a Table of Series. A series starts from its baseline, swaps in a
// regional snapshot when a region is selected, then adds the time range,
// product category and channel adjustments in that order, and is finally
// clamped into its range. Values a table does not know about adjust nothing.
package metrics

import (
	"errors"
	"math"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

var ErrUnknownTab = errors.New("unknown dashboard tab")

// Shift is one filter value's adjustment of a series.
type Shift struct {
	// Delta is added to every point.
	Delta float64
	// Points adds to individual indices on top of Delta.
	Points map[int]float64
	// Flag forces the matching indices to 1 (used by status grids).
	Flag func(i int) bool
}

func (s Shift) apply(values []float64) {
	for i := range values {
		values[i] += s.Delta
		if d, ok := s.Points[i]; ok {
			values[i] += d
		}
		if s.Flag != nil && s.Flag(i) {
			values[i] = 1
		}
	}
}

// Adjustments holds the additive shifts keyed by each non-region filter.
type Adjustments struct {
	TimeRanges map[domain.TimeRange]Shift
	Categories map[domain.ProductCategory]Shift
	Channels   map[domain.Channel]Shift
}

// Series is a KPI (one point) or chart series with its derivation table.
type Series struct {
	Name   string
	Labels []string
	Bounds domain.Range
	// Round rounds half up after clamping.
	Round bool
	Base  []float64
	// Regions replaces the baseline snapshot for a selected region.
	Regions map[domain.Region][]float64
	// RegionShifts adjusts the baseline instead of replacing it.
	RegionShifts map[domain.Region]Shift
	Adjustments
}

// Derive runs the series table against the filters. The result is a fresh slice.
func (s Series) Derive(f domain.FilterSelection) []float64 {
	values := append([]float64(nil), s.Base...)

	if f.Region != domain.RegionAll {
		if snapshot, ok := s.Regions[f.Region]; ok {
			values = append(values[:0], snapshot...)
		}
		if shift, ok := s.RegionShifts[f.Region]; ok {
			shift.apply(values)
		}
	}

	if shift, ok := s.TimeRanges[f.TimeRange]; ok {
		shift.apply(values)
	}

	if f.ProductCategory != domain.CategoryAll {
		if shift, ok := s.Categories[f.ProductCategory]; ok {
			shift.apply(values)
		}
	}

	if shift, ok := s.Channels[f.Channel]; ok {
		shift.apply(values)
	}

	return s.finish(values)
}

// baseline is what the series displays at the default filters.
func (s Series) baseline() []float64 {
	return s.finish(append([]float64(nil), s.Base...))
}

// finish clamps values in place and rounds them when the series is rounded.
func (s Series) finish(values []float64) []float64 {
	for i, v := range values {
		v = clamp(v, s.Bounds)
		if s.Round {
			v = math.Floor(v + 0.5)
		}
		values[i] = v
	}
	return values
}

// Table is the derivation table of one tab.
type Table struct {
	Tab    domain.Tab
	KPIs   []Series
	Charts []Series
}

// Derive produces the KPI values and chart series for a filter selection.
func (t *Table) Derive(f domain.FilterSelection) (domain.KpiValueSet, domain.ChartSeriesSet) {
	kpis := make(domain.KpiValueSet, len(t.KPIs))
	for _, s := range t.KPIs {
		values := s.Derive(f)
		if len(values) > 0 {
			kpis[s.Name] = values[0]
		}
	}

	charts := make(domain.ChartSeriesSet, len(t.Charts))
	for _, s := range t.Charts {
		charts[s.Name] = s.Derive(f)
	}

	return kpis, charts
}

// Labels returns the axis labels of every chart series that has them.
func (t *Table) Labels() map[string][]string {
	labels := make(map[string][]string)
	for _, s := range t.Charts {
		if len(s.Labels) > 0 {
			labels[s.Name] = append([]string(nil), s.Labels...)
		}
	}
	return labels
}

// Bounds returns the documented range of every KPI and chart series, keyed by name.
// KPI and chart names may overlap; chart entries are prefixed with "chart:".
func (t *Table) Bounds() map[string]domain.Range {
	out := make(map[string]domain.Range, len(t.KPIs)+len(t.Charts))
	for _, s := range t.KPIs {
		out[s.Name] = s.Bounds
	}
	for _, s := range t.Charts {
		out["chart:"+s.Name] = s.Bounds
	}
	return out
}

var tables = map[domain.Tab]*Table{
	domain.TabDemandSupply: demandSupplyTable,
	domain.TabLogistics:    logisticsTable,
	domain.TabProduction:   productionTable,
	domain.TabMarket:       marketTable,
}

// Tabs lists the filterable tabs in display order.
func Tabs() []domain.Tab {
	return []domain.Tab{
		domain.TabDemandSupply,
		domain.TabProduction,
		domain.TabLogistics,
		domain.TabMarket,
	}
}

// Lookup returns the derivation table of a tab.
func Lookup(tab domain.Tab) (*Table, bool) {
	t, ok := tables[tab]
	return t, ok
}

// Derive is the entry point used by the dashboard: it runs the tab's table against f.
func Derive(tab domain.Tab, f domain.FilterSelection) (domain.KpiValueSet, domain.ChartSeriesSet, error) {
	t, ok := tables[tab]
	if !ok {
		return nil, nil, ErrUnknownTab
	}
	kpis, charts := t.Derive(f)
	return kpis, charts, nil
}

// Dashboard derives a tab into the shape served to clients.
func Dashboard(tab domain.Tab, f domain.FilterSelection) (*domain.TabDashboard, error) {
	t, ok := tables[tab]
	if !ok {
		return nil, ErrUnknownTab
	}
	kpis, charts := t.Derive(f)
	return &domain.TabDashboard{
		Tab:     tab,
		Filters: f,
		KPIs:    kpis,
		Charts:  charts,
		Labels:  t.Labels(),
		Bounds:  t.Bounds(),
	}, nil
}

func clamp(v float64, r domain.Range) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}
