package domain

// Tab identifies one dashboard view with its own KPI set and baseline table.
type Tab string

const (
	TabDemandSupply     Tab = "demand-supply"
	TabLogistics        Tab = "logistics"
	TabProduction       Tab = "production"
	TabMarket           Tab = "market"
	TabExecutiveSummary Tab = "executive-summary"
)

// KpiValueSet maps a KPI name (e.g. orderFillRate) to its derived scalar.
type KpiValueSet map[string]float64

// ChartSeriesSet maps a series name to its ordered points.
type ChartSeriesSet map[string][]float64

// Range is the closed interval a KPI or series point is clamped into.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// TabDashboard is what a tab renders for one applied filter selection.
type TabDashboard struct {
	Tab     Tab                 `json:"tab"`
	Filters FilterSelection     `json:"filters"`
	KPIs    KpiValueSet         `json:"kpis"`
	Charts  ChartSeriesSet      `json:"charts"`
	Labels  map[string][]string `json:"labels,omitempty"`
	// Bounds holds each KPI's range; chart series are keyed "chart:<name>".
	Bounds map[string]Range `json:"bounds,omitempty"`
}

// DashboardOverview bundles every filterable tab for the same selection.
type DashboardOverview struct {
	Filters FilterSelection `json:"filters"`
	Tabs    []TabDashboard  `json:"tabs"`
}
