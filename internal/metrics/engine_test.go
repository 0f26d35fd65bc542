package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

func TestDeriveStaysWithinBounds(t *testing.T) {
	for _, tab := range Tabs() {
		table, ok := Lookup(tab)
		require.True(t, ok, tab)

		for _, f := range domain.AllFilterSelections() {
			for _, s := range table.KPIs {
				for _, v := range s.Derive(f) {
					assert.True(t, s.Bounds.Contains(v), "%s/%s %+v = %v", tab, s.Name, f, v)
				}
			}
			for _, s := range table.Charts {
				values := s.Derive(f)
				assert.Len(t, values, len(s.Base), "%s/%s", tab, s.Name)
				for _, v := range values {
					assert.True(t, s.Bounds.Contains(v), "%s/%s %+v = %v", tab, s.Name, f, v)
				}
			}
		}
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	f := domain.FilterSelection{
		Region:          domain.RegionEast,
		TimeRange:       domain.TimeRangeThisYear,
		ProductCategory: domain.CategoryYogurt,
		Channel:         domain.ChannelWholesale,
	}

	for _, tab := range Tabs() {
		kpis1, charts1, err := Derive(tab, f)
		require.NoError(t, err)
		kpis2, charts2, err := Derive(tab, f)
		require.NoError(t, err)

		assert.Equal(t, kpis1, kpis2)
		assert.Equal(t, charts1, charts2)
	}
}

func TestDefaultFiltersReturnBaseline(t *testing.T) {
	for _, tab := range Tabs() {
		table, _ := Lookup(tab)
		kpis, charts := table.Derive(domain.DefaultFilters())

		for _, s := range table.KPIs {
			assert.Equal(t, s.baseline()[0], kpis[s.Name], "%s/%s", tab, s.Name)
		}
		for _, s := range table.Charts {
			assert.Equal(t, s.baseline(), charts[s.Name], "%s/%s", tab, s.Name)
		}
	}
}

func TestBaselineOnlyDiffersByRounding(t *testing.T) {
	for _, tab := range Tabs() {
		table, _ := Lookup(tab)
		for _, s := range append(append([]Series(nil), table.KPIs...), table.Charts...) {
			if s.Round {
				continue
			}
			assert.Equal(t, s.Base, s.baseline(), "%s/%s", tab, s.Name)
		}
	}

	table, _ := Lookup(domain.TabDemandSupply)
	for _, s := range table.KPIs {
		if s.Name == "skuWiseSalesVsPlannedProductionVariance" {
			assert.Equal(t, 12.5, s.Base[0])
			assert.Equal(t, []float64{13}, s.baseline())
		}
	}
}

func TestOrderFillRateScenario(t *testing.T) {
	kpis, _, err := Derive(domain.TabDemandSupply, domain.FilterSelection{
		Region:          domain.RegionNorth,
		TimeRange:       domain.TimeRangeLast7Days,
		ProductCategory: domain.CategoryMilk,
		Channel:         domain.ChannelOnline,
	})
	require.NoError(t, err)

	assert.InDelta(t, 90.6, kpis["orderFillRate"], 1e-9)
}

func TestDeriveClampsToUpperBound(t *testing.T) {
	// 96.7 + 1.8 + 2.1 + 1.3 overshoots 99.
	kpis, _, err := Derive(domain.TabDemandSupply, domain.FilterSelection{
		Region:          domain.RegionSouth,
		TimeRange:       domain.TimeRangeThisYear,
		ProductCategory: domain.CategoryMilk,
		Channel:         domain.ChannelRetail,
	})
	require.NoError(t, err)

	assert.Equal(t, 99.0, kpis["orderFillRate"])
}

func TestUnknownFilterValuesAdjustNothing(t *testing.T) {
	unknown := domain.FilterSelection{
		Region:          "central",
		TimeRange:       "last-decade",
		ProductCategory: "paneer",
		Channel:         "vending",
	}

	for _, tab := range Tabs() {
		wantKPIs, wantCharts, err := Derive(tab, domain.DefaultFilters())
		require.NoError(t, err)
		gotKPIs, gotCharts, err := Derive(tab, unknown)
		require.NoError(t, err)

		assert.Equal(t, wantKPIs, gotKPIs, tab)
		assert.Equal(t, wantCharts, gotCharts, tab)
	}
}

func TestDeriveUnknownTab(t *testing.T) {
	_, _, err := Derive(domain.TabExecutiveSummary, domain.DefaultFilters())
	assert.ErrorIs(t, err, ErrUnknownTab)

	_, err = Dashboard("finance", domain.DefaultFilters())
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestVarianceIsRoundedHalfUp(t *testing.T) {
	tests := []struct {
		region domain.Region
		want   float64
	}{
		{domain.RegionAll, 13},   // 12.5
		{domain.RegionNorth, 15}, // 15.3
		{domain.RegionEast, 19},  // 18.7
	}

	for _, tt := range tests {
		f := domain.DefaultFilters()
		f.Region = tt.region
		kpis, _, err := Derive(domain.TabDemandSupply, f)
		require.NoError(t, err)
		assert.Equal(t, tt.want, kpis["skuWiseSalesVsPlannedProductionVariance"], tt.region)
	}
}

func TestColdChainGridFlags(t *testing.T) {
	_, charts, err := Derive(domain.TabLogistics, domain.FilterSelection{
		Region:          domain.RegionNorth,
		TimeRange:       domain.TimeRangeLast7Days,
		ProductCategory: domain.CategoryMilk,
		Channel:         domain.ChannelRetail,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 1, 0, 1, 1, 1, 0}, charts["coldChainGrid"])
}

func TestLeadTimeDistributionBumps(t *testing.T) {
	_, charts, err := Derive(domain.TabLogistics, domain.FilterSelection{
		Region:          domain.RegionAll,
		TimeRange:       domain.TimeRangeLast7Days,
		ProductCategory: domain.CategoryCheese,
		Channel:         domain.ChannelOnline,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 17, 15, 8, 3}, charts["leadTimeDist"])
}

func TestMarketRegionShiftsAreAdditive(t *testing.T) {
	f := domain.DefaultFilters()
	f.Region = domain.RegionNorth

	_, charts, err := Derive(domain.TabMarket, f)
	require.NoError(t, err)

	assert.Equal(t, 130.0, charts["demandSpike"][0])
	assert.InDelta(t, 5.4, charts["responseTime"][0], 1e-9)
}

func TestDashboardCarriesLabels(t *testing.T) {
	d, err := Dashboard(domain.TabProduction, domain.DefaultFilters())
	require.NoError(t, err)

	assert.Equal(t, domain.TabProduction, d.Tab)
	assert.Len(t, d.KPIs, 5)
	assert.Len(t, d.Labels["inventoryTrend"], 30)
	assert.Equal(t, "30", d.Labels["inventoryTrend"][29])
}

func TestSeriesDeriveDoesNotAliasTables(t *testing.T) {
	table, _ := Lookup(domain.TabDemandSupply)
	values := table.Charts[0].Derive(domain.DefaultFilters())
	values[0] = -1

	assert.Equal(t, 94.2, table.Charts[0].Base[0])

	f := domain.DefaultFilters()
	f.Region = domain.RegionNorth
	values = table.Charts[0].Derive(f)
	values[0] = -1
	assert.Equal(t, 91.8, table.Charts[0].Regions[domain.RegionNorth][0])
}

func TestDashboardCarriesBounds(t *testing.T) {
	d, err := Dashboard(domain.TabDemandSupply, domain.DefaultFilters())
	require.NoError(t, err)

	assert.Equal(t, domain.Range{Min: 75, Max: 99}, d.Bounds["orderFillRate"])
	assert.Equal(t, domain.Range{Min: -50, Max: 50}, d.Bounds["chart:salesVsProd"])
	for name, v := range d.KPIs {
		assert.True(t, d.Bounds[name].Contains(v), name)
	}
}
