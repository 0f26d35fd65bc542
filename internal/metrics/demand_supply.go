package metrics

import "github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"

var (
	fillRateAdjustments = Adjustments{
		TimeRanges: timed(-1.2, 0.5, 1.8),
		Categories: byCategory(2.1, -0.8, 1.2, -1.5, 0.9),
		Channels:   byChannel(1.3, -0.7, -2.1),
	}
	stockOutAdjustments = Adjustments{
		TimeRanges: timed(0.8, -0.3, -1.2),
		Categories: byCategory(-1.5, 0.9, -0.6, 1.2, -0.4),
		Channels:   byChannel(-0.8, 0.5, 1.8),
	}
	backorderAdjustments = Adjustments{
		TimeRanges: timed(0.3, -0.2, -0.8),
		Categories: byCategory(-0.8, 0.4, -0.3, 0.7, -0.2),
		Channels:   byChannel(-0.4, 0.3, 1.2),
	}
	forecastAdjustments = Adjustments{
		TimeRanges: timed(-2.1, 1.2, 3.5),
		Categories: byCategory(1.8, -0.7, 1.1, -1.3, 0.8),
		Channels:   byChannel(1.5, -0.8, -2.5),
	}
	salesVsProductionAdjustments = Adjustments{
		TimeRanges: timed(1.5, -0.8, -2.1),
		Categories: byCategory(-1.2, 0.8, -0.5, 1.1, -0.3),
		Channels:   byChannel(-0.9, 0.6, 2.3),
	}
)

var (
	fillRateRange          = bounds(75, 99)
	stockOutRange          = bounds(0.5, 8)
	backorderRange         = bounds(0.5, 5)
	forecastRange          = bounds(75, 95)
	salesVsProductionRange = bounds(-50, 50)
)

var demandSupplyTable = &Table{
	Tab: domain.TabDemandSupply,
	KPIs: []Series{
		{
			Name:        "orderFillRate",
			Bounds:      fillRateRange,
			Base:        scalar(94.2),
			Regions:     regional(91.8, 96.7, 89.5, 93.1),
			Adjustments: fillRateAdjustments,
		},
		{
			Name:        "stockOutInstancesPerSku",
			Bounds:      stockOutRange,
			Base:        scalar(3.2),
			Regions:     regional(4.1, 2.1, 5.3, 3.8),
			Adjustments: stockOutAdjustments,
		},
		{
			Name:        "backorderVolume",
			Bounds:      backorderRange,
			Base:        scalar(2.1),
			Regions:     regional(2.8, 1.4, 3.2, 2.5),
			Adjustments: backorderAdjustments,
		},
		{
			Name:        "forecastAccuracy",
			Bounds:      forecastRange,
			Base:        scalar(88.5),
			Regions:     regional(85.2, 92.1, 82.7, 87.9),
			Adjustments: forecastAdjustments,
		},
		{
			Name:        "skuWiseSalesVsPlannedProductionVariance",
			Bounds:      salesVsProductionRange,
			Round:       true,
			Base:        scalar(12.5),
			Regions:     regional(15.3, 8.9, 18.7, 13.4),
			Adjustments: salesVsProductionAdjustments,
		},
	},
	Charts: []Series{
		{
			Name:   "fillRate",
			Labels: weekLabels,
			Bounds: fillRateRange,
			Base:   []float64{94.2, 94.8, 95.1, 95.5},
			Regions: regionalSeries(
				[]float64{91.8, 92.1, 91.5, 91.9},
				[]float64{96.7, 97.1, 96.8, 97.2},
				[]float64{89.5, 89.8, 89.2, 89.6},
				[]float64{93.1, 93.5, 92.9, 93.3},
			),
			Adjustments: fillRateAdjustments,
		},
		{
			Name:   "stockOut",
			Labels: categoryLabels,
			Bounds: stockOutRange,
			Base:   []float64{3.2, 2.8, 3.1, 2.9, 3.0},
			Regions: regionalSeries(
				[]float64{4.1, 3.8, 4.3, 4.0, 4.2},
				[]float64{2.1, 1.8, 2.3, 2.0, 2.2},
				[]float64{5.3, 5.0, 5.5, 5.2, 5.4},
				[]float64{3.8, 3.5, 4.0, 3.7, 3.9},
			),
			Adjustments: stockOutAdjustments,
		},
		{
			Name:   "backorder",
			Labels: monthLabels,
			Bounds: backorderRange,
			Base:   []float64{2.1, 2.3, 2.0, 2.2, 2.1, 2.0},
			Regions: regionalSeries(
				[]float64{2.8, 3.0, 2.7, 2.9, 2.8, 2.7},
				[]float64{1.4, 1.6, 1.3, 1.5, 1.4, 1.3},
				[]float64{3.2, 3.4, 3.1, 3.3, 3.2, 3.1},
				[]float64{2.5, 2.7, 2.4, 2.6, 2.5, 2.4},
			),
			Adjustments: backorderAdjustments,
		},
		{
			Name:   "salesVsProd",
			Labels: []string{"Planned", "Material Cost", "Labor Variance", "Overhead", "Quality Issues", "Actual"},
			Bounds: salesVsProductionRange,
			Base:   []float64{12.5, -1.2, -0.8, -0.5, -1.1, 11.8},
			Regions: regionalSeries(
				[]float64{15.3, -0.8, -0.4, -0.2, -0.7, 14.2},
				[]float64{8.9, -1.8, -1.2, -0.8, -1.5, 7.8},
				[]float64{18.7, -0.2, 0.2, 0.6, 0.1, 17.6},
				[]float64{13.4, -1.0, -0.6, -0.3, -0.9, 12.3},
			),
			Adjustments: salesVsProductionAdjustments,
		},
		{
			Name:        "forecast",
			Bounds:      forecastRange,
			Base:        scalar(88.5),
			Regions:     regional(85.2, 92.1, 82.7, 87.9),
			Adjustments: forecastAdjustments,
		},
	},
}
