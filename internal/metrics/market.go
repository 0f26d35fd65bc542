package metrics

import "github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"

var (
	returnRateAdjustments = Adjustments{
		TimeRanges: timed(0.2, -0.1, -0.3),
		Categories: byCategory(-0.2, 0.3, -0.1, 0.4, -0.2),
		Channels:   byChannel(-0.1, 0.2, -0.3),
	}
	competitorPresenceAdjustments = Adjustments{
		TimeRanges: timed(1.5, -0.8, -2.1),
		Categories: byCategory(-1.2, 0.9, -0.7, 1.4, -0.5),
		Channels:   byChannel(-0.6, 0.8, -1.0),
	}
)

var returnRateRange = bounds(1, 4)

var marketTable = &Table{
	Tab: domain.TabMarket,
	KPIs: []Series{
		{
			Name:    "lostSalesValue",
			Bounds:  bounds(5, 25),
			Base:    scalar(12.5),
			Regions: regional(15.2, 10.8, 9.6, 13.9),
			Adjustments: Adjustments{
				TimeRanges: timed(-1.2, 0.8, 2.5),
				Categories: byCategory(1.5, -0.8, 0.6, -1.1, 0.9),
				Channels:   byChannel(0.7, -0.5, 1.1),
			},
		},
		{
			Name:        "salesReturnRate",
			Bounds:      returnRateRange,
			Base:        scalar(1.8),
			Regions:     regional(2.1, 1.5, 2.3, 1.7),
			Adjustments: returnRateAdjustments,
		},
		{
			Name:    "retailerServiceLevel",
			Bounds:  bounds(6, 10),
			Base:    scalar(8.3),
			Regions: regional(8.1, 8.7, 8.0, 8.5),
			Adjustments: Adjustments{
				TimeRanges: timed(-0.1, 0.2, 0.4),
				Categories: byCategory(0.3, -0.2, 0.2, -0.3, 0.1),
				Channels:   byChannel(0.2, -0.1, 0.3),
			},
		},
		{
			Name:        "competitorStockPresence",
			Bounds:      bounds(40, 80),
			Base:        scalar(62.5),
			Regions:     regional(65.8, 59.2, 68.1, 61.4),
			Adjustments: competitorPresenceAdjustments,
		},
		{
			Name:    "dailyDemandSpikeResponseTime",
			Bounds:  bounds(2, 8),
			Base:    scalar(4.2),
			Regions: regional(4.5, 3.8, 4.7, 4.0),
			Adjustments: Adjustments{
				TimeRanges: timed(0.3, -0.2, -0.5),
				Categories: byCategory(-0.2, 0.1, -0.1, 0.2, -0.1),
				Channels:   byChannel(-0.1, 0.2, -0.3),
			},
		},
	},
	Charts: []Series{
		{
			Name:   "salesReturnTrend",
			Labels: monthLabels,
			Bounds: returnRateRange,
			Base:   []float64{2.1, 1.8, 1.9, 1.7, 1.8, 1.8},
			Regions: regionalSeries(
				[]float64{2.3, 2.0, 2.1, 1.9, 2.0, 2.1},
				[]float64{1.7, 1.5, 1.6, 1.4, 1.5, 1.5},
				[]float64{2.5, 2.2, 2.3, 2.1, 2.2, 2.3},
				[]float64{1.9, 1.7, 1.8, 1.6, 1.7, 1.7},
			),
			Adjustments: returnRateAdjustments,
		},
		{
			Name:   "competitorStockData",
			Labels: []string{"Brand A", "Brand B", "Brand C", "Others"},
			Bounds: bounds(40, 90),
			Base:   []float64{65.8, 78.2, 61.4, 58.9},
			Regions: regionalSeries(
				[]float64{68.1, 80.2, 64.4, 61.9},
				[]float64{59.2, 72.2, 55.4, 52.9},
				[]float64{71.1, 84.2, 68.4, 65.9},
				[]float64{61.4, 74.2, 57.4, 54.9},
			),
			Adjustments: competitorPresenceAdjustments,
		},
		{
			// Our share mirrors the competitor presence shifts with the opposite sign.
			Name:   "competitorData",
			Labels: []string{"Brand A", "Brand B", "Brand C", "Others"},
			Bounds: bounds(10, 60),
			Base:   []float64{34.2, 21.8, 38.6, 41.1},
			Regions: regionalSeries(
				[]float64{31.9, 19.8, 35.6, 38.1},
				[]float64{40.8, 27.8, 44.6, 47.1},
				[]float64{28.9, 15.8, 31.6, 34.1},
				[]float64{38.6, 25.8, 42.6, 45.1},
			),
			Adjustments: Adjustments{
				TimeRanges: timed(-1.5, 0.8, 2.1),
				Categories: byCategory(1.2, -0.9, 0.7, -1.4, 0.5),
				Channels:   byChannel(0.6, -0.8, 1.0),
			},
		},
		{
			Name:   "demandSpike",
			Labels: dayLabels(30),
			Bounds: bounds(80, 250),
			Base: []float64{
				120, 135, 180, 145, 160, 190, 175, 155, 140, 165,
				185, 170, 145, 175, 195, 160, 150, 185, 170, 155,
				145, 165, 180, 195, 175, 160, 145, 170, 185, 155,
			},
			RegionShifts: regionalShifts(10, -8, -12, 5),
			Adjustments: Adjustments{
				TimeRanges: timed(-5, 3, 8),
				Categories: byCategory(2, -3, 1, -2, 1),
				Channels:   byChannel(2, -1, 3),
			},
		},
		{
			Name:   "responseTime",
			Labels: dayLabels(30),
			Bounds: bounds(2, 8),
			Base: []float64{
				5.2, 4.8, 3.9, 4.6, 4.1, 3.7, 3.9, 4.3, 4.7, 4.2,
				3.8, 4.0, 4.5, 3.9, 3.6, 4.3, 4.6, 3.8, 4.1, 4.4,
				4.7, 4.2, 3.9, 3.5, 3.8, 4.3, 4.6, 4.0, 3.7, 4.2,
			},
			RegionShifts: regionalShifts(0.2, -0.3, 0.4, -0.1),
			Adjustments: Adjustments{
				TimeRanges: timed(0.1, -0.2, -0.3),
				Categories: byCategory(-0.1, 0.2, -0.1, 0.3, -0.1),
				Channels:   byChannel(-0.1, 0.2, -0.2),
			},
		},
	},
}
