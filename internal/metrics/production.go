package metrics

import "github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"

var (
	cycleTimeAdjustments = Adjustments{
		TimeRanges: timed(0.3, -0.2, -0.8),
		Categories: byCategory(-0.6, 0.4, -0.3, 0.8, -0.2),
		Channels:   byChannel(-0.4, 0.3, 1.1),
	}
	turnoverAdjustments = Adjustments{
		TimeRanges: timed(-0.4, 0.3, 1.2),
		Categories: byCategory(1.1, -0.7, 0.8, -1.2, 0.5),
		Channels:   byChannel(0.9, -0.4, -1.8),
	}
	finishedGoodsAdjustments = Adjustments{
		TimeRanges: timed(0.8, -0.4, -1.8),
		Categories: byCategory(-1.2, 0.9, -0.7, 1.5, -0.4),
		Channels:   byChannel(-0.8, 0.6, 2.4),
	}
)

var (
	cycleTimeRange     = bounds(2.5, 7)
	turnoverRange      = bounds(4, 10)
	finishedGoodsRange = bounds(3, 15)
)

var productionTable = &Table{
	Tab: domain.TabProduction,
	KPIs: []Series{
		{
			Name:    "plantUtilization",
			Bounds:  bounds(70, 95),
			Base:    scalar(87.5),
			Regions: regional(85.2, 92.1, 79.8, 88.7),
			Adjustments: Adjustments{
				TimeRanges: timed(-2.1, 1.2, 3.5),
				Categories: byCategory(2.8, -1.2, 1.5, -2.1, 0.9),
				Channels:   byChannel(1.8, -0.6, -3.2),
			},
		},
		{
			Name:        "productionCycleTime",
			Bounds:      cycleTimeRange,
			Base:        scalar(4.2),
			Regions:     regional(4.8, 3.6, 5.4, 4.1),
			Adjustments: cycleTimeAdjustments,
		},
		{
			Name:        "inventoryTurnover",
			Bounds:      turnoverRange,
			Base:        scalar(6.8),
			Regions:     regional(6.2, 7.5, 5.8, 6.9),
			Adjustments: turnoverAdjustments,
		},
		{
			Name:        "finishedGoodsInventory",
			Bounds:      finishedGoodsRange,
			Base:        scalar(8.5),
			Regions:     regional(9.8, 6.2, 11.5, 8.1),
			Adjustments: finishedGoodsAdjustments,
		},
		{
			Name:    "scrapWastageRate",
			Bounds:  bounds(1, 6),
			Base:    scalar(2.8),
			Regions: regional(3.2, 2.1, 4.1, 2.9),
			Adjustments: Adjustments{
				TimeRanges: timed(0.5, -0.3, -0.9),
				Categories: byCategory(-0.8, 0.6, -0.4, 1.1, -0.2),
				Channels:   byChannel(-0.5, 0.3, 1.5),
			},
		},
	},
	Charts: []Series{
		{
			Name:   "cycleTimeData",
			Labels: []string{"Plant A", "Plant B", "Plant C", "Plant D"},
			Bounds: cycleTimeRange,
			Base:   []float64{4.2, 4.1, 4.3, 4.0},
			Regions: regionalSeries(
				[]float64{4.8, 4.7, 4.9, 4.6},
				[]float64{3.6, 3.5, 3.7, 3.4},
				[]float64{5.4, 5.3, 5.5, 5.2},
				[]float64{4.1, 4.0, 4.2, 3.9},
			),
			Adjustments: cycleTimeAdjustments,
		},
		{
			Name:   "inventoryTrend",
			Labels: dayLabels(30),
			Bounds: turnoverRange,
			Base: []float64{
				6.8, 7.2, 6.5, 7.1, 6.9, 7.3, 6.7, 7.0, 6.8, 7.4,
				6.6, 7.2, 6.9, 7.1, 6.8, 7.3, 6.7, 7.0, 6.9, 7.2,
				6.6, 7.1, 6.8, 7.3, 6.7, 7.0, 6.9, 7.2, 6.8, 7.1,
			},
			Regions: regionalSeries(
				[]float64{
					6.2, 6.8, 5.9, 6.5, 6.3, 6.9, 6.1, 6.7, 6.4, 7.0,
					6.2, 6.8, 6.5, 7.1, 6.3, 6.9, 6.6, 7.2, 6.4, 7.0,
					6.7, 7.3, 6.5, 7.1, 6.8, 7.4, 6.6, 7.2, 6.9, 7.3,
				},
				[]float64{
					7.5, 8.1, 7.2, 7.8, 7.6, 8.2, 7.4, 8.0, 7.7, 8.3,
					7.5, 8.1, 7.8, 8.4, 7.6, 8.2, 7.9, 8.5, 7.7, 8.3,
					8.0, 8.6, 7.8, 8.4, 8.1, 8.7, 7.9, 8.5, 8.2, 8.6,
				},
				[]float64{
					5.8, 6.4, 5.5, 6.1, 5.9, 6.5, 5.7, 6.3, 6.0, 6.6,
					5.8, 6.4, 6.1, 6.7, 5.9, 6.5, 6.2, 6.8, 6.0, 6.6,
					6.3, 6.9, 6.1, 6.7, 6.4, 7.0, 6.2, 6.8, 6.5, 6.9,
				},
				[]float64{
					6.9, 7.5, 6.6, 7.2, 7.0, 7.6, 6.8, 7.4, 7.1, 7.7,
					6.9, 7.5, 7.2, 7.8, 7.0, 7.6, 7.3, 7.9, 7.1, 7.7,
					7.4, 8.0, 7.2, 7.8, 7.5, 8.1, 7.3, 7.9, 7.6, 8.0,
				},
			),
			Adjustments: turnoverAdjustments,
		},
		{
			Name:   "finishedGoodsData",
			Labels: []string{"Milk", "Butter", "Cheese", "Yogurt", "Ice Cream", "Powder"},
			Bounds: finishedGoodsRange,
			Base:   []float64{8.5, 7.2, 6.8, 9.1, 4.8, 8.5},
			Regions: regionalSeries(
				[]float64{9.8, 8.5, 8.1, 10.4, 6.1, 9.8},
				[]float64{6.2, 4.9, 4.5, 6.8, 2.5, 6.2},
				[]float64{11.5, 10.2, 9.8, 12.1, 7.8, 11.5},
				[]float64{8.1, 6.8, 6.4, 8.7, 4.4, 8.1},
			),
			Adjustments: finishedGoodsAdjustments,
		},
	},
}
