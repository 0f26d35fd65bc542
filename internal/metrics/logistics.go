package metrics

import "github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"

var (
	dispatchAdjustments = Adjustments{
		TimeRanges: timed(-1.2, 0.9, 2.1),
		Categories: byCategory(1.1, -0.8, 0.5, -1.2, 0.7),
		Channels:   byChannel(0.6, -0.4, 0.9),
	}
	distributorFillAdjustments = Adjustments{
		TimeRanges: timed(-1.5, 1.2, 2.5),
		Categories: byCategory(0.8, -0.6, 0.4, -0.7, 0.5),
		Channels:   byChannel(0.3, -0.2, 0.6),
	}
)

var (
	dispatchRange        = bounds(80, 99)
	distributorFillRange = bounds(70, 99)
)

// The cold chain grid is one cell per day: 1 marks a temperature breach.
var coldChainGrid = Series{
	Name:   "coldChainGrid",
	Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	Bounds: bounds(0, 1),
	Base:   []float64{0, 0, 0, 0, 0, 0, 0},
	Regions: regionalSeries(
		[]float64{0, 1, 0, 0, 1, 0, 0},
		[]float64{0, 0, 0, 1, 0, 0, 0},
		[]float64{1, 0, 1, 0, 0, 1, 0},
		[]float64{0, 0, 0, 0, 0, 0, 0},
	),
	Adjustments: Adjustments{
		TimeRanges: map[domain.TimeRange]Shift{
			domain.TimeRangeLast7Days: flagOdd(),
			domain.TimeRangeThisMonth: flagEvery(3),
			domain.TimeRangeThisYear:  flagEvery(4),
		},
		Categories: map[domain.ProductCategory]Shift{
			domain.CategoryMilk:     flagAt(0),
			domain.CategoryButter:   flagAt(1),
			domain.CategoryCheese:   flagAt(2),
			domain.CategoryYogurt:   flagAt(3),
			domain.CategoryIceCream: flagAt(4),
		},
		Channels: map[domain.Channel]Shift{
			domain.ChannelRetail:    flagAt(5),
			domain.ChannelWholesale: flagAt(6),
			domain.ChannelOnline:    flagAt(0),
		},
	},
}

var logisticsTable = &Table{
	Tab: domain.TabLogistics,
	KPIs: []Series{
		{
			Name:        "onTimeDispatchRate",
			Bounds:      dispatchRange,
			Base:        scalar(91.5),
			Regions:     regional(92.8, 90.2, 89.7, 93.1),
			Adjustments: dispatchAdjustments,
		},
		{
			Name:    "fleetUtilization",
			Bounds:  bounds(70, 99),
			Base:    scalar(84.2),
			Regions: regional(78.6, 92.1, 74.9, 96.4),
			Adjustments: Adjustments{
				TimeRanges: timed(-0.8, 1.1, 2.3),
				Categories: byCategory(0.7, -0.5, 0.3, -0.9, 0.4),
				Channels:   byChannel(0.5, -0.3, 0.8),
			},
		},
		{
			Name:    "averageDeliveryLeadTime",
			Bounds:  bounds(10, 30),
			Base:    scalar(17.5),
			Regions: regional(18.2, 16.8, 19.4, 17.1),
			Adjustments: Adjustments{
				TimeRanges: timed(0.7, -0.5, -1.2),
				Categories: byCategory(-0.6, 0.4, -0.2, 0.8, -0.3),
				Channels:   byChannel(-0.2, 0.3, -0.4),
			},
		},
		{
			Name:    "coldChainTemperatureBreachInstances",
			Bounds:  bounds(0, 10),
			Base:    scalar(3),
			Regions: regional(4, 2, 5, 3),
			Adjustments: Adjustments{
				TimeRanges: timed(1, -1, -2),
				Categories: byCategory(-1, 1, -1, 1, -1),
				Channels:   byChannel(-1, 1, -1),
			},
		},
		{
			Name:        "distributorFillRate",
			Bounds:      distributorFillRange,
			Base:        scalar(89.4),
			Regions:     regional(87.3, 92.1, 85.6, 91.2),
			Adjustments: distributorFillAdjustments,
		},
	},
	Charts: []Series{
		coldChainGrid,
		{
			Name:   "dispatchTrend",
			Labels: weekLabels,
			Bounds: dispatchRange,
			Base:   []float64{90.2, 94.5, 87.8, 92.8},
			Regions: regionalSeries(
				[]float64{91.8, 92.2, 93.1, 92.7},
				[]float64{89.2, 90.5, 91.8, 91.8},
				[]float64{88.7, 89.5, 90.8, 90.8},
				[]float64{92.1, 93.5, 94.8, 94.8},
			),
			Adjustments: dispatchAdjustments,
		},
		{
			Name:   "leadTimeDist",
			Labels: []string{"12-15h", "15-18h", "18-21h", "21-24h", "24h+"},
			Bounds: bounds(0, 30),
			Base:   []float64{5, 17, 11, 8, 3},
			Regions: regionalSeries(
				[]float64{4, 10, 20, 9, 2},
				[]float64{6, 14, 15, 7, 5},
				[]float64{7, 15, 18, 10, 4},
				[]float64{3, 9, 22, 6, 2},
			),
			Adjustments: Adjustments{
				TimeRanges: map[domain.TimeRange]Shift{
					domain.TimeRangeLast7Days: bump(2, 2),
					domain.TimeRangeThisMonth: bump(1, 2),
					domain.TimeRangeThisYear:  bump(0, 2),
				},
				Categories: map[domain.ProductCategory]Shift{
					domain.CategoryMilk:     bump(0, 1),
					domain.CategoryButter:   bump(1, 1),
					domain.CategoryCheese:   bump(2, 1),
					domain.CategoryYogurt:   bump(3, 1),
					domain.CategoryIceCream: bump(4, 1),
				},
				Channels: map[domain.Channel]Shift{
					domain.ChannelRetail:    bump(0, 1),
					domain.ChannelWholesale: bump(1, 1),
					domain.ChannelOnline:    bump(2, 1),
				},
			},
		},
		{
			Name:   "fillRate",
			Labels: []string{"North", "South", "East", "West", "Central"},
			Bounds: distributorFillRange,
			Base:   []float64{92.1, 77.3, 89.4, 95.2, 81.6},
			Regions: regionalSeries(
				[]float64{90.1, 85.3, 88.4, 90.2, 83.6},
				[]float64{94.1, 89.3, 91.4, 93.2, 87.6},
				[]float64{88.1, 83.3, 85.4, 87.2, 81.6},
				[]float64{93.1, 88.3, 90.4, 92.2, 86.6},
			),
			Adjustments: distributorFillAdjustments,
		},
	},
}
