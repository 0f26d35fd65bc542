package metrics

import (
	"strconv"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
)

// Compact constructors for the tab tables. Arguments follow the filter bar order.

func scalar(v float64) []float64 { return []float64{v} }

func bounds(lo, hi float64) domain.Range { return domain.Range{Min: lo, Max: hi} }

func regional(north, south, east, west float64) map[domain.Region][]float64 {
	return map[domain.Region][]float64{
		domain.RegionNorth: scalar(north),
		domain.RegionSouth: scalar(south),
		domain.RegionEast:  scalar(east),
		domain.RegionWest:  scalar(west),
	}
}

func regionalSeries(north, south, east, west []float64) map[domain.Region][]float64 {
	return map[domain.Region][]float64{
		domain.RegionNorth: north,
		domain.RegionSouth: south,
		domain.RegionEast:  east,
		domain.RegionWest:  west,
	}
}

func regionalShifts(north, south, east, west float64) map[domain.Region]Shift {
	return map[domain.Region]Shift{
		domain.RegionNorth: {Delta: north},
		domain.RegionSouth: {Delta: south},
		domain.RegionEast:  {Delta: east},
		domain.RegionWest:  {Delta: west},
	}
}

func timed(last7Days, thisMonth, thisYear float64) map[domain.TimeRange]Shift {
	return map[domain.TimeRange]Shift{
		domain.TimeRangeLast7Days: {Delta: last7Days},
		domain.TimeRangeThisMonth: {Delta: thisMonth},
		domain.TimeRangeThisYear:  {Delta: thisYear},
	}
}

func byCategory(milk, butter, cheese, yogurt, iceCream float64) map[domain.ProductCategory]Shift {
	return map[domain.ProductCategory]Shift{
		domain.CategoryMilk:     {Delta: milk},
		domain.CategoryButter:   {Delta: butter},
		domain.CategoryCheese:   {Delta: cheese},
		domain.CategoryYogurt:   {Delta: yogurt},
		domain.CategoryIceCream: {Delta: iceCream},
	}
}

func byChannel(retail, wholesale, online float64) map[domain.Channel]Shift {
	return map[domain.Channel]Shift{
		domain.ChannelRetail:    {Delta: retail},
		domain.ChannelWholesale: {Delta: wholesale},
		domain.ChannelOnline:    {Delta: online},
	}
}

func bump(index int, by float64) Shift {
	return Shift{Points: map[int]float64{index: by}}
}

func flagAt(index int) Shift {
	return Shift{Flag: func(i int) bool { return i == index }}
}

func flagOdd() Shift {
	return Shift{Flag: func(i int) bool { return i%2 != 0 }}
}

func flagEvery(n int) Shift {
	return Shift{Flag: func(i int) bool { return i%n == 0 }}
}

func dayLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

var (
	weekLabels     = []string{"Week 1", "Week 2", "Week 3", "Week 4"}
	monthLabels    = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	categoryLabels = []string{"Milk", "Butter", "Cheese", "Yogurt", "Ice Cream"}
)
