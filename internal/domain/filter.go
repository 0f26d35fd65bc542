package domain

import "strings"

type Region string

type TimeRange string

type ProductCategory string

type Channel string

const (
	RegionAll   Region = "all"
	RegionNorth Region = "north"
	RegionSouth Region = "south"
	RegionEast  Region = "east"
	RegionWest  Region = "west"
)

const (
	TimeRangeLast7Days  TimeRange = "last-7-days"
	TimeRangeLast30Days TimeRange = "last-30-days"
	TimeRangeThisMonth  TimeRange = "this-month"
	TimeRangeThisYear   TimeRange = "this-year"
)

const (
	CategoryAll      ProductCategory = "all"
	CategoryMilk     ProductCategory = "milk"
	CategoryButter   ProductCategory = "butter"
	CategoryCheese   ProductCategory = "cheese"
	CategoryYogurt   ProductCategory = "yogurt"
	CategoryIceCream ProductCategory = "ice-cream"
)

const (
	ChannelAll       Channel = "all"
	ChannelRetail    Channel = "retail"
	ChannelWholesale Channel = "wholesale"
	ChannelOnline    Channel = "online"
)

// Filter keys as used by the filter bar and the query string.
const (
	FilterRegion          = "region"
	FilterTimeRange       = "timeRange"
	FilterProductCategory = "productCategory"
	FilterChannel         = "channel"
)

// FilterSelection is the committed set of dashboard filters a derivation runs against.
// Values outside the documented enums are kept as-is; derivation treats them as no-ops.
type FilterSelection struct {
	Region          Region          `json:"region"`
	TimeRange       TimeRange       `json:"time_range"`
	ProductCategory ProductCategory `json:"product_category"`
	Channel         Channel         `json:"channel"`
}

// DefaultFilters returns the selection every view starts with.
func DefaultFilters() FilterSelection {
	return FilterSelection{
		Region:          RegionAll,
		TimeRange:       TimeRangeLast30Days,
		ProductCategory: CategoryAll,
		Channel:         ChannelAll,
	}
}

// IsDefault reports whether the selection applies no adjustment at all.
func (f FilterSelection) IsDefault() bool {
	return f == DefaultFilters()
}

// With returns a copy of f with one filter replaced. Unknown keys return f unchanged.
func (f FilterSelection) With(key, value string) FilterSelection {
	value = strings.TrimSpace(value)
	switch key {
	case FilterRegion:
		f.Region = Region(value)
	case FilterTimeRange:
		f.TimeRange = TimeRange(value)
	case FilterProductCategory:
		f.ProductCategory = ProductCategory(value)
	case FilterChannel:
		f.Channel = Channel(value)
	}
	return f
}

// Normalize fills empty fields with their defaults.
func (f FilterSelection) Normalize() FilterSelection {
	def := DefaultFilters()
	if f.Region == "" {
		f.Region = def.Region
	}
	if f.TimeRange == "" {
		f.TimeRange = def.TimeRange
	}
	if f.ProductCategory == "" {
		f.ProductCategory = def.ProductCategory
	}
	if f.Channel == "" {
		f.Channel = def.Channel
	}
	return f
}

// FilterState holds the selections a view is editing next to the ones it renders.
// Only Apply moves edits into Applied, all four filters at once.
type FilterState struct {
	Pending FilterSelection `json:"pending"`
	Applied FilterSelection `json:"applied"`
}

func NewFilterState() FilterState {
	return FilterState{Pending: DefaultFilters(), Applied: DefaultFilters()}
}

// Set edits a pending filter.
func (s *FilterState) Set(key, value string) {
	s.Pending = s.Pending.With(key, value)
}

// Apply commits the pending selection and returns it.
func (s *FilterState) Apply() FilterSelection {
	s.Applied = s.Pending
	return s.Applied
}

// Dirty reports whether there are pending edits not yet applied.
func (s FilterState) Dirty() bool {
	return s.Pending != s.Applied
}

type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FilterOptions is what the filter bar offers for each selector.
type FilterOptions struct {
	Regions           []FilterOption `json:"regions"`
	TimeRanges        []FilterOption `json:"time_ranges"`
	ProductCategories []FilterOption `json:"product_categories"`
	Channels          []FilterOption `json:"channels"`
}

func AvailableFilters() FilterOptions {
	return FilterOptions{
		Regions: []FilterOption{
			{Label: "All Regions", Value: string(RegionAll)},
			{Label: "North", Value: string(RegionNorth)},
			{Label: "South", Value: string(RegionSouth)},
			{Label: "East", Value: string(RegionEast)},
			{Label: "West", Value: string(RegionWest)},
		},
		TimeRanges: []FilterOption{
			{Label: "Last 7 Days", Value: string(TimeRangeLast7Days)},
			{Label: "Last 30 Days", Value: string(TimeRangeLast30Days)},
			{Label: "This Month", Value: string(TimeRangeThisMonth)},
			{Label: "This Year", Value: string(TimeRangeThisYear)},
		},
		ProductCategories: []FilterOption{
			{Label: "All Categories", Value: string(CategoryAll)},
			{Label: "Milk", Value: string(CategoryMilk)},
			{Label: "Butter", Value: string(CategoryButter)},
			{Label: "Cheese", Value: string(CategoryCheese)},
			{Label: "Yogurt", Value: string(CategoryYogurt)},
			{Label: "Ice Cream", Value: string(CategoryIceCream)},
		},
		Channels: []FilterOption{
			{Label: "All Channels", Value: string(ChannelAll)},
			{Label: "Retail", Value: string(ChannelRetail)},
			{Label: "Wholesale", Value: string(ChannelWholesale)},
			{Label: "Online", Value: string(ChannelOnline)},
		},
	}
}

// Regions, TimeRanges, ProductCategories and Channels list the enumerated domain in display order.
func Regions() []Region {
	return []Region{RegionAll, RegionNorth, RegionSouth, RegionEast, RegionWest}
}

func TimeRanges() []TimeRange {
	return []TimeRange{TimeRangeLast7Days, TimeRangeLast30Days, TimeRangeThisMonth, TimeRangeThisYear}
}

func ProductCategories() []ProductCategory {
	return []ProductCategory{CategoryAll, CategoryMilk, CategoryButter, CategoryCheese, CategoryYogurt, CategoryIceCream}
}

func Channels() []Channel {
	return []Channel{ChannelAll, ChannelRetail, ChannelWholesale, ChannelOnline}
}

// AllFilterSelections enumerates every combination of the documented filter values.
func AllFilterSelections() []FilterSelection {
	var out []FilterSelection
	for _, r := range Regions() {
		for _, t := range TimeRanges() {
			for _, p := range ProductCategories() {
				for _, c := range Channels() {
					out = append(out, FilterSelection{Region: r, TimeRange: t, ProductCategory: p, Channel: c})
				}
			}
		}
	}
	return out
}
