package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

var testBounds = PriceBounds{Min: 40, Max: 500}

func TestDefaultState(t *testing.T) {
	s := DefaultState(testBounds)

	assert.Equal(t, "", s.Filters.Search)
	assert.Equal(t, 40.0, s.Filters.PriceMin)
	assert.Equal(t, 500.0, s.Filters.PriceMax)
	assert.Empty(t, s.Filters.Amenities)
	assert.Equal(t, 0.0, s.Filters.MinRating)
	assert.Equal(t, model.SortByPrice, s.Sort.Field)
	assert.Equal(t, model.OrderAsc, s.Sort.Order)
	assert.Equal(t, 1, s.Page)
}

func TestReduceResetsPageOnFilterChanges(t *testing.T) {
	start := DefaultState(testBounds)
	start.Page = 4

	cases := []struct {
		name   string
		action Action
	}{
		{"setSearch", SetSearch{Search: "palace"}},
		{"setPriceRange", SetPriceRange{Min: 50, Max: 300}},
		{"toggleAmenity", ToggleAmenity{Amenity: "wifi"}},
		{"setMinRating", SetMinRating{Rating: 4}},
		{"setDateRange", SetDateRange{CheckIn: "2025-03-01", CheckOut: "2025-03-10"}},
		{"setSort", SetSort{Field: model.SortByName, Order: model.OrderDesc}},
		{"resetFilters", ResetFilters{}},
	}
	for _, c := range cases {
		next := Reduce(start, c.action)
		assert.Equalf(t, 1, next.Page, "%s must reset the page", c.name)
	}
}

func TestReduceSetPageKeepsEverythingElse(t *testing.T) {
	start := Reduce(DefaultState(testBounds), SetSearch{Search: "palace"})
	next := Reduce(start, SetPage{Page: 3})

	assert.Equal(t, 3, next.Page)
	assert.Equal(t, "palace", next.Filters.Search)
	assert.Equal(t, start.Sort, next.Sort)
}

func TestReduceToggleAmenity(t *testing.T) {
	s := DefaultState(testBounds)

	s = Reduce(s, ToggleAmenity{Amenity: "wifi"})
	assert.Equal(t, []string{"wifi"}, s.Filters.Amenities)

	s = Reduce(s, ToggleAmenity{Amenity: "pool"})
	assert.Equal(t, []string{"wifi", "pool"}, s.Filters.Amenities)

	// Toggling again removes
	s = Reduce(s, ToggleAmenity{Amenity: "wifi"})
	assert.Equal(t, []string{"pool"}, s.Filters.Amenities)
}

func TestReduceIsPure(t *testing.T) {
	start := DefaultState(testBounds)
	start = Reduce(start, ToggleAmenity{Amenity: "wifi"})

	next := Reduce(start, ToggleAmenity{Amenity: "pool"})
	assert.Equal(t, []string{"wifi"}, start.Filters.Amenities, "input state untouched")
	assert.Equal(t, []string{"wifi", "pool"}, next.Filters.Amenities)
}

func TestReduceResetFiltersKeepsSort(t *testing.T) {
	s := DefaultState(testBounds)
	s = Reduce(s, SetSort{Field: model.SortByRating, Order: model.OrderDesc})
	s = Reduce(s, SetSearch{Search: "palace"})
	s = Reduce(s, SetMinRating{Rating: 4})
	s = Reduce(s, SetPriceRange{Min: 100, Max: 200})

	s = Reduce(s, ResetFilters{})

	assert.Equal(t, DefaultFilters(testBounds), s.Filters)
	assert.Equal(t, model.SortByRating, s.Sort.Field, "sort survives a reset")
	assert.Equal(t, model.OrderDesc, s.Sort.Order)
	assert.Equal(t, 1, s.Page)
}

func TestReduceSetDateRange(t *testing.T) {
	s := Reduce(DefaultState(testBounds), SetDateRange{CheckIn: "2025-03-01", CheckOut: "2025-03-10"})
	assert.Equal(t, "2025-03-01", s.Filters.CheckIn)
	assert.Equal(t, "2025-03-10", s.Filters.CheckOut)
}
