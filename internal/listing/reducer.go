package listing

import (
	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// PriceBounds is the full price range of the catalog; the default filter
// state covers it entirely
type PriceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// State is the filter/sort/page triple driving a listing view. Bounds is
// fixed at creation and never changed by a transition.
type State struct {
	Bounds  PriceBounds       `json:"bounds"`
	Filters model.FilterState `json:"filters"`
	Sort    model.SortConfig  `json:"sort"`
	Page    int               `json:"page"`
}

// DefaultFilters is the filter state with nothing active: full price range,
// no search, no amenities, rating 0, no dates
func DefaultFilters(bounds PriceBounds) model.FilterState {
	return model.FilterState{
		PriceMin:  bounds.Min,
		PriceMax:  bounds.Max,
		Amenities: []string{},
	}
}

// DefaultState is the initial listing state: default filters, price
// ascending, page 1
func DefaultState(bounds PriceBounds) State {
	return State{
		Bounds:  bounds,
		Filters: DefaultFilters(bounds),
		Sort:    model.SortConfig{Field: model.SortByPrice, Order: model.OrderAsc},
		Page:    1,
	}
}

// Reduce applies one transition and returns the next state. It is pure: the
// input state is not modified, and every filter or sort change resets the
// page to 1. SetPage is the only transition that leaves the page alone.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetSearch:
		s.Filters.Search = a.Search
		s.Page = 1
	case SetPriceRange:
		s.Filters.PriceMin = a.Min
		s.Filters.PriceMax = a.Max
		s.Page = 1
	case ToggleAmenity:
		s.Filters.Amenities = toggleAmenity(s.Filters.Amenities, a.Amenity)
		s.Page = 1
	case SetMinRating:
		s.Filters.MinRating = a.Rating
		s.Page = 1
	case SetDateRange:
		s.Filters.CheckIn = a.CheckIn
		s.Filters.CheckOut = a.CheckOut
		s.Page = 1
	case SetSort:
		s.Sort = model.SortConfig{Field: a.Field, Order: a.Order}
		s.Page = 1
	case SetPage:
		s.Page = a.Page
	case ResetFilters:
		s.Filters = DefaultFilters(s.Bounds)
		s.Page = 1
	}
	return s
}

// toggleAmenity adds the amenity when absent and removes it when present,
// always returning a fresh slice so previous states stay untouched
func toggleAmenity(current []string, amenity string) []string {
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, a := range current {
		if a == amenity {
			removed = true
			continue
		}
		next = append(next, a)
	}
	if !removed {
		next = append(next, amenity)
	}
	return next
}
