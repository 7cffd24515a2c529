package listing

import (
	"sort"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// PageSize is the fixed number of listings per page
const PageSize = 10

// View is the derived, read-only projection of a listing state over the
// current record collection. It is recomputed whenever either changes and
// never mutated in place.
type View struct {
	Items              []model.Hotel     `json:"items"`
	TotalResults       int               `json:"totalResults"`
	TotalPages         int               `json:"totalPages"`
	Page               int               `json:"page"`
	ActiveFiltersCount int               `json:"activeFiltersCount"`
	Filters            model.FilterState `json:"filters"`
	Sort               model.SortConfig  `json:"sort"`
}

// DeriveView filters, sorts and paginates the collection for one state.
// A page beyond the last one yields an empty item slice rather than being
// clamped; deciding whether to jump back is left to the caller.
func DeriveView(hotels []model.Hotel, s State) View {
	filtered := make([]model.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if Matches(h, s.Filters) {
			filtered = append(filtered, h)
		}
	}

	compare := NewComparator(s.Sort)
	sort.SliceStable(filtered, func(i, j int) bool {
		return compare(filtered[i], filtered[j]) < 0
	})

	totalResults := len(filtered)
	totalPages := (totalResults + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (s.Page - 1) * PageSize
	end := start + PageSize
	if start < 0 || start > totalResults {
		start, end = 0, 0
	} else if end > totalResults {
		end = totalResults
	}

	return View{
		Items:              filtered[start:end],
		TotalResults:       totalResults,
		TotalPages:         totalPages,
		Page:               s.Page,
		ActiveFiltersCount: ActiveFiltersCount(s),
		Filters:            s.Filters,
		Sort:               s.Sort,
	}
}

// ActiveFiltersCount reports how many filter dimensions differ from the
// defaults. A narrowed price range counts once no matter how both bounds
// moved, and any number of selected amenities counts once.
func ActiveFiltersCount(s State) int {
	count := 0
	if s.Filters.Search != "" {
		count++
	}
	if s.Filters.PriceMin > s.Bounds.Min || s.Filters.PriceMax < s.Bounds.Max {
		count++
	}
	if len(s.Filters.Amenities) > 0 {
		count++
	}
	if s.Filters.MinRating > 0 {
		count++
	}
	if s.Filters.CheckIn != "" && s.Filters.CheckOut != "" {
		count++
	}
	return count
}
