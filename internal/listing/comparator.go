package listing

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// NewComparator builds a total order over hotels for the given sort config,
// usable with a stable sort. Price and rating compare numerically, name uses
// locale-aware collation; desc negates the result.
func NewComparator(cfg model.SortConfig) func(a, b model.Hotel) int {
	var compare func(a, b model.Hotel) int

	switch cfg.Field {
	case model.SortByRating:
		compare = func(a, b model.Hotel) int {
			return numericCompare(a.Rating, b.Rating)
		}
	case model.SortByName:
		collator := collate.New(language.English)
		compare = func(a, b model.Hotel) int {
			return collator.CompareString(a.Name, b.Name)
		}
	default: // price
		compare = func(a, b model.Hotel) int {
			return numericCompare(a.Price, b.Price)
		}
	}

	if cfg.Order == model.OrderDesc {
		inner := compare
		return func(a, b model.Hotel) int {
			return -inner(a, b)
		}
	}
	return compare
}

func numericCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
