package engine

import (
	"fmt"
	"sort"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// Rating tier labels shown in the statistics view
const (
	TierPremium = "Premium (4.5+)"
	TierGood    = "Good (3.5-4.5)"
	TierBudget  = "Budget (<3.5)"
)

const topAmenitiesLimit = 5

// PriceRange is the observed min/max price across the catalog
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AmenityCount is one row of the top-amenities frequency report
type AmenityCount struct {
	Amenity string `json:"amenity"`
	Count   int    `json:"count"`
}

// Summary is the reporting view consumed alongside the listing: overall
// numbers plus three independent groupings of the same catalog
type Summary struct {
	TotalHotels  int            `json:"totalHotels"`
	AvgPrice     float64        `json:"avgPrice"`
	AvgRating    float64        `json:"avgRating"`
	PriceRange   PriceRange     `json:"priceRange"`
	ByCity       []GroupResult  `json:"byCity"`
	RatingTiers  []GroupResult  `json:"ratingTiers"`
	TopAmenities []AmenityCount `json:"topAmenities"`
}

// RatingTier buckets a rating into the tier labels used by the report
func RatingTier(rating float64) string {
	switch {
	case rating >= 4.5:
		return TierPremium
	case rating >= 3.5:
		return TierGood
	default:
		return TierBudget
	}
}

// BuildSummary computes the statistics report for a hotel collection
func BuildSummary(hotels []model.Hotel) (*Summary, error) {
	summary := &Summary{
		TotalHotels:  len(hotels),
		TopAmenities: []AmenityCount{},
	}
	if len(hotels) == 0 {
		summary.ByCity = []GroupResult{}
		summary.RatingTiers = []GroupResult{}
		return summary, nil
	}

	var priceSum, ratingSum float64
	summary.PriceRange = PriceRange{Min: hotels[0].Price, Max: hotels[0].Price}
	for _, h := range hotels {
		priceSum += h.Price
		ratingSum += h.Rating
		if h.Price < summary.PriceRange.Min {
			summary.PriceRange.Min = h.Price
		}
		if h.Price > summary.PriceRange.Max {
			summary.PriceRange.Max = h.Price
		}
	}
	summary.AvgPrice = priceSum / float64(len(hotels))
	summary.AvgRating = ratingSum / float64(len(hotels))

	records := model.Records(hotels)

	byCity, err := Transform(records, &TransformSpec{
		GroupBy:      GroupBy{"city"},
		Aggregations: map[string]AggregationKind{"price": AggAvg, "rating": AggAvg},
		SortBy:       &SortRule{Field: "price", Order: model.OrderDesc},
	})
	if err != nil {
		return nil, fmt.Errorf("group by city: %w", err)
	}
	summary.ByCity = byCity

	// Tier grouping runs over a derived copy carrying a ratingTier field
	tiered := make([]model.GenericRecord, len(hotels))
	for i, h := range hotels {
		rec := h.AsRecord()
		rec["ratingTier"] = RatingTier(h.Rating)
		tiered[i] = rec
	}
	tiers, err := Transform(tiered, &TransformSpec{
		GroupBy:      GroupBy{"ratingTier"},
		Aggregations: map[string]AggregationKind{"price": AggAvg},
		SortBy:       &SortRule{Field: "price", Order: model.OrderDesc},
	})
	if err != nil {
		return nil, fmt.Errorf("group by rating tier: %w", err)
	}
	summary.RatingTiers = tiers

	summary.TopAmenities = topAmenities(hotels, topAmenitiesLimit)
	return summary, nil
}

// topAmenities counts how many hotels carry each amenity and keeps the most
// frequent ones. Ties break on name so the report is deterministic.
func topAmenities(hotels []model.Hotel, limit int) []AmenityCount {
	counts := make(map[string]int)
	for _, h := range hotels {
		for _, amenity := range h.Amenities {
			counts[amenity]++
		}
	}

	ranked := make([]AmenityCount, 0, len(counts))
	for amenity, count := range counts {
		ranked = append(ranked, AmenityCount{Amenity: amenity, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Amenity < ranked[j].Amenity
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
