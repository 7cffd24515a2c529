package model

// GenericRecord is a schema-agnostic map for any data source
type GenericRecord map[string]interface{}

// SortField selects which hotel field a listing is ordered by
type SortField string

const (
	SortByPrice  SortField = "price"
	SortByRating SortField = "rating"
	SortByName   SortField = "name"
)

// SortOrder is the direction of a sort
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortConfig is the active sort of a listing view
type SortConfig struct {
	Field SortField `json:"field"`
	Order SortOrder `json:"order"`
}

// FilterState holds the active inclusion criteria of a listing view.
// PriceMin <= PriceMax is the caller's responsibility, the evaluator
// does not enforce it.
type FilterState struct {
	Search    string   `json:"search"`
	PriceMin  float64  `json:"priceMin"`
	PriceMax  float64  `json:"priceMax"`
	Amenities []string `json:"amenities"`
	MinRating float64  `json:"minRating"`
	CheckIn   string   `json:"checkIn"`
	CheckOut  string   `json:"checkOut"`
}

// HasAmenity reports whether an amenity is currently selected
func (f FilterState) HasAmenity(amenity string) bool {
	for _, a := range f.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}
