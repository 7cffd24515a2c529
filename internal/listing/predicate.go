package listing

import (
	"strings"
	"time"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

const dateLayout = "2006-01-02"

// Matches decides whether a hotel passes the active filters. Clauses combine
// as AND: search, price, amenities, rating, dates.
func Matches(h model.Hotel, f model.FilterState) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(h.Name), search) &&
			!strings.Contains(strings.ToLower(h.City), search) {
			return false
		}
	}

	if h.Price < f.PriceMin || h.Price > f.PriceMax {
		return false
	}

	// Every requested amenity must be present on the hotel
	for _, wanted := range f.Amenities {
		found := false
		for _, a := range h.Amenities {
			if a == wanted {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if h.Rating < f.MinRating {
		return false
	}

	if f.CheckIn != "" && f.CheckOut != "" {
		if !windowAvailable(h.Availability, f.CheckIn, f.CheckOut) {
			return false
		}
	}

	return true
}

// windowAvailable requires the requested stay to sit fully inside the hotel's
// availability window. If any of the four dates fails to parse the clause is
// skipped and the hotel stays in; a malformed date never rejects a record.
func windowAvailable(a model.Availability, checkIn, checkOut string) bool {
	hotelIn, err := time.Parse(dateLayout, a.CheckIn)
	if err != nil {
		return true
	}
	hotelOut, err := time.Parse(dateLayout, a.CheckOut)
	if err != nil {
		return true
	}
	wantIn, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return true
	}
	wantOut, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return true
	}

	return !wantIn.Before(hotelIn) && !wantOut.After(hotelOut)
}
