package model

// Availability is the bookable window of a hotel, both dates in YYYY-MM-DD
type Availability struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Hotel is one catalog listing
type Hotel struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	City         string       `json:"city"`
	Price        float64      `json:"price"`
	Rating       float64      `json:"rating"`
	Amenities    []string     `json:"amenities"`
	Availability Availability `json:"availability"`
}

// AsRecord flattens a hotel into a GenericRecord so the transform engine can
// address its fields by path, availability staying nested
func (h Hotel) AsRecord() GenericRecord {
	return GenericRecord{
		"id":        h.ID,
		"name":      h.Name,
		"city":      h.City,
		"price":     h.Price,
		"rating":    h.Rating,
		"amenities": h.Amenities,
		"availability": GenericRecord{
			"checkIn":  h.Availability.CheckIn,
			"checkOut": h.Availability.CheckOut,
		},
	}
}

// Records converts a hotel collection into engine records
func Records(hotels []Hotel) []GenericRecord {
	records := make([]GenericRecord, len(hotels))
	for i, h := range hotels {
		records[i] = h.AsRecord()
	}
	return records
}
