package store

import (
	"database/sql"
	"fmt"

	json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

var db *sql.DB

// InitDB opens the catalog database and creates the schema if needed
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	hotelTable := `
	CREATE TABLE IF NOT EXISTS hotels (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		price REAL NOT NULL,
		rating REAL NOT NULL,
		amenities TEXT,
		check_in TEXT,
		check_out TEXT
	);
	`
	if _, err := db.Exec(hotelTable); err != nil {
		return err
	}

	return nil
}

// CloseDB closes the underlying connection
func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveHotel inserts or replaces one hotel row. Amenities are stored as a
// JSON array in a text column.
func SaveHotel(h model.Hotel) error {
	amenities, err := json.Marshal(h.Amenities)
	if err != nil {
		return fmt.Errorf("failed to encode amenities: %w", err)
	}

	_, err = db.Exec(
		`INSERT OR REPLACE INTO hotels (id, name, city, price, rating, amenities, check_in, check_out)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.City, h.Price, h.Rating, string(amenities),
		h.Availability.CheckIn, h.Availability.CheckOut,
	)
	return err
}

// ListHotels returns the full catalog ordered by id
func ListHotels() ([]model.Hotel, error) {
	rows, err := db.Query(
		`SELECT id, name, city, price, rating, amenities, check_in, check_out
		 FROM hotels ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []model.Hotel
	for rows.Next() {
		var h model.Hotel
		var amenities string
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Price, &h.Rating,
			&amenities, &h.Availability.CheckIn, &h.Availability.CheckOut); err != nil {
			return nil, err
		}
		if amenities != "" {
			if err := json.Unmarshal([]byte(amenities), &h.Amenities); err != nil {
				return nil, fmt.Errorf("failed to decode amenities for hotel %d: %w", h.ID, err)
			}
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// CountHotels returns the number of catalog rows
func CountHotels() (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM hotels`).Scan(&count)
	return count, err
}

// SeedHotels inserts the embedded seed catalog when the table is empty
func SeedHotels() (int, error) {
	count, err := CountHotels()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, h := range seedHotels {
		if err := SaveHotel(h); err != nil {
			return 0, fmt.Errorf("failed to seed hotel %q: %w", h.Name, err)
		}
	}
	return len(seedHotels), nil
}
