package store

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// ErrSourceUnavailable wraps any failure to fetch or decode the external
// record source. The caller decides the fallback; there is no retry here.
var ErrSourceUnavailable = errors.New("record source unavailable")

// hotelSchema is the shape every incoming hotel document must satisfy
// before it reaches the catalog
const hotelSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "name", "city", "price", "rating"],
  "properties": {
    "id": {"type": "integer"},
    "name": {"type": "string", "minLength": 1},
    "city": {"type": "string", "minLength": 1},
    "price": {"type": "number", "minimum": 0},
    "rating": {"type": "number", "minimum": 0, "maximum": 5},
    "amenities": {"type": "array", "items": {"type": "string"}},
    "availability": {
      "type": "object",
      "properties": {
        "checkIn": {"type": "string"},
        "checkOut": {"type": "string"}
      }
    }
  }
}`

// ImportHotels performs the single fetch of the record collection from a
// JSON file or HTTP endpoint and replaces the catalog with it. Documents
// failing schema validation are skipped with a log line rather than
// aborting the import.
func ImportHotels(pathOrURL string) (int, error) {
	fmt.Printf("➡️ Importing catalog from source: %s\n", pathOrURL)

	raw, err := readSource(pathOrURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	var documents []json.RawMessage
	if err := json.Unmarshal(raw, &documents); err != nil {
		return 0, fmt.Errorf("%w: not a JSON collection: %v", ErrSourceUnavailable, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(hotelSchema)
	imported := 0
	skipped := 0

	for i, doc := range documents {
		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
		if err != nil || !result.Valid() {
			skipped++
			if skipped <= 3 {
				fmt.Printf("❌ Skipping invalid document %d from %s\n", i, pathOrURL)
			}
			continue
		}

		var h model.Hotel
		if err := json.Unmarshal(doc, &h); err != nil {
			skipped++
			continue
		}
		if err := SaveHotel(h); err != nil {
			return imported, fmt.Errorf("failed to store hotel %q: %w", h.Name, err)
		}
		imported++
	}

	fmt.Printf("📄 Catalog import done: %d records imported, %d skipped from %s\n",
		imported, skipped, pathOrURL)
	return imported, nil
}

func readSource(pathOrURL string) ([]byte, error) {
	if strings.HasPrefix(pathOrURL, "http") {
		resp, err := http.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to GET source: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("source returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	return data, nil
}
