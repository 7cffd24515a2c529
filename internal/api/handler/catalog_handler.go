package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/Fi1osof/hotels-booking-demo/internal/engine"
	"github.com/Fi1osof/hotels-booking-demo/internal/model"
	"github.com/Fi1osof/hotels-booking-demo/internal/store"
	"github.com/Fi1osof/hotels-booking-demo/pkg/utils"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// GetHotels returns the record collection verbatim
// @Summary List the hotel catalog
// @Description Return every hotel in the catalog, unfiltered; filtering happens client side through listing sessions
// @Tags hotels
// @Produce json
// @Success 200 {array} model.Hotel "Hotel collection"
// @Failure 503 {object} map[string]interface{} "Catalog unavailable"
// @Router /hotels [get]
func GetHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := store.ListHotels()
	if err != nil {
		http.Error(w, "Catalog unavailable", http.StatusServiceUnavailable)
		return
	}
	if hotels == nil {
		hotels = []model.Hotel{}
	}
	writeJSON(w, http.StatusOK, hotels)
}

// GetStatistics returns the aggregated reporting view
// @Summary Catalog statistics
// @Description Overall numbers plus per-city, per-rating-tier groupings and the most common amenities
// @Tags hotels
// @Produce json
// @Success 200 {object} engine.Summary "Statistics summary"
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Failure 503 {object} map[string]interface{} "Catalog unavailable"
// @Router /hotels/stats [get]
func GetStatistics(w http.ResponseWriter, r *http.Request) {
	hotels, err := store.ListHotels()
	if err != nil {
		http.Error(w, "Catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	summary, err := engine.BuildSummary(hotels)
	if err != nil {
		http.Error(w, "Failed to build statistics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// TransformHotels runs the aggregation engine with a client-supplied spec
// @Summary Transform the catalog
// @Description Group and aggregate the catalog according to the posted transform spec. Query parameters become equality pre-filters on record fields.
// @Tags hotels
// @Accept json
// @Produce json
// @Param spec body engine.TransformSpec true "Transform specification"
// @Success 200 {array} engine.GroupResult "Group results"
// @Failure 400 {object} map[string]interface{} "Invalid transform spec"
// @Failure 503 {object} map[string]interface{} "Catalog unavailable"
// @Router /hotels/transform [post]
func TransformHotels(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	// 1. Validate the raw document before decoding
	if err := engine.ValidateSpecJSON(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var spec engine.TransformSpec
	if err := json.Unmarshal(body, &spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	// 2. Query parameters turn into equality pre-filters
	spec.Filter = queryFilter(r)

	// 3. Load the catalog and run the engine
	hotels, err := store.ListHotels()
	if err != nil {
		http.Error(w, "Catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	results, err := engine.Transform(model.Records(hotels), &spec)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidRecords) || errors.Is(err, engine.ErrInvalidSpec) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Transform failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// queryFilter builds an equality pre-filter from request query parameters,
// e.g. ?city=Bangkok keeps only records whose city field equals Bangkok.
// Returns nil when the query is empty so the engine keeps everything.
func queryFilter(r *http.Request) func(model.GenericRecord) bool {
	query := r.URL.Query()
	if len(query) == 0 {
		return nil
	}

	wanted := make(map[string]interface{}, len(query))
	for field, values := range query {
		if len(values) > 0 {
			wanted[field] = utils.ParseValue(values[0])
		}
	}

	return func(rec model.GenericRecord) bool {
		for field, want := range wanted {
			have, ok := engine.Lookup(rec, field)
			if !ok {
				return false
			}
			if fmt.Sprintf("%v", have) != fmt.Sprintf("%v", want) {
				return false
			}
		}
		return true
	}
}
