package handler_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fi1osof/hotels-booking-demo/internal/api"
	"github.com/Fi1osof/hotels-booking-demo/internal/engine"
	"github.com/Fi1osof/hotels-booking-demo/internal/listing"
	"github.com/Fi1osof/hotels-booking-demo/internal/model"
	"github.com/Fi1osof/hotels-booking-demo/internal/store"
	"github.com/Fi1osof/hotels-booking-demo/pkg/router"
)

// newTestServer initializes a seeded catalog in a temp database and returns
// the fully wired router
func newTestServer(t *testing.T) *router.Router {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "catalog_test.db")
	require.NoError(t, store.InitDB(dbPath))
	t.Cleanup(func() { store.CloseDB() })

	_, err := store.SeedHotels()
	require.NoError(t, err)

	r := router.New()
	api.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *router.Router, method, path, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestGetHotels(t *testing.T) {
	r := newTestServer(t)

	var hotels []model.Hotel
	rec := doJSON(t, r, http.MethodGet, "/api/v1/hotels", "", &hotels)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, hotels, 12)
	assert.Equal(t, "Grand Palace Hotel", hotels[0].Name)
	assert.Equal(t, []string{"wifi", "pool", "spa", "breakfast"}, hotels[0].Amenities)
}

func TestGetStatistics(t *testing.T) {
	r := newTestServer(t)

	var summary engine.Summary
	rec := doJSON(t, r, http.MethodGet, "/api/v1/hotels/stats", "", &summary)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, summary.TotalHotels)
	assert.Equal(t, 45.0, summary.PriceRange.Min)
	assert.Equal(t, 480.0, summary.PriceRange.Max)

	// Cities ranked by average price, most expensive first
	require.Len(t, summary.ByCity, 4)
	assert.Equal(t, "Dubai", summary.ByCity[0].Key)
	assert.Equal(t, "Bangkok", summary.ByCity[3].Key)

	// Every seed hotel has wifi
	require.NotEmpty(t, summary.TopAmenities)
	assert.Equal(t, "wifi", summary.TopAmenities[0].Amenity)
	assert.Equal(t, 12, summary.TopAmenities[0].Count)
}

func TestTransformHotels(t *testing.T) {
	r := newTestServer(t)

	spec := `{
		"groupBy": "city",
		"aggregations": {"price": "avg"},
		"sortBy": {"field": "price", "order": "desc"}
	}`

	var results []engine.GroupResult
	rec := doJSON(t, r, http.MethodPost, "/api/v1/hotels/transform", spec, &results)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, results, 4)
	assert.Equal(t, "Dubai", results[0].Key)
	require.NotNil(t, results[0].Aggregates["price"])
	assert.InDelta(t, 240.0, *results[0].Aggregates["price"], 0.01)
}

func TestTransformHotelsQueryFilter(t *testing.T) {
	r := newTestServer(t)

	spec := `{"groupBy": "city", "aggregations": {"price": "sum"}}`

	var results []engine.GroupResult
	rec := doJSON(t, r, http.MethodPost, "/api/v1/hotels/transform?city=Bangkok", spec, &results)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, results, 1)
	assert.Equal(t, "Bangkok", results[0].Key)
	assert.Equal(t, 3, results[0].Count)
	require.NotNil(t, results[0].Aggregates["price"])
	assert.InDelta(t, 250.0, *results[0].Aggregates["price"], 0.01)
}

func TestTransformHotelsRejectsInvalidSpec(t *testing.T) {
	r := newTestServer(t)

	cases := []string{
		`{"aggregations": {"price": "median"}}`, // unknown aggregation kind
		`{"groupBy": 42}`,                       // wrong groupBy type
		`{"groupBy": "city", "extra": true}`,    // unknown field
		`not json at all`,
	}
	for _, body := range cases {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/hotels/transform", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "spec %s", body)
	}
}

func TestSessionLifecycle(t *testing.T) {
	r := newTestServer(t)

	var created struct {
		SessionID string       `json:"sessionID"`
		View      listing.View `json:"view"`
	}
	rec := doJSON(t, r, http.MethodPost, "/api/v1/sessions", "", &created)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, created.SessionID)

	assert.Equal(t, 12, created.View.TotalResults)
	assert.Equal(t, 2, created.View.TotalPages)
	assert.Equal(t, 1, created.View.Page)
	assert.Len(t, created.View.Items, 10)

	base := "/api/v1/sessions/" + created.SessionID

	// Narrow to premium hotels
	var view listing.View
	rec = doJSON(t, r, http.MethodPost, base+"/actions",
		`{"type":"setMinRating","payload":{"rating":4.5}}`, &view)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, view.TotalResults)
	assert.Equal(t, 1, view.ActiveFiltersCount)

	// Jumping past the last page leaves the items empty
	rec = doJSON(t, r, http.MethodPost, base+"/actions",
		`{"type":"setPage","payload":{"page":5}}`, &view)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, view.Items)
	assert.Equal(t, 5, view.Page)

	// The view endpoint reflects the same state
	rec = doJSON(t, r, http.MethodGet, base+"/view", "", &view)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, view.TotalResults)

	// Close and verify it is gone
	rec = doJSON(t, r, http.MethodDelete, base, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, base+"/view", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionActionErrors(t *testing.T) {
	r := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/sessions/nonexistent/view", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/v1/sessions/nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var created struct {
		SessionID string `json:"sessionID"`
	}
	rec = doJSON(t, r, http.MethodPost, "/api/v1/sessions", "", &created)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+created.SessionID+"/actions",
		`{"type":"teleport"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
