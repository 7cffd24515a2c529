package handler

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Fi1osof/hotels-booking-demo/internal/listing"
	"github.com/Fi1osof/hotels-booking-demo/internal/store"
	"github.com/Fi1osof/hotels-booking-demo/pkg/router"
)

// Listing sessions are kept in memory only; filter state does not survive a
// restart by design
var (
	sessionsMu sync.RWMutex
	sessions   = make(map[string]*listing.Session)

	// SearchDebounce is the delay applied to session search input;
	// overridable from main before the server starts
	SearchDebounce = listing.DefaultSearchDebounce
)

func lookupSession(id string) *listing.Session {
	sessionsMu.RLock()
	defer sessionsMu.RUnlock()
	return sessions[id]
}

// CreateSession opens a new listing session over the current catalog
// @Summary Create a listing session
// @Description Create a session holding filter/sort/page state over the catalog; returns its id and initial view
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string]interface{} "Session created"
// @Failure 503 {object} map[string]interface{} "Catalog unavailable"
// @Router /sessions [post]
func CreateSession(w http.ResponseWriter, r *http.Request) {
	hotels, err := store.ListHotels()
	if err != nil {
		http.Error(w, "Catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	session := listing.NewSession(hotels, listing.WithSearchDebounce(SearchDebounce))
	sessionID := uuid.New().String()

	sessionsMu.Lock()
	sessions[sessionID] = session
	sessionsMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessionID": sessionID,
		"view":      session.View(),
		"createdAt": time.Now().UTC(),
	})
}

// GetSessionView returns the derived view of a session
// @Summary Get the session view
// @Description Return the filtered, sorted, paginated projection plus counts for one session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} listing.View "Derived view"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id}/view [get]
func GetSessionView(w http.ResponseWriter, r *http.Request) {
	sessionID := router.PathParam(r.URL.Path, "/api/v1/sessions/*/view")
	session := lookupSession(sessionID)
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, session.View())
}

// ApplySessionAction dispatches one state transition to a session
// @Summary Apply a listing transition
// @Description Dispatch an action envelope like {"type":"setSearch","payload":{"search":"Bangkok"}} and return the resulting view
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param action body object true "Action envelope"
// @Success 200 {object} listing.View "View after the transition"
// @Failure 400 {object} map[string]interface{} "Malformed action"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id}/actions [post]
func ApplySessionAction(w http.ResponseWriter, r *http.Request) {
	sessionID := router.PathParam(r.URL.Path, "/api/v1/sessions/*/actions")
	session := lookupSession(sessionID)
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	action, err := listing.DecodeAction(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session.Dispatch(action)
	writeJSON(w, http.StatusOK, session.View())
}

// CloseSession removes a session and cancels its pending timers
// @Summary Close a listing session
// @Description Drop the session state; any pending debounced search is cancelled and never fires
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session closed"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id} [delete]
func CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := router.PathParam(r.URL.Path, "/api/v1/sessions/*")

	sessionsMu.Lock()
	session := sessions[sessionID]
	delete(sessions, sessionID)
	sessionsMu.Unlock()

	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	session.Close()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Session closed",
		"sessionID": sessionID,
	})
}
