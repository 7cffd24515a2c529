package listing

import (
	"sync"
	"time"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// Session owns one listing state triple together with the record collection
// it projects. All mutation goes through Dispatch; readers get immutable
// derived snapshots from View. The mutex is the single-owner rule of the
// interaction model: there is never concurrent mutation of the triple.
type Session struct {
	mu     sync.Mutex
	hotels []model.Hotel
	state  State

	search *Debouncer
}

// SessionOption configures a new session
type SessionOption func(*Session)

// WithSearchDebounce routes SetSearch transitions through a trailing-edge
// debouncer so per-keystroke updates coalesce into one recomputation
func WithSearchDebounce(delay time.Duration) SessionOption {
	return func(s *Session) {
		s.search = NewDebouncer(delay, func(value string) {
			s.apply(SetSearch{Search: value})
		})
	}
}

// NewSession creates a session over a hotel collection with default state.
// The price bounds backing the "full range" defaults are taken from the
// collection itself.
func NewSession(hotels []model.Hotel, opts ...SessionOption) *Session {
	s := &Session{
		hotels: hotels,
		state:  DefaultState(priceBounds(hotels)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies one transition. With a search debouncer configured,
// SetSearch is deferred until typing quiesces; everything else applies
// synchronously.
func (s *Session) Dispatch(action Action) {
	if search, ok := action.(SetSearch); ok && s.search != nil {
		s.search.Update(search.Search)
		return
	}
	s.apply(action)
}

func (s *Session) apply(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
}

// View derives the current filtered, sorted, paginated projection
func (s *Session) View() View {
	s.mu.Lock()
	hotels, state := s.hotels, s.state
	s.mu.Unlock()
	return DeriveView(hotels, state)
}

// State returns a copy of the current state triple
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ReplaceRecords swaps in a late-arriving record collection. The filter
// state survives the swap; the price bounds follow the new collection so a
// later reset covers its full range. A price filter still sitting at the
// old full range follows the new bounds too, so records outside the old
// range are not silently excluded; a user-narrowed range stays as set.
func (s *Session) ReplaceRecords(hotels []model.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bounds := priceBounds(hotels)
	if s.state.Filters.PriceMin == s.state.Bounds.Min &&
		s.state.Filters.PriceMax == s.state.Bounds.Max {
		s.state.Filters.PriceMin = bounds.Min
		s.state.Filters.PriceMax = bounds.Max
	}
	s.hotels = hotels
	s.state.Bounds = bounds
}

// Close cancels any pending debounced search so no timer outlives the
// session
func (s *Session) Close() {
	if s.search != nil {
		s.search.Stop()
	}
}

// priceBounds finds the full price range of a collection; an empty catalog
// falls back to a zero range
func priceBounds(hotels []model.Hotel) PriceBounds {
	if len(hotels) == 0 {
		return PriceBounds{}
	}
	bounds := PriceBounds{Min: hotels[0].Price, Max: hotels[0].Price}
	for _, h := range hotels[1:] {
		if h.Price < bounds.Min {
			bounds.Min = h.Price
		}
		if h.Price > bounds.Max {
			bounds.Max = h.Price
		}
	}
	return bounds
}
