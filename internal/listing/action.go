package listing

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// Action is one listing state transition. The concrete types form a tagged
// union processed by Reduce; DecodeAction maps the wire form onto it.
type Action interface {
	isAction()
}

type SetSearch struct {
	Search string `json:"search"`
}

type SetPriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ToggleAmenity struct {
	Amenity string `json:"amenity"`
}

type SetMinRating struct {
	Rating float64 `json:"rating"`
}

type SetDateRange struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type SetSort struct {
	Field model.SortField `json:"field"`
	Order model.SortOrder `json:"order"`
}

type SetPage struct {
	Page int `json:"page"`
}

type ResetFilters struct{}

func (SetSearch) isAction()     {}
func (SetPriceRange) isAction() {}
func (ToggleAmenity) isAction() {}
func (SetMinRating) isAction()  {}
func (SetDateRange) isAction()  {}
func (SetSort) isAction()       {}
func (SetPage) isAction()       {}
func (ResetFilters) isAction()  {}

// wireAction is the envelope clients POST to a session
type wireAction struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction parses a wire envelope like
// {"type":"setSearch","payload":{"search":"Bangkok"}} into an Action.
func DecodeAction(data []byte) (Action, error) {
	var envelope wireAction
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed action envelope: %w", err)
	}

	payload := envelope.Payload
	if payload == nil {
		payload = json.RawMessage("{}")
	}

	switch envelope.Type {
	case "setSearch":
		var a SetSearch
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("malformed setSearch payload: %w", err)
		}
		return a, nil
	case "setPriceRange":
		var a SetPriceRange
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("malformed setPriceRange payload: %w", err)
		}
		return a, nil
	case "toggleAmenity":
		var a ToggleAmenity
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("malformed toggleAmenity payload: %w", err)
		}
		return a, nil
	case "setMinRating":
		var a SetMinRating
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("malformed setMinRating payload: %w", err)
		}
		return a, nil
	case "setDateRange":
		var a SetDateRange
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("malformed setDateRange payload: %w", err)
		}
		return a, nil
	case "setSort":
		var a SetSort
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("malformed setSort payload: %w", err)
		}
		return a, nil
	case "setPage":
		var a SetPage
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("malformed setPage payload: %w", err)
		}
		return a, nil
	case "resetFilters":
		return ResetFilters{}, nil
	default:
		return nil, fmt.Errorf("unknown action type: %q", envelope.Type)
	}
}
