package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// Sentinels used as key parts when a group-by path resolves to nothing or
// to an explicit null
const (
	missingKeyPart = "undefined"
	nullKeyPart    = "null"
)

var (
	// ErrInvalidRecords is returned when the input collection is absent
	ErrInvalidRecords = errors.New("records must be a non-nil collection")
	// ErrInvalidSpec is returned when the transform spec is absent
	ErrInvalidSpec = errors.New("transform spec is required")
)

// AggregationKind names one per-field aggregation function
type AggregationKind string

const (
	AggSum   AggregationKind = "sum"
	AggAvg   AggregationKind = "avg"
	AggMin   AggregationKind = "min"
	AggMax   AggregationKind = "max"
	AggCount AggregationKind = "count"
)

// GroupBy is an ordered list of field paths forming a composite group key.
// It accepts both a single JSON string and an array of strings on the wire.
type GroupBy []string

func (g *GroupBy) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*g = GroupBy{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("groupBy must be a string or an array of strings: %w", err)
	}
	*g = many
	return nil
}

func (g GroupBy) MarshalJSON() ([]byte, error) {
	if len(g) == 1 {
		return json.Marshal(g[0])
	}
	return json.Marshal([]string(g))
}

// SortRule orders group results by one aggregated field
type SortRule struct {
	Field string          `json:"field"`
	Order model.SortOrder `json:"order"`
}

// TransformSpec configures one Transform call
type TransformSpec struct {
	GroupBy      GroupBy                    `json:"groupBy"`
	Aggregations map[string]AggregationKind `json:"aggregations"`
	SortBy       *SortRule                  `json:"sortBy,omitempty"`
	// Filter drops records before grouping; nil keeps everything
	Filter func(model.GenericRecord) bool `json:"-"`
}

// GroupResult is one group of the transform output. An aggregate is nil when
// the group had zero numeric values under that field, which keeps "no data"
// distinguishable from a real zero.
type GroupResult struct {
	Key        string                `json:"key"`
	Aggregates map[string]*float64   `json:"aggregates"`
	Items      []model.GenericRecord `json:"items"`
	Count      int                   `json:"count"`
}

// Transform groups records by the spec's composite key and computes the
// requested aggregates per group. It is a pure function: one linear grouping
// pass over the (optionally pre-filtered) input, with a key->bucket map local
// to the call. Group order is first-appearance order unless SortBy is set,
// and item order inside a group follows the input.
func Transform(records []model.GenericRecord, spec *TransformSpec) ([]GroupResult, error) {
	if records == nil {
		return nil, ErrInvalidRecords
	}
	if spec == nil {
		return nil, ErrInvalidSpec
	}

	filtered := records
	if spec.Filter != nil {
		filtered = make([]model.GenericRecord, 0, len(records))
		for _, rec := range records {
			if spec.Filter(rec) {
				filtered = append(filtered, rec)
			}
		}
	}

	// Group items - O(n)
	buckets := make(map[string][]model.GenericRecord)
	keyOrder := make([]string, 0)

	for _, rec := range filtered {
		key := compositeKey(rec, spec.GroupBy)
		if _, exists := buckets[key]; !exists {
			keyOrder = append(keyOrder, key)
		}
		buckets[key] = append(buckets[key], rec)
	}

	results := make([]GroupResult, 0, len(keyOrder))
	for _, key := range keyOrder {
		items := buckets[key]
		aggregates := make(map[string]*float64, len(spec.Aggregations))

		for field, kind := range spec.Aggregations {
			values := make([]float64, 0, len(items))
			for _, item := range items {
				raw, ok := Lookup(item, field)
				if !ok {
					continue
				}
				if num, ok := numericValue(raw); ok {
					values = append(values, num)
				}
			}
			aggregates[field] = aggregate(values, kind)
		}

		results = append(results, GroupResult{
			Key:        key,
			Aggregates: aggregates,
			Items:      items,
			Count:      len(items),
		})
	}

	if spec.SortBy != nil {
		sortResults(results, *spec.SortBy)
	}

	return results, nil
}

// compositeKey joins the resolved key parts with "|". A path that resolves
// to nothing serializes to "undefined", an explicit null value to "null".
func compositeKey(rec model.GenericRecord, groupBy GroupBy) string {
	parts := make([]string, len(groupBy))
	for i, path := range groupBy {
		value, ok := Lookup(rec, path)
		switch {
		case !ok:
			parts[i] = missingKeyPart
		case value == nil:
			parts[i] = nullKeyPart
		default:
			parts[i] = fmt.Sprintf("%v", value)
		}
	}
	return strings.Join(parts, "|")
}

// aggregate computes one aggregation over the numeric values found in a
// group. An empty value set yields nil for every kind, sum included;
// callers rely on nil meaning "no data" rather than a zero that happens
// to look like one.
func aggregate(values []float64, kind AggregationKind) *float64 {
	if len(values) == 0 {
		return nil
	}

	var out float64
	switch kind {
	case AggSum:
		for _, v := range values {
			out += v
		}
	case AggAvg:
		var sum float64
		for _, v := range values {
			sum += v
		}
		out = sum / float64(len(values))
	case AggMin:
		out = values[0]
		for _, v := range values[1:] {
			if v < out {
				out = v
			}
		}
	case AggMax:
		out = values[0]
		for _, v := range values[1:] {
			if v > out {
				out = v
			}
		}
	case AggCount:
		out = float64(len(values))
	default:
		return nil
	}
	return &out
}

// sortResults orders groups by one aggregate, nil counting as 0 for the
// comparison only
func sortResults(results []GroupResult, rule SortRule) {
	value := func(r GroupResult) float64 {
		if agg := r.Aggregates[rule.Field]; agg != nil {
			return *agg
		}
		return 0
	}

	sort.SliceStable(results, func(i, j int) bool {
		if rule.Order == model.OrderDesc {
			return value(results[i]) > value(results[j])
		}
		return value(results[i]) < value(results[j])
	})
}
