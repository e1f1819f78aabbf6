package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The menu registry classifies the human-readable query description, not
// the SQL text.
func TestDemoRegistry_DescriptionDispatch(t *testing.T) {
	d := NewDispatcher(DemoRegistry())

	tests := []struct {
		name        string
		description string
		records     int
		field       string
	}{
		{
			name:        "Investment query returns full records",
			description: "Investment Properties Query (All Data Types)",
			records:     2,
			field:       "investment_similarity",
		},
		{
			name:        "Amenities query",
			description: "JSON Amenities Query",
			records:     2,
			field:       "amenities",
		},
		{
			name:        "Description query",
			description: "Full-text Description Query",
			records:     2,
			field:       "description",
		},
		{
			name:        "Location query",
			description: "Spatial Location Query",
			records:     2,
			field:       "distance_km",
		},
		{
			name:        "Vector query",
			description: "Vector Similarity Query",
			records:     2,
			field:       "investment_similarity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Dispatch(tt.description)

			assert.Len(t, result.Data, tt.records)
			for _, record := range result.Data {
				assert.Contains(t, record, tt.field)
			}
		})
	}
}

func TestDemoRegistry_UnknownDescription(t *testing.T) {
	d := NewDispatcher(DemoRegistry())

	result := d.Dispatch("Completely Unrelated Query")
	assert.Empty(t, result.Data)
}

// Registration order in the SQL registry must keep the five-condition
// luxury rule ahead of the two-condition one.
func TestSQLRegistry_RuleOrder(t *testing.T) {
	rules := SQLRegistry().Rules()

	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}

	assert.Equal(t, []string{
		"list-ten-properties",
		"luxury-waterfront-all-conditions",
		"luxury-waterfront-seattle",
		"family-friendly-san-francisco",
	}, names)
}
