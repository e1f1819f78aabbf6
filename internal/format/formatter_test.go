package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"multimodel/internal/model"
)

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("a", 250)

	got := Excerpt(long, 100)
	if len(got) != 103 {
		t.Errorf("Expected 100 chars plus ellipsis, got length %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis marker, got %q", got[len(got)-5:])
	}

	// Short text keeps its full prefix; the marker is always appended.
	if got := Excerpt("short", 100); got != "short..." {
		t.Errorf("Unexpected excerpt for short text: %q", got)
	}
}

func TestResults_Empty(t *testing.T) {
	got := Results(nil, "Investment Properties", 100)
	assert.Equal(t, "No properties found matching your criteria.", got)
}

func TestResults_RendersOnlyPresentFields(t *testing.T) {
	records := []model.Record{
		{
			"address": "456 Pine St",
			"city":    "Seattle",
			"state":   "WA",
			"price":   750000.00,
		},
	}

	got := Results(records, "Properties with Fireplace", 100)

	assert.Contains(t, got, "Property 1: 456 Pine St, Seattle, WA")
	assert.Contains(t, got, "Price: $750,000.00")
	assert.NotContains(t, got, "Bedrooms:")
	assert.NotContains(t, got, "Amenities:")
	assert.NotContains(t, got, "Description:")
	assert.NotContains(t, got, "Investment Similarity:")
}

func TestResults_FullRecord(t *testing.T) {
	records := []model.Record{
		{
			"address":               "123 Mountain View Cabin",
			"city":                  "Leavenworth",
			"state":                 "WA",
			"price":                 950000.00,
			"bedrooms":              4,
			"amenities":             []string{"hot tub", "fireplace"},
			"distance_km":           125.26,
			"investment_similarity": 0.48,
			"description":           strings.Repeat("x", 150),
		},
	}

	got := Results(records, "Investment Properties", 100)

	assert.Contains(t, got, "Bedrooms: 4")
	assert.Contains(t, got, "Amenities: hot tub, fireplace")
	assert.Contains(t, got, "Distance from Seattle: 125.26 km")
	assert.Contains(t, got, "Investment Similarity: 0.48 (lower is better)")
	assert.Contains(t, got, "Description: "+strings.Repeat("x", 100)+"...")
	assert.NotContains(t, got, strings.Repeat("x", 101))

	// The combined query gets the multi-model footer.
	assert.Contains(t, got, "OceanBase's multi-model capabilities")
}

func TestResults_AmenitiesFromJSONText(t *testing.T) {
	records := []model.Record{
		{
			"address":   "123 Waterfront Ave, Seattle, WA",
			"amenities": `["pool", "home theater"]`,
		},
	}

	got := Results(records, "JSON Amenities", 100)
	assert.Contains(t, got, "Amenities: pool, home theater")
}

func TestResults_MissingAddressFields(t *testing.T) {
	records := []model.Record{{"price": 1000.0}}

	got := Results(records, "Anything", 100)
	assert.Contains(t, got, "Property 1: N/A, N/A, N/A")
}

func TestColumns_CanonicalOrder(t *testing.T) {
	records := []model.Record{
		{"vector_score": "3", "address": "x", "custom_field": 1},
		{"property_id": 1},
	}

	got := Columns(records)
	assert.Equal(t, []string{"property_id", "address", "vector_score", "custom_field"}, got)
}

func TestTable(t *testing.T) {
	records := []model.Record{
		{"property_id": 1, "address": "123 Waterfront Ave, Seattle, WA", "price": "1500000.00"},
		{"property_id": 2, "address": "456 Family Lane, San Francisco, CA", "price": "750000.00"},
	}

	got := Table(records, 120)

	assert.Contains(t, got, "property_id")
	assert.Contains(t, got, "address")
	assert.Contains(t, got, "123 Waterfront Ave, Seattle, WA")
	assert.Contains(t, got, "750000.00")
}

func TestTable_Empty(t *testing.T) {
	assert.Equal(t, "No results found matching your criteria.", Table(nil, 120))
}

func TestTable_ClipsLongCells(t *testing.T) {
	records := []model.Record{
		{"description_excerpt": strings.Repeat("y", 300)},
	}

	got := Table(records, 120)
	assert.NotContains(t, got, strings.Repeat("y", 121))
	assert.Contains(t, got, strings.Repeat("y", 120)+"...")
}
