// Package format renders query result envelopes for terminal display. The
// renderers have no fixed schema: a record may carry any subset of the
// known fields, and only the fields present are shown.
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"multimodel/internal/model"
	"multimodel/internal/utils"
)

// columnOrder is the canonical display order for the fields the fixtures
// use. Fields outside this list are appended alphabetically.
var columnOrder = []string{
	"property_id",
	"id",
	"address",
	"city",
	"state",
	"price",
	"bedrooms",
	"bathrooms",
	"property_type",
	"amenities",
	"location",
	"description_excerpt",
	"description",
	"distance_km",
	"vector_score",
	"investment_similarity",
}

// Columns derives the display column order from the fields present in the
// records.
func Columns(records []model.Record) []string {
	present := make(map[string]bool)
	for _, r := range records {
		for k := range r {
			present[k] = true
		}
	}

	columns := make([]string, 0, len(present))
	for _, c := range columnOrder {
		if present[c] {
			columns = append(columns, c)
			delete(present, c)
		}
	}

	rest := make([]string, 0, len(present))
	for k := range present {
		rest = append(rest, k)
	}
	sort.Strings(rest)

	return append(columns, rest...)
}

// Results renders records as prose blocks, one per property, the way the
// interactive demo narrates them. Only the fields present in each record
// are rendered; descriptions are cut to excerptLen characters followed by
// an ellipsis marker.
func Results(records []model.Record, queryType string, excerptLen int) string {
	if len(records) == 0 {
		return "No properties found matching your criteria."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n=== %s Results ===\n\n", queryType)

	for i, prop := range records {
		fmt.Fprintf(&sb, "Property %d: %s, %s, %s\n",
			i+1, stringField(prop, "address"), stringField(prop, "city"), stringField(prop, "state"))

		if price, ok := numberField(prop, "price"); ok {
			fmt.Fprintf(&sb, "Price: $%s\n", utils.FormatMoney(price))
		}

		if bedrooms, ok := prop["bedrooms"]; ok {
			fmt.Fprintf(&sb, "Bedrooms: %v\n", bedrooms)
		}

		if amenities, ok := prop["amenities"]; ok {
			if list := utils.StringList(amenities); list != nil {
				fmt.Fprintf(&sb, "Amenities: %s\n", strings.Join(list, ", "))
			} else {
				fmt.Fprintf(&sb, "Amenities: %v\n", amenities)
			}
		}

		if distance, ok := numberField(prop, "distance_km"); ok {
			fmt.Fprintf(&sb, "Distance from Seattle: %.2f km\n", distance)
		}

		if similarity, ok := numberField(prop, "investment_similarity"); ok {
			fmt.Fprintf(&sb, "Investment Similarity: %.2f (lower is better)\n", similarity)
		}

		if description, ok := prop["description"].(string); ok {
			fmt.Fprintf(&sb, "Description: %s\n", Excerpt(description, excerptLen))
		}

		sb.WriteString("\n")
	}

	if queryType == "Investment Properties" {
		sb.WriteString("\nThis search demonstrates OceanBase's multi-model capabilities by combining:\n")
		sb.WriteString("1. Vector search for investment profile matching\n")
		sb.WriteString("2. JSON filtering for property features\n")
		sb.WriteString("3. Full-text search for property descriptions\n")
		sb.WriteString("4. Spatial search for location-based filtering\n")
		sb.WriteString("5. Traditional relational data for basic property information\n")
	}

	return sb.String()
}

// Excerpt cuts free text to a bounded prefix followed by an ellipsis
// marker.
func Excerpt(text string, limit int) string {
	runes := []rune(text)
	if limit > 0 && len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + "..."
}

func stringField(r model.Record, key string) string {
	v, ok := r[key]
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%v", v)
}

func numberField(r model.Record, key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
