package service

import "multimodel/internal/model"

// SQLRegistry returns the fixture rules for the simulated execute_sql tool,
// keyed on the SQL text itself. Registration order encodes specificity: the
// five-condition luxury waterfront rule comes before the two-condition one
// that any query satisfying it would also match.
func SQLRegistry() *Registry {
	return NewRegistry(
		FixtureRule{
			Name: "list-ten-properties",
			When: All(
				HasPrefix("select"),
				Contains("property_id, address, price from unified_properties"),
			),
			Result: tenProperties(),
		},
		FixtureRule{
			Name: "luxury-waterfront-all-conditions",
			When: All(
				HasPrefix("select"),
				ContainsAll("json_extract", "bedrooms", "json_contains", "pool", "home theater"),
			),
			Result: luxuryWaterfront(),
		},
		FixtureRule{
			Name: "luxury-waterfront-seattle",
			When: All(
				HasPrefix("select"),
				ContainsAll("luxury waterfront", "seattle"),
			),
			Result: luxuryWaterfront(),
		},
		FixtureRule{
			Name: "family-friendly-san-francisco",
			When: All(
				HasPrefix("select"),
				ContainsAll("family-friendly", "san francisco"),
			),
			Result: familyFriendly(),
		},
	)
}

// DemoRegistry returns the fixture rules for the interactive menu, keyed on
// the human-readable query description rather than the SQL text.
func DemoRegistry() *Registry {
	return NewRegistry(
		FixtureRule{Name: "investment-properties", When: Contains("investment"), Result: investmentResults()},
		FixtureRule{Name: "json-amenities", When: Contains("amenities"), Result: amenitiesResults()},
		FixtureRule{Name: "fulltext-description", When: Contains("description"), Result: descriptionResults()},
		FixtureRule{Name: "spatial-location", When: Contains("location"), Result: locationResults()},
		FixtureRule{Name: "vector-similarity", When: Contains("vector"), Result: vectorResults()},
	)
}

func tenProperties() []model.Record {
	return []model.Record{
		{"property_id": 1, "address": "123 Waterfront Ave, Seattle, WA", "price": "1500000.00"},
		{"property_id": 2, "address": "456 Family Lane, San Francisco, CA", "price": "750000.00"},
		{"property_id": 3, "address": "789 Investment Blvd, Portland, OR", "price": "450000.00"},
		{"property_id": 4, "address": "101 Sustainable Way, Rural Portland, OR", "price": "850000.00"},
		{"property_id": 5, "address": "555 Beach Dr, Malibu, CA", "price": "3200000.00"},
		{"property_id": 6, "address": "222 Historic St, Boston, MA", "price": "1750000.00"},
		{"property_id": 7, "address": "333 Pet Haven Ln, Chicago, IL", "price": "425000.00"},
		{"property_id": 8, "address": "444 Retirement Dream Rd, Phoenix, AZ", "price": "550000.00"},
		{"property_id": 9, "address": "777 Innovation Dr, San Jose, CA", "price": "1850000.00"},
		{"property_id": 10, "address": "888 College View Dr, Berkeley, CA", "price": "1250000.00"},
	}
}

func luxuryWaterfront() []model.Record {
	return []model.Record{
		{
			"property_id":         1,
			"address":             "123 Waterfront Ave, Seattle, WA",
			"price":               "1500000.00",
			"bedrooms":            "5",
			"amenities":           `["pool", "home theater", "garden", "fireplace", "smart home"]`,
			"description_excerpt": "Experience the epitome of luxury waterfront living in this stunning 5-bedroom modern minimalist architecture masterpiece in Seattle. This property features panoramic views of the Puget Sound, a private pool, home theater, and smart home technology throughout.",
			"distance_km":         "0.0000",
			"vector_score":        "3",
		},
	}
}

func familyFriendly() []model.Record {
	return []model.Record{
		{
			"property_id":         2,
			"address":             "456 Family Lane, San Francisco, CA",
			"price":               "750000.00",
			"bedrooms":            "4",
			"amenities":           `["fenced yard", "playground", "security system", "garden"]`,
			"description_excerpt": "Welcome to this charming family-friendly home in a safe neighborhood of San Francisco. This 4-bedroom property is perfect for families with its fenced yard, playground, and proximity to top-rated schools.",
			"distance_km":         "0.0000",
			"vector_score":        "2",
		},
	}
}

func investmentResults() []model.Record {
	return []model.Record{
		{
			"id":                    1,
			"address":               "123 Mountain View Cabin",
			"city":                  "Leavenworth",
			"state":                 "WA",
			"price":                 950000.00,
			"bedrooms":              4,
			"bathrooms":             3,
			"property_type":         "Cabin",
			"amenities":             []string{"hot tub", "fireplace", "mountain view", "deck", "game room"},
			"location":              "POINT(-120.6615 47.5962)",
			"distance_km":           125.26,
			"description":           "Luxury vacation rental property in the picturesque Bavarian-styled town of Leavenworth...",
			"investment_similarity": 0.48,
		},
		{
			"id":                    2,
			"address":               "456 Pine St",
			"city":                  "Seattle",
			"state":                 "WA",
			"price":                 750000.00,
			"bedrooms":              4,
			"bathrooms":             3,
			"property_type":         "House",
			"amenities":             []string{"fireplace", "balcony", "parking", "pool"},
			"location":              "POINT(-122.3321 47.6062)",
			"distance_km":           0.0,
			"description":           "Experience the epitome of luxury living in this magnificent 4-bedroom home in Seattle...",
			"investment_similarity": 0.98,
		},
	}
}

func amenitiesResults() []model.Record {
	return []model.Record{
		{
			"id":        1,
			"address":   "123 Mountain View Cabin",
			"city":      "Leavenworth",
			"state":     "WA",
			"price":     950000.00,
			"amenities": []string{"hot tub", "fireplace", "mountain view", "deck", "game room"},
		},
		{
			"id":        2,
			"address":   "456 Pine St",
			"city":      "Seattle",
			"state":     "WA",
			"price":     750000.00,
			"amenities": []string{"fireplace", "balcony", "parking", "pool"},
		},
	}
}

func descriptionResults() []model.Record {
	return []model.Record{
		{
			"id":          1,
			"address":     "123 Mountain View Cabin",
			"city":        "Leavenworth",
			"state":       "WA",
			"price":       950000.00,
			"description": "Luxury vacation rental property in the picturesque Bavarian-styled town of Leavenworth...",
		},
		{
			"id":          2,
			"address":     "456 Pine St",
			"city":        "Seattle",
			"state":       "WA",
			"price":       750000.00,
			"description": "Experience the epitome of luxury living in this magnificent 4-bedroom home in Seattle...",
		},
	}
}

func locationResults() []model.Record {
	return []model.Record{
		{
			"id":          2,
			"address":     "456 Pine St",
			"city":        "Seattle",
			"state":       "WA",
			"distance_km": 0.0,
		},
		{
			"id":          1,
			"address":     "123 Mountain View Cabin",
			"city":        "Leavenworth",
			"state":       "WA",
			"distance_km": 125.26,
		},
	}
}

func vectorResults() []model.Record {
	return []model.Record{
		{
			"id":                    1,
			"address":               "123 Mountain View Cabin",
			"city":                  "Leavenworth",
			"state":                 "WA",
			"price":                 950000.00,
			"investment_similarity": 0.48,
		},
		{
			"id":                    2,
			"address":               "456 Pine St",
			"city":                  "Seattle",
			"state":                 "WA",
			"price":                 750000.00,
			"investment_similarity": 0.98,
		},
	}
}
