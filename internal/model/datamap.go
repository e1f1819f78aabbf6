package model

// DataMap describes the schema of the simulated database. The interactive
// demo shows it to the user so the canned queries have context.
type DataMap struct {
	Database string        `json:"database"`
	Tables   []TableSchema `json:"tables"`
}

// TableSchema describes a single table in the data map.
type TableSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Columns     []ColumnSchema `json:"columns"`
}

// ColumnSchema describes a single column in the data map.
type ColumnSchema struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RealEstateDataMap returns the schema of the real_estate_investments demo
// database. The property_listings table spans all five data models: plain
// relational columns, a JSON features document, a geospatial point, free
// text, and an investment profile vector.
func RealEstateDataMap() DataMap {
	return DataMap{
		Database: "real_estate_investments",
		Tables: []TableSchema{
			{
				Name:        "property_listings",
				Description: "Comprehensive property information for investment analysis",
				Columns: []ColumnSchema{
					{Name: "id", Type: "INT", Description: "Unique property identifier"},
					{Name: "address", Type: "VARCHAR(255)", Description: "Property street address"},
					{Name: "city", Type: "VARCHAR(100)", Description: "Property city location"},
					{Name: "state", Type: "VARCHAR(50)", Description: "Property state or province"},
					{Name: "price", Type: "DECIMAL(12, 2)", Description: "Property listing price"},
					{Name: "features", Type: "JSON", Description: "Property features including bedrooms, bathrooms, amenities"},
					{Name: "location", Type: "POINT", Description: "Geospatial coordinates of the property"},
					{Name: "description", Type: "TEXT", Description: "Detailed property description"},
					{Name: "embedding", Type: "VECTOR(4)", Description: "Investment profile vector"},
				},
			},
		},
	}
}
