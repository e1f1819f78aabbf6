package cli

import (
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// investmentProfile is the premium investment embedding the vector queries
// compare listings against.
var investmentProfile = pgvector.NewVector([]float32{0.75, 0.85, 0.25, 0.65})

// luxuryQuery combines all five data models to find luxury waterfront
// properties within ten miles of downtown Seattle.
const luxuryQuery = `
    SELECT
        property_id,
        address,
        price,
        JSON_EXTRACT(features, '$.bedrooms') AS bedrooms,
        JSON_EXTRACT(features, '$.amenities') AS amenities,
        SUBSTRING(description, 1, 150) as description_excerpt,
        ST_Distance(location, ST_GeomFromText('POINT(-122.3321 47.6062)')) / 1000 as distance_km,
        (CASE WHEN description LIKE '%modern%' AND description LIKE '%minimalist%' THEN 3
              WHEN description LIKE '%modern%' THEN 2
              WHEN description LIKE '%luxury%' THEN 1
              ELSE 0 END) as vector_score
    FROM
        unified_properties
    WHERE
        -- SQL (Relational) conditions
        JSON_EXTRACT(features, '$.bedrooms') >= 4

        -- JSON (NoSQL) conditions
        AND JSON_CONTAINS(JSON_EXTRACT(features, '$.amenities'), '"pool"')
        AND JSON_CONTAINS(JSON_EXTRACT(features, '$.amenities'), '"home theater"')

        -- Geospatial (GIS) conditions
        AND ST_Contains(
            ST_Buffer(
                ST_GeomFromText('POINT(-122.3321 47.6062)'),  -- Seattle
                16093.4  -- 10 miles in meters
            ),
            location
        )

        -- Full-text search conditions
        AND description LIKE '%luxury%'
        AND description LIKE '%waterfront%'
        AND description LIKE '%panoramic view%'

        -- Vector similarity conditions (simulated)
        AND (description LIKE '%modern%' OR description LIKE '%minimalist%')

    ORDER BY
        vector_score DESC,
        distance_km ASC
    `

// familyQuery finds family-friendly homes under $800,000 near downtown San
// Francisco.
const familyQuery = `
    SELECT
        property_id,
        address,
        price,
        JSON_EXTRACT(features, '$.bedrooms') AS bedrooms,
        JSON_EXTRACT(features, '$.amenities') AS amenities,
        SUBSTRING(description, 1, 150) as description_excerpt,
        ST_Distance(location, ST_GeomFromText('POINT(-122.4194 37.7749)')) / 1000 as distance_km,
        (CASE WHEN description LIKE '%walkability%' OR description LIKE '%walk score%' THEN 2
              WHEN description LIKE '%safe%' OR description LIKE '%family%' THEN 1
              ELSE 0 END) as vector_score
    FROM
        unified_properties
    WHERE
        -- SQL (Relational) conditions
        price < 800000
        AND JSON_EXTRACT(features, '$.bedrooms') >= 3

        -- JSON (NoSQL) conditions
        AND (JSON_CONTAINS(JSON_EXTRACT(features, '$.amenities'), '"fenced yard"')
             OR JSON_CONTAINS(JSON_EXTRACT(features, '$.amenities'), '"playground"'))

        -- Geospatial (GIS) conditions
        AND ST_Contains(
            ST_Buffer(
                ST_GeomFromText('POINT(-122.4194 37.7749)'),  -- San Francisco
                10000  -- ~6 miles in meters
            ),
            location
        )

        -- Full-text search conditions
        AND description LIKE '%safe neighborhood%'
        AND description LIKE '%family-friendly%'

        -- Vector similarity conditions (simulated)
        AND (description LIKE '%walkability%' OR description LIKE '%walk score%' OR description LIKE '%family%')

    ORDER BY
        vector_score DESC,
        distance_km ASC
    `

// investmentQuery touches every data model at once: vector similarity, JSON
// filtering, full-text search, spatial distance and plain relational
// columns.
func investmentQuery() string {
	return fmt.Sprintf(`
        SELECT id, address, city, state, price,
               JSON_EXTRACT(features, '$.bedrooms') AS bedrooms,
               JSON_EXTRACT(features, '$.bathrooms') AS bathrooms,
               JSON_EXTRACT(features, '$.property_type') AS property_type,
               JSON_EXTRACT(features, '$.amenities') AS amenities,
               ST_AsText(location) AS location,
               ST_Distance_Sphere(location, ST_GeomFromText('POINT(-122.3321 47.6062)')) / 1000 AS distance_km,
               description,
               VECTOR_DISTANCE(embedding, '%s') AS investment_similarity
        FROM property_listings
        WHERE
            VECTOR_DISTANCE(embedding, '%s') < 1.0
            AND JSON_EXTRACT(features, '$.bedrooms') >= 3
            AND JSON_CONTAINS(features, '"fireplace"', '$.amenities')
            AND MATCH(description) AGAINST('luxury')
            AND ST_Distance_Sphere(location, ST_GeomFromText('POINT(-122.3321 47.6062)')) < 150000
        ORDER BY investment_similarity ASC
        LIMIT 10
        `, investmentProfile.String(), investmentProfile.String())
}

const amenitiesQuery = `
        SELECT id, address, city, state, price, JSON_EXTRACT(features, '$.amenities') AS amenities
        FROM property_listings
        WHERE JSON_CONTAINS(features, '"fireplace"', '$.amenities')
        `

const descriptionQuery = `
        SELECT id, address, city, state, price, description
        FROM property_listings
        WHERE MATCH(description) AGAINST('luxury view')
        `

const locationQuery = `
        SELECT id, address, city, state,
               ST_Distance_Sphere(location, ST_GeomFromText('POINT(-122.3321 47.6062)')) / 1000 AS distance_km
        FROM property_listings
        WHERE ST_Distance_Sphere(location, ST_GeomFromText('POINT(-122.3321 47.6062)')) < 150000
        ORDER BY distance_km ASC
        `

// vectorQuery ranks listings by distance to the investment profile vector.
func vectorQuery() string {
	return fmt.Sprintf(`
        SELECT id, address, city, state, price,
               VECTOR_DISTANCE(embedding, '%s') AS investment_similarity
        FROM property_listings
        WHERE VECTOR_DISTANCE(embedding, '%s') < 1.0
        ORDER BY investment_similarity ASC
        `, investmentProfile.String(), investmentProfile.String())
}
