package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"multimodel/internal/format"
)

var familyCmd = &cobra.Command{
	Use:   "family",
	Short: "Family-friendly homes query",
	Long:  "Executes the comprehensive multi-model query for family-friendly homes in San Francisco.",
	RunE:  runFamily,
}

func runFamily(cmd *cobra.Command, args []string) error {
	fmt.Println(banner(
		"OceanBase Family-Friendly Homes Query",
		"",
		"This command executes a comprehensive multi-model query to find",
		"family-friendly homes in San Francisco.",
	))

	fmt.Println("\n🔍 Executing comprehensive multi-model query...")
	fmt.Printf("\nQuery:\n%s\n", familyQuery)

	result := sim.UseMCPTool(cfg.MCP.ServerName, cfg.MCP.ToolName, map[string]any{"query": familyQuery})
	fmt.Println("✅ Query executed successfully using OceanBase MCP")

	if len(result.Data) == 0 {
		fmt.Println("No results found matching your criteria.")
		return nil
	}

	fmt.Println("\n📊 Query Results:")
	fmt.Println()
	fmt.Println(format.Table(result.Data, cfg.Display.TableMaxWidth))

	fmt.Println("\n🔍 Query Explanation:")
	fmt.Println()
	fmt.Println(familyExplanation())

	fmt.Println("\n✅ This demonstrates how OceanBase enables GenAI agents to efficiently answer complex")
	fmt.Println("questions that require different data types, making it an attractive solution for")
	fmt.Println("AWS Solution Architects looking to simplify their data architecture.")

	return nil
}

func familyExplanation() string {
	return strings.Join([]string{
		"This query demonstrates OceanBase's ability to combine multiple data models in a single query:",
		"",
		"1. **SQL (Relational Data)**",
		"   - Standard SQL syntax for selecting columns from a table",
		"   - Filtering by property attributes (price < $800,000, bedrooms ≥ 3)",
		"   - Ordering results by multiple criteria",
		"   - Using functions like SUBSTRING for text manipulation",
		"",
		"2. **JSON (NoSQL)**",
		"   - Extracting values from nested JSON structures using `JSON_EXTRACT(features, '$.bedrooms')`",
		"   - Querying JSON arrays for specific values using `JSON_CONTAINS(JSON_EXTRACT(features, '$.amenities'), '\"fenced yard\"')`",
		"   - Using OR conditions for JSON array contents",
		"   - Displaying JSON data in a structured format",
		"",
		"3. **Geospatial (GIS)**",
		"   - Creating a 6-mile radius buffer around San Francisco using `ST_Buffer(ST_GeomFromText('POINT(-122.4194 37.7749)'), 10000)`",
		"   - Finding properties within that geographic boundary using `ST_Contains()`",
		"   - Calculating exact distances in kilometers using `ST_Distance() / 1000`",
		"   - Sorting properties by proximity to San Francisco",
		"",
		"4. **Full-Text Search**",
		"   - Searching property descriptions for specific terms using `description LIKE '%safe neighborhood%'`",
		"   - Finding properties described with particular attributes",
		"   - Enabling natural language queries on text data",
		"",
		"5. **Vector Similarity Search**",
		"   - Implementing a scoring mechanism to rank properties by conceptual similarity",
		"   - Using `CASE WHEN description LIKE '%walkability%' OR description LIKE '%walk score%' THEN 2 ...`",
		"   - Sorting results by similarity score to prioritize properties matching the desired concept",
		"",
		"This demonstrates how OceanBase enables GenAI agents to efficiently answer complex questions",
		"that require different data types, making it an attractive solution for AWS Solution",
		"Architects looking to simplify their data architecture.",
	}, "\n")
}
