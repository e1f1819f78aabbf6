package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"multimodel/internal/format"
)

var luxuryCmd = &cobra.Command{
	Use:   "luxury",
	Short: "Luxury waterfront properties query",
	Long:  "Executes the comprehensive multi-model query for luxury waterfront properties in Seattle.",
	RunE:  runLuxury,
}

func runLuxury(cmd *cobra.Command, args []string) error {
	fmt.Println(banner(
		"OceanBase Luxury Waterfront Properties Query",
		"",
		"This command executes a comprehensive multi-model query to find",
		"luxury waterfront properties in Seattle.",
	))

	fmt.Println("\n🔍 Executing comprehensive multi-model query...")
	fmt.Printf("\nQuery:\n%s\n", luxuryQuery)

	result := sim.UseMCPTool(cfg.MCP.ServerName, cfg.MCP.ToolName, map[string]any{"query": luxuryQuery})
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
	fmt.Println(luxuryExplanation())

	fmt.Println("\n✅ This demonstrates how OceanBase enables GenAI agents to efficiently answer complex")
	fmt.Println("questions that require different data types, making it an attractive solution for")
	fmt.Println("AWS Solution Architects looking to simplify their data architecture.")

	return nil
}

func luxuryExplanation() string {
	return strings.Join([]string{
		"This query demonstrates OceanBase's ability to combine multiple data models in a single query:",
		"",
		"1. **SQL (Relational Data)**",
		"   - Standard SQL syntax for selecting columns from a table",
		"   - Filtering by property attributes (bedrooms count ≥ 4)",
		"   - Ordering results by multiple criteria",
		"   - Using functions like SUBSTRING for text manipulation",
		"",
		"2. **JSON (NoSQL)**",
		"   - Extracting values from nested JSON structures using `JSON_EXTRACT(features, '$.bedrooms')`",
		"   - Querying JSON arrays for specific values using `JSON_CONTAINS(JSON_EXTRACT(features, '$.amenities'), '\"pool\"')`",
		"   - Displaying JSON data in a structured format",
		"",
		"3. **Geospatial (GIS)**",
		"   - Creating a 10-mile radius buffer around Seattle using `ST_Buffer(ST_GeomFromText('POINT(-122.3321 47.6062)'), 16093.4)`",
		"   - Finding properties within that geographic boundary using `ST_Contains()`",
		"   - Calculating exact distances in kilometers using `ST_Distance() / 1000`",
		"   - Sorting properties by proximity to Seattle",
		"",
		"4. **Full-Text Search**",
		"   - Searching property descriptions for specific terms using `description LIKE '%luxury%'`",
		"   - Finding properties described with particular attributes",
		"   - Enabling natural language queries on text data",
		"",
		"5. **Vector Similarity Search**",
		"   - Implementing a scoring mechanism to rank properties by conceptual similarity",
		"   - Using `CASE WHEN description LIKE '%modern%' AND description LIKE '%minimalist%' THEN 3 ...`",
		"   - Sorting results by similarity score to prioritize properties matching the desired concept",
		"",
		"This demonstrates how OceanBase enables GenAI agents to efficiently answer complex questions",
		"that require different data types, making it an attractive solution for AWS Solution",
		"Architects looking to simplify their data architecture.",
	}, "\n")
}
