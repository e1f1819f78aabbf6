package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"multimodel/internal/format"
	"multimodel/internal/model"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive multi-model query menu",
	Long: `Walks through five canned queries, one per data model plus a combined
investment query that uses all of them at once.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	fmt.Println("=== OceanBase MCP Interactive Demo ===")
	fmt.Println("This demo shows how to use OceanBase MCP to execute multi-model queries")
	fmt.Println()

	dataMap := model.RealEstateDataMap()
	fmt.Println("OceanBase MCP Demo initialized")
	fmt.Printf("Data map loaded with schema information for database %q (%d table(s))\n",
		dataMap.Database, len(dataMap.Tables))

	for {
		choice, err := promptMenu()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			runMenuQuery(investmentQuery(), "Investment Properties Query (All Data Types)", "Investment Properties")
		case "2":
			runMenuQuery(amenitiesQuery, "JSON Amenities Query", "Properties with Fireplace")
		case "3":
			runMenuQuery(descriptionQuery, "Full-text Description Query", "Properties with 'luxury view' in Description")
		case "4":
			runMenuQuery(locationQuery, "Spatial Location Query", "Properties within 150km of Seattle")
		case "5":
			runMenuQuery(vectorQuery(), "Vector Similarity Query", "Properties Similar to Premium Investment Profile")
		case "6":
			fmt.Println("\nExiting OceanBase MCP Demo. Goodbye!")
			return nil
		default:
			fmt.Println("\nInvalid choice. Please try again.")
		}

		if err := pause(); errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func promptMenu() (string, error) {
	fmt.Println("\n=== OceanBase Multi-Model Query Demo ===")
	fmt.Println("1. Find investment properties (uses all data types)")
	fmt.Println("2. Find properties by amenities (JSON)")
	fmt.Println("3. Find properties by description (Full-text)")
	fmt.Println("4. Find properties by location (Spatial)")
	fmt.Println("5. Find properties by investment profile (Vector)")
	fmt.Println("6. Exit")
	fmt.Print("\nEnter your choice (1-6): ")

	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func pause() error {
	fmt.Print("\nPress Enter to continue...")
	_, err := stdin.ReadString('\n')
	return err
}

// runMenuQuery narrates one simulated query: it shows the SQL, the MCP call
// that a real integration would make, and then the fixture selected by
// classifying the query description.
func runMenuQuery(query, description, resultTitle string) {
	fmt.Printf("\n=== Executing %s ===\n", description)
	fmt.Printf("Query: %s\n", query)

	fmt.Println("\nConnecting to OceanBase via MCP...")
	fmt.Println("Executing query...")

	fmt.Println("\nMCP Call:")
	fmt.Println("```go")
	fmt.Println("// Execute query through OceanBase MCP")
	fmt.Printf("result := UseMCPTool(%q, %q, map[string]any{\"query\": query})\n",
		cfg.MCP.ServerName, cfg.MCP.ToolName)
	fmt.Println("```")

	result := menuDispatcher.Dispatch(description)
	fmt.Println(format.Results(result.Data, resultTitle, cfg.Display.ExcerptLength))
}
