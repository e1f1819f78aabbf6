package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"multimodel/internal/model"
)

var (
	runBatch     bool
	runComponent string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the complete demo from start to finish",
	Long: `Runs the demo components in sequence or, without --batch, presents a menu
to pick them one at a time.`,
	RunE: runDemo,
}

func init() {
	runCmd.Flags().BoolVar(&runBatch, "batch", false, "run in batch mode without prompts")
	runCmd.Flags().StringVar(&runComponent, "component", "all",
		"component to run in batch mode (check|luxury|family|all)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println(banner(
		"OceanBase Multi-Model Demo Runner",
		"",
		"This command runs the complete OceanBase multi-model demo from",
		"start to finish.",
	))

	if runBatch {
		fmt.Printf("\n🚀 Running OceanBase Multi-Model Demo in batch mode (component: %s)\n", runComponent)
		return runBatchMode(runComponent)
	}

	fmt.Println("\n🚀 Welcome to the OceanBase Multi-Model Demo!")
	fmt.Println("This demo showcases how OceanBase enables GenAI agents to efficiently answer complex")
	fmt.Println("questions that require different data types, making it an attractive solution for")
	fmt.Println("AWS Solution Architects looking to simplify their data architecture.")

	return runInteractiveMode()
}

func runBatchMode(component string) error {
	switch component {
	case "check":
		if !checkMCPServer() {
			return errors.New("OceanBase MCP server check failed")
		}
		return nil
	case "luxury":
		return runScript(runLuxury, "Running luxury waterfront query")
	case "family":
		return runScript(runFamily, "Running family-friendly query")
	case "all":
		return runAllDemos()
	default:
		return fmt.Errorf("unknown component: %s", component)
	}
}

func runInteractiveMode() error {
	for {
		choice, err := promptRunnerMenu()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			checkMCPServer()
		case "2":
			_ = runScript(runLuxury, "Running luxury waterfront query")
		case "3":
			_ = runScript(runFamily, "Running family-friendly query")
		case "4":
			if err := runMenu(menuCmd, nil); err != nil {
				return err
			}
		case "5":
			_ = runAllDemos()
		case "6":
			fmt.Println("\nThank you for exploring the OceanBase Multi-Model Demo!")
			return nil
		default:
			fmt.Println("\n❌ Invalid choice. Please enter a number between 1 and 6.")
		}
	}
}

func promptRunnerMenu() (string, error) {
	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Println("OceanBase Multi-Model Demo Menu")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("1. Check OceanBase MCP Server")
	fmt.Println("2. Run Luxury Waterfront Query")
	fmt.Println("3. Run Family-Friendly Query")
	fmt.Println("4. Run Interactive Query Menu")
	fmt.Println("5. Run All Demos")
	fmt.Println("6. Exit")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Print("Enter your choice (1-6): ")

	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// runScript runs one demo stage under a section header, the way the
// original runner framed each sibling script it launched.
func runScript(fn func(cmd *cobra.Command, args []string) error, description string) error {
	fmt.Println(sectionHeader(description))

	if err := fn(nil, nil); err != nil {
		fmt.Printf("\n❌ %s failed: %v\n", description, err)
		return err
	}

	fmt.Printf("\n✅ %s completed successfully\n", description)
	return nil
}

// checkMCPServer verifies the simulated MCP boundary responds to a trivial
// statement.
func checkMCPServer() bool {
	fmt.Println(sectionHeader("Checking OceanBase MCP Server"))

	result := sim.UseMCPTool(cfg.MCP.ServerName, cfg.MCP.ToolName, map[string]any{"query": "SELECT 1"})
	if result.Status != model.StatusSuccess {
		fmt.Println("❌ Error connecting to OceanBase MCP server")
		fmt.Println("Please make sure the OceanBase MCP server is running.")
		return false
	}

	fmt.Println("✅ OceanBase MCP server is running")
	return true
}

func runAllDemos() error {
	mcpAvailable := checkMCPServer()

	if err := runScript(runLuxury, "Running luxury waterfront query"); err != nil {
		fmt.Println("\n⚠️ Luxury waterfront query failed. Continuing anyway.")
	}

	if err := runScript(runFamily, "Running family-friendly query"); err != nil {
		fmt.Println("\n⚠️ Family-friendly query failed. Continuing anyway.")
	}

	fmt.Println(sectionHeader("Demo Complete"))

	if !mcpAvailable {
		fmt.Println("⚠️ The OceanBase MCP server check did not pass.")
	}
	fmt.Println("✅ The OceanBase Multi-Model Demo has completed successfully.")
	fmt.Println("\nYou can now explore the individual demo commands:")
	fmt.Println("  - demo menu:   interactive multi-model query menu")
	fmt.Println("  - demo luxury: luxury waterfront properties query")
	fmt.Println("  - demo family: family-friendly homes query")
	fmt.Println("\nFor more information, please refer to the README.md file.")

	return nil
}
