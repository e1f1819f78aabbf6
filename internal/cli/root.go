// Package cli implements the demo's command-line surface: the interactive
// multi-model query menu, the two scripted query walkthroughs, and the demo
// runner that ties them together.
package cli

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"multimodel/internal/config"
	"multimodel/internal/service"
)

var (
	cfg            *config.Config
	sim            *service.MCPSimulator
	menuDispatcher *service.Dispatcher

	stdin = bufio.NewReader(os.Stdin)
)

var rootCmd = &cobra.Command{
	Use:   "demo",
	Short: "OceanBase multi-model query demo",
	Long: `A demonstration harness for OceanBase's multi-model capabilities.

Every query result is a canned fixture selected by classifying the query
text; nothing is executed against a real database. The demo shows how a
single engine can combine relational, JSON, geospatial, full-text and
vector conditions in one SQL statement.`,
	SilenceUsage: true,
}

// Execute wires the loaded configuration and the simulated MCP boundary
// into the command tree and runs it.
func Execute(conf *config.Config, simulator *service.MCPSimulator) error {
	cfg = conf
	sim = simulator
	menuDispatcher = service.NewDispatcher(service.DemoRegistry())
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(luxuryCmd)
	rootCmd.AddCommand(familyCmd)
	rootCmd.AddCommand(runCmd)
}
