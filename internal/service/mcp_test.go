package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multimodel/internal/model"
)

func newTestSimulator() *MCPSimulator {
	return NewMCPSimulator(newTestDispatcher())
}

func TestUseMCPTool_ExecuteSQL(t *testing.T) {
	sim := newTestSimulator()

	result := sim.UseMCPTool(ServerOceanBase, ToolExecuteSQL, map[string]any{
		"query": listQuery,
	})

	require.NotNil(t, result)
	assert.Equal(t, model.StatusSuccess, result.Status)
	assert.Len(t, result.Data, 10)
	assert.Equal(t, model.MessageQueryOK, result.Message)
}

// The server and tool names are pass-through: they must not change which
// fixture a query resolves to.
func TestUseMCPTool_NamesDoNotAlterDispatch(t *testing.T) {
	sim := newTestSimulator()

	args := map[string]any{"query": listQuery}
	baseline := sim.UseMCPTool(ServerOceanBase, ToolExecuteSQL, args)
	other := sim.UseMCPTool("some-other-server", "run_query", args)

	if diff := cmp.Diff(baseline, other); diff != "" {
		t.Errorf("Server/tool names changed the result:\n%s", diff)
	}
}

func TestUseMCPTool_GenericTool(t *testing.T) {
	sim := newTestSimulator()

	result := sim.UseMCPTool(ServerOceanBase, "describe_table", map[string]any{
		"table": "unified_properties",
	})

	require.NotNil(t, result)
	assert.Equal(t, model.StatusSuccess, result.Status)
	assert.Empty(t, result.Data)
	assert.Equal(t, "Tool describe_table executed successfully on server oceanbase", result.Message)
}

func TestUseMCPTool_MissingQueryArgument(t *testing.T) {
	sim := newTestSimulator()

	result := sim.UseMCPTool(ServerOceanBase, ToolExecuteSQL, nil)

	require.NotNil(t, result)
	assert.Equal(t, model.StatusSuccess, result.Status)
	assert.Empty(t, result.Data)
}
