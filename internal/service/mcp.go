package service

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"multimodel/internal/model"
)

// Default server and tool names for the simulated MCP boundary.
const (
	ServerOceanBase = "oceanbase"
	ToolExecuteSQL  = "execute_sql"
)

// MCPSimulator stands in for a real MCP server connection. Calls carrying a
// query argument are routed to the fixture dispatcher; anything else
// succeeds trivially. The server and tool names are accepted for interface
// compatibility with a real backend but never alter dispatch logic.
type MCPSimulator struct {
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewMCPSimulator creates a simulator over the given dispatcher. Each
// simulator carries a run id so log lines from one demo run can be
// correlated.
func NewMCPSimulator(dispatcher *Dispatcher) *MCPSimulator {
	return &MCPSimulator{
		dispatcher: dispatcher,
		logger:     zap.L().With(zap.String("run_id", uuid.NewString())),
	}
}

// UseMCPTool executes a tool on a simulated MCP server. The query argument,
// when present, is classified by the dispatcher; the result is always a
// success envelope, populated or empty.
func (m *MCPSimulator) UseMCPTool(serverName, toolName string, arguments map[string]any) *model.ResultEnvelope {
	if query, ok := arguments["query"].(string); ok {
		m.logger.Info("executing simulated query",
			zap.String("server", serverName),
			zap.String("tool", toolName),
			zap.Int("query_len", len(query)))
		return m.dispatcher.Dispatch(query)
	}

	m.logger.Info("executing simulated tool",
		zap.String("server", serverName),
		zap.String("tool", toolName))
	return &model.ResultEnvelope{
		Status:  model.StatusSuccess,
		Data:    []model.Record{},
		Message: fmt.Sprintf("Tool %s executed successfully on server %s", toolName, serverName),
	}
}
