package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MCP.ServerName != "oceanbase" {
		t.Errorf("Expected default server name oceanbase, got %q", cfg.MCP.ServerName)
	}
	if cfg.MCP.ToolName != "execute_sql" {
		t.Errorf("Expected default tool name execute_sql, got %q", cfg.MCP.ToolName)
	}
	if cfg.Display.ExcerptLength != 100 {
		t.Errorf("Expected default excerpt length 100, got %d", cfg.Display.ExcerptLength)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MCP_SERVER_NAME", "testbase")
	t.Setenv("DISPLAY_EXCERPT_LENGTH", "80")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MCP.ServerName != "testbase" {
		t.Errorf("Expected server name testbase, got %q", cfg.MCP.ServerName)
	}
	if cfg.Display.ExcerptLength != 80 {
		t.Errorf("Expected excerpt length 80, got %d", cfg.Display.ExcerptLength)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected log format json, got %q", cfg.Logging.Format)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DISPLAY_EXCERPT_LENGTH", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Display.ExcerptLength != 100 {
		t.Errorf("Expected fallback to 100, got %d", cfg.Display.ExcerptLength)
	}
}
