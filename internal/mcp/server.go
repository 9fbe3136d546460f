package mcp

import (
	"log/slog"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/roster/internal/config"
	"github.com/hpungsan/roster/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"roster_add": {
		def:     addToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdd },
	},
	"roster_exists": {
		def:     existsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExists },
	},
	"roster_delete": {
		def:     deleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDelete },
	},
	"roster_undo": {
		def:     undoToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleUndo },
	},
	"roster_search": {
		def:     searchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"roster_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"roster_sort": {
		def:     sortToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSort },
	},
	"roster_status": {
		def:     statusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStatus },
	},
}

// AllToolNames returns every tool name, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with roster tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(roster *ops.Roster, cfg *config.Config, version string, logger *slog.Logger) *server.MCPServer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := server.NewMCPServer(
		"roster",
		version,
		server.WithToolCapabilities(true),
	)

	for _, name := range ValidateDisabledTools(cfg.DisabledTools) {
		logger.Warn("unknown tool in disabled_tools", "tool", name)
	}

	disabled := make(map[string]bool, len(cfg.DisabledTools))
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	h := NewHandlers(roster)
	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(roster *ops.Roster, cfg *config.Config, version string, logger *slog.Logger) error {
	s := NewServer(roster, cfg, version, logger)
	return server.ServeStdio(s)
}
