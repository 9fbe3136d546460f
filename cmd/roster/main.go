package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hpungsan/roster/internal/config"
	"github.com/hpungsan/roster/internal/mcp"
	"github.com/hpungsan/roster/internal/ops"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"shell": true, "list": true, "web": true, "mcp": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode(args []string) bool {
	if len(args) < 2 {
		return false // No args → MCP server
	}
	arg := args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// Global flags and --help or --version → CLI
	switch arg {
	case "--help", "-h", "--version", "-v", "--config", "-c":
		return true
	}
	if strings.HasPrefix(arg, "--config=") || strings.HasPrefix(arg, "-c=") {
		return true
	}
	return false // Default → MCP server
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ____           _
  |  _ \ ___  ___| |_ ___ _ __
  | |_) / _ \/ __| __/ _ \ '__|
  |  _ < (_) \__ \ ||  __/ |
  |_| \_\___/|___/\__\___|_|

  In-memory student grade roster

  Usage: roster <command> [options]
         roster shell
         roster --help

  MCP server mode requires piped input.`)
}

// newLogger builds the process logger. Output goes to w so stdout stays
// free for JSON and the MCP stdio transport.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// CLI mode: known subcommand or global flag
	if isCLIMode(os.Args) {
		app := newCLIApp(&env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'roster --help' for usage.\n")
		os.Exit(1)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(ops.NewRoster(cfg, logger), cfg, Version, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
