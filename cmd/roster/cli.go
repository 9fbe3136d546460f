package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/roster/internal/config"
	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/mcp"
	"github.com/hpungsan/roster/internal/ops"
	"github.com/hpungsan/roster/internal/seed"
	"github.com/hpungsan/roster/internal/student"
	"github.com/hpungsan/roster/internal/web"
)

// env carries the streams and the state loaded by the app's Before hook.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	logger *slog.Logger
}

// load reads configuration and builds the logger.
func (e *env) load(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := newLogger(e.stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = logger
	return nil
}

// newRoster creates an empty roster, seeding it from the --seed flag if set.
func (e *env) newRoster(c *cli.Context) (*ops.Roster, error) {
	r := ops.NewRoster(e.cfg, e.logger)
	path := c.String("seed")
	if path == "" {
		return r, nil
	}

	out, err := seed.Import(r, seed.ImportInput{Path: path, Sheet: c.String("sheet")})
	if err != nil {
		return nil, err
	}
	for _, s := range out.Skipped {
		e.logger.Warn("seed row skipped", "file", path, "row", s.Row, "reason", s.Reason)
	}
	e.logger.Info("roster seeded", "file", path, "sheet", out.Sheet, "imported", out.Imported, "skipped", len(out.Skipped))
	return r, nil
}

// seedFlags are shared by every command that starts from a workbook.
func seedFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "seed", Aliases: []string{"s"}, Required: required, Usage: "Load students from an .xlsx workbook"},
		&cli.StringFlag{Name: "sheet", Usage: "Worksheet to read (default: first sheet)"},
	}
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(e *env) *cli.App {
	app := &cli.App{
		Name:      "roster",
		Usage:     "In-memory student grade roster",
		Version:   Version,
		Reader:    e.stdin,
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{config.EnvConfigPath}, Usage: "Path to a YAML config file"},
		},
		Before: func(c *cli.Context) error {
			return e.load(c.String("config"))
		},
		Commands: []*cli.Command{
			shellCmd(e),
			listCmd(e),
			webCmd(e),
			mcpCmd(e),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// shellCmd creates the interactive shell command.
func shellCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Start an interactive roster session",
		Flags: seedFlags(false),
		Action: func(c *cli.Context) error {
			// The shell prints its own confirmations; info events would interleave with them.
			if lvl, _ := config.ParseLogLevel(e.cfg.Log.Level); lvl == slog.LevelInfo {
				e.logger = slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
			}

			r, err := e.newRoster(c)
			if err != nil {
				return outputError(err)
			}
			return runShell(r, e.stdin, e.stdout)
		},
	}
}

// listCmd creates the one-shot list command.
func listCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the students in a workbook, optionally sorted",
		Flags: append(seedFlags(true),
			&cli.StringFlag{Name: "sort", Usage: "Sort key: id|name|grade"},
			&cli.BoolFlag{Name: "desc", Usage: "Sort descending"},
			&cli.BoolFlag{Name: "json", Usage: "Output JSON instead of a table"},
		),
		Action: func(c *cli.Context) error {
			r, err := e.newRoster(c)
			if err != nil {
				return outputError(err)
			}

			if key := c.String("sort"); key != "" {
				ascending := !c.Bool("desc")
				if _, err := ops.Sort(r, ops.SortInput{Key: key, Ascending: &ascending}); err != nil {
					return outputError(err)
				}
			}

			output, err := ops.List(r)
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(e.stdout, output)
			}
			return student.WriteTable(e.stdout, output.Items)
		},
	}
}

// webCmd creates the web server command.
func webCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the roster over HTTP",
		Flags: append(seedFlags(false),
			&cli.StringFlag{Name: "bind", Usage: "Bind address (overrides config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (overrides config)"},
		),
		Action: func(c *cli.Context) error {
			if c.IsSet("bind") {
				e.cfg.Web.Bind = c.String("bind")
			}
			if c.IsSet("port") {
				e.cfg.Web.Port = c.Int("port")
			}
			if err := e.cfg.Validate(); err != nil {
				return outputError(errors.NewInvalidRequest(err.Error()))
			}

			r, err := e.newRoster(c)
			if err != nil {
				return outputError(err)
			}
			return web.Run(web.NewServer(r, e.cfg, Version, e.logger), e.logger)
		},
	}
}

// mcpCmd creates the explicit MCP server command.
func mcpCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve roster tools over MCP stdio",
		Flags: seedFlags(false),
		Action: func(c *cli.Context) error {
			r, err := e.newRoster(c)
			if err != nil {
				return outputError(err)
			}
			return mcp.Run(r, e.cfg, Version, e.logger)
		},
	}
}

// Helper functions

// outputJSON marshals result to w as JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if rErr, ok := err.(*errors.RosterError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", rErr.Code, rErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
