package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rana/vidq/internal/config"
)

// Context is bound into every run
type Context struct {
	context.Context
}

// CLI represents the command-line interface. Everything after the global
// flags is handed to the command dispatcher untouched.
type CLI struct {
	Config    string           `help:"Config file (default ~/.vidq/cfg.toml)" type:"path"`
	TasksFile string           `help:"Task list file, overrides tasks_file" type:"path"`
	VideosDir string           `help:"Download directory, overrides videos_dir" type:"path"`
	Verbose   bool             `help:"Enable debug logging"`
	Version   kong.VersionFlag `help:"Show version and exit"`
	Args      []string         `arg:"" optional:"" passthrough:"" help:"Command path followed by its arguments (try 'help')"`
}

// Run loads configuration and dispatches the command tokens
func (c *CLI) Run(cmdCtx *Context) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.TasksFile != "" {
		cfg.TasksFile = c.TasksFile
	}
	if c.VideosDir != "" {
		cfg.VideosDir = c.VideosDir
	}

	log := NewLogger(os.Stderr, cfg.LogLevel, c.Verbose)
	log.WithField("config", cfg.Path()).Debug("configuration loaded")

	app := NewApp(cfg, os.Stdout, log)
	return app.Dispatch(cmdCtx.Context, c.Args)
}
