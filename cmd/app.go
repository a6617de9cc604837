package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rana/vidq/internal/command"
	"github.com/rana/vidq/internal/config"
	"github.com/rana/vidq/internal/downloader"
	"github.com/rana/vidq/internal/tasklist"
)

var (
	errUnexpectedArgs = errors.New("unexpected arguments")
	errMissingArgs    = errors.New("missing arguments")
)

// App holds the state shared by every command handler
type App struct {
	Config   *config.Config
	Store    *tasklist.Store
	Registry *command.Registry

	// Fetchers used by download and download terminal
	Fetcher         downloader.Fetcher
	TerminalFetcher downloader.Fetcher

	out io.Writer
	log logrus.FieldLogger
}

// NewApp wires the task list, fetchers and command table for cfg
func NewApp(cfg *config.Config, out io.Writer, log logrus.FieldLogger) *App {
	a := &App{
		Config:          cfg,
		Store:           tasklist.New(cfg.TasksFile),
		Fetcher:         downloader.NewYtdlpFetcher(cfg.Download, log),
		TerminalFetcher: downloader.NewTerminalFetcher(cfg.Terminal, log),
		out:             out,
		log:             log,
	}
	a.Registry = a.commands()
	return a
}

// Dispatch runs the command named by argv
func (a *App) Dispatch(ctx context.Context, argv []string) error {
	return command.NewDispatcher(a.Registry, a.out, a.log).Dispatch(ctx, argv)
}

// commands builds the command table. Sibling order matters: the first
// match wins when paths overlap.
func (a *App) commands() *command.Registry {
	r := command.NewRegistry()

	download := command.New([]string{"download"}, "Download the videos.", a.download)
	download.MustAdd(command.New([]string{"terminal"},
		"Download the videos by running the yt-dlp binary.", a.downloadTerminal))
	r.MustRegister(download)

	r.MustRegister(command.New([]string{"commands"},
		"Print all commands, or the description of the given command.", a.help, "help"))

	r.MustRegister(command.New([]string{"options"}, "Print the download options.", a.options))

	videos := command.New([]string{"videos"}, "Print the videos to download.", a.videos)
	videos.MustAdd(command.New([]string{"filename"}, "Print the task list file name.", a.videosFilename))
	videos.MustAdd(command.New([]string{"parsed"}, "Print the videos as passed to the downloader.", a.videosParsed))
	videos.MustAdd(command.New([]string{"files"}, "Print the files in the download directory.", a.videosFiles))
	videos.MustAdd(command.New([]string{"clear"}, "Remove every file from the download directory.", a.videosClear))
	videos.MustAdd(command.New([]string{"clean"}, "Remove leftover files that are not media.", a.videosClean))
	r.MustRegister(videos)

	task := command.New([]string{"task"}, "Print the tasks.", a.tasks)
	task.MustAdd(command.New([]string{"add"}, "Add tasks to the list.", a.taskAdd))
	task.MustAdd(command.New([]string{"remove"}, "Remove tasks by index.", a.taskRemove, "rm"))
	task.MustAdd(command.New([]string{"clear"}, "Remove all tasks.", a.taskClear))
	task.MustAdd(command.New([]string{"number"}, "Print the number of tasks.", a.taskNumber))
	r.MustRegister(task)

	r.MustRegister(command.New([]string{"version"}, "Print version information.", a.version))

	return r
}

// noArgs rejects tokens left over after the command path
func noArgs(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		return fmt.Errorf("%w: %s", errUnexpectedArgs, strings.Join(ctx.Args, " "))
	}
	return nil
}
