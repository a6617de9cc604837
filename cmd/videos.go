package cmd

import (
	"github.com/rana/vidq/internal/command"
	"github.com/rana/vidq/internal/media"
)

func (a *App) videos(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	tasks, err := a.Store.Load()
	if err != nil {
		return err
	}
	ctx.Println("Videos:")
	printIndexed(ctx, tasks)
	return nil
}

func (a *App) videosFilename(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	ctx.Println(a.Store.Path())
	return nil
}

func (a *App) videosParsed(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	parsed, err := a.Store.Parsed()
	if err != nil {
		return err
	}
	ctx.Println("Parsed videos:")
	printIndexed(ctx, parsed)
	return nil
}

func (a *App) videosFiles(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	if err := media.EnsureDir(a.Config.VideosDir); err != nil {
		return err
	}
	names, err := media.List(a.Config.VideosDir)
	if err != nil {
		return err
	}
	ctx.Printf("Files in %s:\n", a.Config.VideosDir)
	for _, name := range names {
		ctx.Printf("* %s\n", name)
	}
	return nil
}

func (a *App) videosClear(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	if err := media.EnsureDir(a.Config.VideosDir); err != nil {
		return err
	}
	removed, err := media.Clear(a.Config.VideosDir)
	ctx.Log.WithField("files", len(removed)).Debug("download directory cleared")
	if err != nil {
		return err
	}
	ctx.Printf("Removed %d files from %s.\n", len(removed), a.Config.VideosDir)
	return nil
}

func (a *App) videosClean(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	if err := media.EnsureDir(a.Config.VideosDir); err != nil {
		return err
	}
	removed, err := media.Clean(a.Config.VideosDir, a.Config.MediaPatterns)
	for _, name := range removed {
		ctx.Printf("* removed %s\n", name)
	}
	if err != nil {
		return err
	}
	ctx.Printf("Removed %d files from %s.\n", len(removed), a.Config.VideosDir)
	return nil
}

func printIndexed(ctx *command.Context, items []string) {
	for i, item := range items {
		ctx.Printf("* %d: %s\n", i, item)
	}
}
