package cmd

import (
	"github.com/rana/vidq/internal/command"
	"github.com/rana/vidq/internal/downloader"
)

func (a *App) download(ctx *command.Context) error {
	return a.runDownload(ctx, a.Fetcher)
}

func (a *App) downloadTerminal(ctx *command.Context) error {
	return a.runDownload(ctx, a.TerminalFetcher)
}

func (a *App) runDownload(ctx *command.Context, fetcher downloader.Fetcher) error {
	if err := noArgs(ctx); err != nil {
		return err
	}

	svc := downloader.NewService(a.Store, fetcher, a.Config.VideosDir, ctx.Log)
	report, err := svc.Run(ctx)
	if len(report.Results) == 0 {
		if err == nil {
			ctx.Println("Nothing to download.")
		}
		return err
	}

	for _, res := range report.Results {
		switch res.Status {
		case downloader.StatusFailed:
			ctx.Printf("* %s: %s (%v)\n", res.Status, res.Task, res.Err)
		default:
			ctx.Printf("* %s: %s\n", res.Status, res.Task)
		}
	}
	ctx.Printf("%d downloaded, %d failed, %d skipped\n",
		report.Count(downloader.StatusCompleted),
		report.Count(downloader.StatusFailed),
		report.Count(downloader.StatusSkipped))

	return err
}
