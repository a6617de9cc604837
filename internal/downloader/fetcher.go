package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"github.com/rana/vidq/internal/config"
)

// Fetcher downloads a single normalized target into dir
type Fetcher interface {
	Fetch(ctx context.Context, dir, target string) error
}

// YtdlpFetcher calls yt-dlp through the go-ytdlp bindings
type YtdlpFetcher struct {
	opts config.Download
	log  logrus.FieldLogger
}

// NewYtdlpFetcher creates a fetcher using the given download options
func NewYtdlpFetcher(opts config.Download, log logrus.FieldLogger) *YtdlpFetcher {
	return &YtdlpFetcher{opts: opts, log: log}
}

// command builds the yt-dlp invocation for dir
func (f *YtdlpFetcher) command(dir string) *ytdlp.Command {
	dl := ytdlp.New().
		Format(f.opts.Format).
		Output(filepath.Join(dir, f.opts.OutputTemplate))

	if f.opts.NoPlaylist {
		dl = dl.NoPlaylist()
	}
	if f.opts.ExtractAudio {
		dl = dl.ExtractAudio().
			AudioFormat(f.opts.AudioFormat).
			AudioQuality(f.opts.AudioQuality)
	}
	if f.opts.EmbedThumbnail {
		dl = dl.EmbedThumbnail()
	}
	if f.opts.RestrictFilenames {
		dl = dl.RestrictFilenames()
	}
	return dl
}

// Fetch runs the download and blocks until yt-dlp exits
func (f *YtdlpFetcher) Fetch(ctx context.Context, dir, target string) error {
	dl := f.command(dir)

	log := f.log.WithField("target", target)
	dl.ProgressFunc(500*time.Millisecond, func(update ytdlp.ProgressUpdate) {
		fields := logrus.Fields{"status": update.Status}
		if update.TotalBytes > 0 {
			fields["percent"] = fmt.Sprintf("%.1f", float64(update.DownloadedBytes)/float64(update.TotalBytes)*100)
		}
		if eta := update.ETA(); eta > 0 {
			fields["eta"] = eta.Round(time.Second).String()
		}
		log.WithFields(fields).Debug("progress")
	})

	result, err := dl.Run(ctx, target)
	if err != nil {
		return fmt.Errorf("yt-dlp failed for %s: %w", target, err)
	}

	if info, err := result.GetExtractedInfo(); err == nil {
		for _, i := range info {
			if i.Filename != nil {
				log.WithField("file", *i.Filename).Info("downloaded")
			}
		}
	}
	return nil
}

// TerminalFetcher runs the downloader as an external process
type TerminalFetcher struct {
	Binary string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
	log    logrus.FieldLogger
}

// NewTerminalFetcher creates a fetcher from the terminal settings
func NewTerminalFetcher(t config.Terminal, log logrus.FieldLogger) *TerminalFetcher {
	return &TerminalFetcher{
		Binary: t.Binary,
		Args:   t.Args,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    log,
	}
}

// Fetch runs the binary with target as the last argument, inside dir
func (f *TerminalFetcher) Fetch(ctx context.Context, dir, target string) error {
	args := append(append([]string{}, f.Args...), target)
	f.log.WithField("cmd", f.Binary+" "+strings.Join(args, " ")).Debug("running downloader")

	cmd := exec.CommandContext(ctx, f.Binary, args...)
	cmd.Dir = dir
	cmd.Stdout = f.Stdout
	cmd.Stderr = f.Stderr

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return fmt.Errorf("%s exited with code %d for %s", f.Binary, ee.ExitCode(), target)
		}
		return fmt.Errorf("failed to run %s: %w", f.Binary, err)
	}
	return nil
}
