// Package downloader hands queued tasks to yt-dlp, either in-process through
// github.com/lrstanley/go-ytdlp or by running the downloader binary. Tasks are
// processed one at a time and a task leaves the queue only once its download
// succeeded.
package downloader
