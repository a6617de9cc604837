package downloader

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rana/vidq/internal/media"
	"github.com/rana/vidq/internal/tasklist"
)

// ErrPartialFailure is returned when at least one task failed to download
var ErrPartialFailure = errors.New("some downloads failed")

// Service runs the queued tasks through a Fetcher
type Service struct {
	store   *tasklist.Store
	fetcher Fetcher
	dir     string
	log     logrus.FieldLogger
}

// NewService creates a new download service
func NewService(store *tasklist.Store, fetcher Fetcher, dir string, log logrus.FieldLogger) *Service {
	return &Service{
		store:   store,
		fetcher: fetcher,
		dir:     dir,
		log:     log,
	}
}

// Run downloads every queued task in order. A task is removed from the
// queue right after its download succeeds; failed tasks stay queued and the
// batch moves on. Cancelling ctx stops the batch before the next task.
func (s *Service) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	log := s.log.WithField("run_id", report.RunID)

	tasks, err := s.store.Load()
	if err != nil {
		return report, err
	}
	if len(tasks) == 0 {
		log.Debug("nothing to download")
		return report, nil
	}
	if err := media.EnsureDir(s.dir); err != nil {
		return report, err
	}

	log.WithFields(logrus.Fields{"tasks": len(tasks), "dir": s.dir}).Info("starting downloads")

	var (
		failed []string
		errs   []error
	)
	for i, task := range tasks {
		res := Result{Task: task, Target: tasklist.Normalize(task)}

		if ctx.Err() != nil {
			for _, rest := range tasks[i:] {
				report.Results = append(report.Results, Result{
					Task:   rest,
					Target: tasklist.Normalize(rest),
					Status: StatusSkipped,
				})
			}
			errs = append(errs, ctx.Err())
			break
		}

		if err := s.fetcher.Fetch(ctx, s.dir, res.Target); err != nil {
			res.Status = StatusFailed
			res.Err = err
			failed = append(failed, task)
			errs = append(errs, err)
			log.WithError(err).WithField("task", task).Warn("download failed")
		} else {
			res.Status = StatusCompleted
			pending := append(append([]string{}, failed...), tasks[i+1:]...)
			if err := s.store.Save(pending); err != nil {
				report.Results = append(report.Results, res)
				return report, fmt.Errorf("failed to update task list: %w", err)
			}
			log.WithField("task", task).Info("download completed")
		}
		report.Results = append(report.Results, res)
	}

	if n := report.Count(StatusFailed); n > 0 {
		errs = append([]error{fmt.Errorf("%w: %d of %d", ErrPartialFailure, n, len(tasks))}, errs...)
	}
	return report, errors.Join(errs...)
}
