// Package tasklist persists the download queue as a newline-delimited text file.
package tasklist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SearchPrefix turns a free-text task into a yt-dlp search query.
const SearchPrefix = "ytsearch:"

var (
	ErrInvalidTask     = errors.New("invalid task")
	ErrIndexOutOfRange = errors.New("task index out of range")
)

// Store reads and replaces the task file as a whole
type Store struct {
	path string
}

// New creates a store backed by path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file name
func (s *Store) Path() string {
	return s.path
}

// Load returns the tasks in file order, creating an empty file if needed
func (s *Store) Load() ([]string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
		}
		if err := s.Save(nil); err != nil {
			return nil, err
		}
		return []string{}, nil
	}

	tasks := []string{}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		tasks = append(tasks, line)
	}
	return tasks, nil
}

// Save replaces the file content with tasks
func (s *Store) Save(tasks []string) error {
	for _, task := range tasks {
		if err := Validate(task); err != nil {
			return err
		}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := WriteAtomic(s.path, []byte(strings.Join(tasks, "\n"))); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Append adds tasks to the end of the list
func (s *Store) Append(tasks ...string) error {
	for _, task := range tasks {
		if err := Validate(task); err != nil {
			return err
		}
	}
	current, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(current, tasks...))
}

// Remove deletes the tasks at the given zero-based indices.
// All indices are checked before anything is written.
func (s *Store) Remove(indices ...int) error {
	tasks, err := s.Load()
	if err != nil {
		return err
	}

	order := slices.Clone(indices)
	slices.Sort(order)
	order = slices.Compact(order)
	for _, i := range order {
		if i < 0 || i >= len(tasks) {
			return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, i, len(tasks))
		}
	}

	// highest first so earlier removals don't shift later ones
	for j := len(order) - 1; j >= 0; j-- {
		tasks = slices.Delete(tasks, order[j], order[j]+1)
	}
	return s.Save(tasks)
}

// Clear truncates the list
func (s *Store) Clear() error {
	return s.Save(nil)
}

// Count returns the number of tasks
func (s *Store) Count() (int, error) {
	tasks, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Parsed returns the tasks normalized for the downloader
func (s *Store) Parsed() ([]string, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	parsed := make([]string, len(tasks))
	for i, task := range tasks {
		parsed[i] = Normalize(task)
	}
	return parsed, nil
}

// Normalize rewrites a task that is not a URL as a search query
func Normalize(task string) string {
	if strings.HasPrefix(task, "http") {
		return task
	}
	return SearchPrefix + task
}

// Validate rejects tasks that cannot be stored on a single line
func Validate(task string) error {
	if strings.TrimSpace(task) == "" {
		return fmt.Errorf("%w: empty task", ErrInvalidTask)
	}
	if strings.ContainsAny(task, "\r\n") {
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidTask, task)
	}
	return nil
}

// WriteAtomic writes content to file atomically
func WriteAtomic(path string, content []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
