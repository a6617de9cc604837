package downloader

// Status represents the outcome of a single task in a batch
type Status string

const (
	// StatusCompleted means the download finished successfully
	StatusCompleted Status = "Completed"

	// StatusFailed means the downloader returned an error
	StatusFailed Status = "Failed"

	// StatusSkipped means the batch stopped before the task was attempted
	StatusSkipped Status = "Skipped"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Result describes what happened to one task
type Result struct {
	Task   string
	Target string
	Status Status
	Err    error
}

// Report collects the results of one batch run
type Report struct {
	RunID   string
	Results []Result
}

// Count returns the number of results with the given status
func (r Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}
