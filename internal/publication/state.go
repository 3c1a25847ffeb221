package publication

import (
	"maps"
	"slices"
)

// Metadata keys produced by document validation and consumed by later steps.
const (
	// MetadataThisVersion is the dated URI of the version being published.
	MetadataThisVersion = "thisVersion"
	// MetadataLatestVersion is the undated URI that always points at the
	// latest published version.
	MetadataLatestVersion = "latestVersion"
)

// Request holds the inputs of a publication run. They are fixed at
// construction and never change while the run executes.
type Request struct {
	SourceURL      string
	AuthToken      string
	TempLocation   string
	HTTPLocation   string
	ResultLocation string
}

// Job records the progress of a single step.
type Job struct {
	Status JobStatus
	Errors []string
}

// State is an immutable snapshot of a publication run. Every With* method
// returns a new State; no snapshot is ever modified after creation, so
// callers may hold onto intermediate states without any locking.
type State struct {
	request  Request
	status   Status
	jobs     map[string]Job
	history  []string
	metadata map[string]string
}

// NewState creates the starting state for a publication request: overall
// status started, no jobs, no history, no metadata.
func NewState(request Request) State {
	return State{request: request, status: StartedStatus}
}

func (s State) Request() Request {
	return s.request
}

func (s State) Status() Status {
	return s.status
}

// Terminal reports whether the run is finished.
func (s State) Terminal() bool {
	return s.status.Terminal()
}

// Job returns the recorded progress of the named step, if any.
func (s State) Job(name string) (Job, bool) {
	job, ok := s.jobs[name]
	return cloneJob(job), ok
}

// Attempted reports whether the named step has already been selected during
// this run, whether or not it has settled.
func (s State) Attempted(name string) bool {
	_, ok := s.jobs[name]
	return ok
}

func (s State) Jobs() map[string]Job {
	jobs := make(map[string]Job, len(s.jobs))
	for name, job := range s.jobs {
		jobs[name] = cloneJob(job)
	}
	return jobs
}

func (s State) History() []string {
	return slices.Clone(s.history)
}

func (s State) Metadata() map[string]string {
	return maps.Clone(s.metadata)
}

// MetadataValue returns the named metadata value, or "" if validation has not
// produced it.
func (s State) MetadataValue(key string) string {
	return s.metadata[key]
}

// WithStatus returns a copy with the overall status set. The overall status
// is monotonic: once it has left started this is a no-op, so a terminal
// status can never be overwritten.
func (s State) WithStatus(status Status) State {
	if s.status.Terminal() {
		return s
	}
	s.status = status
	return s
}

// WithJob returns a copy with the named step's job record set.
func (s State) WithJob(name string, job Job) State {
	jobs := maps.Clone(s.jobs)
	if jobs == nil {
		jobs = make(map[string]Job, 1)
	}
	jobs[name] = cloneJob(job)
	s.jobs = jobs
	return s
}

// WithJobStatus returns a copy with the named step's status set and any
// previous error list cleared.
func (s State) WithJobStatus(name string, status JobStatus) State {
	return s.WithJob(name, Job{Status: status})
}

// WithHistory returns a copy with entry appended to the history.
func (s State) WithHistory(entry string) State {
	history := make([]string, 0, len(s.history)+1)
	history = append(history, s.history...)
	history = append(history, entry)
	s.history = history
	return s
}

// WithMetadata returns a copy whose metadata is replaced wholesale.
func (s State) WithMetadata(metadata map[string]string) State {
	s.metadata = maps.Clone(metadata)
	return s
}

func cloneJob(job Job) Job {
	job.Errors = slices.Clone(job.Errors)
	return job
}
