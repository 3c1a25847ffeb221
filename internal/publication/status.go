package publication

// Status is the overall status of a publication run.
type Status string

// StartedStatus means the run is still executing steps
const StartedStatus Status = "started"

// SuccessStatus means every step ran and finished without a rejection or error
const SuccessStatus Status = "success"

// FailureStatus means a step rejected the document for a business reason
const FailureStatus Status = "failure"

// ErrorStatus means a step or the runner itself hit an unexpected error
const ErrorStatus Status = "error"

// Terminal reports whether the run is finished. A terminal status never
// changes again.
func (s Status) Terminal() bool {
	return s != StartedStatus
}

// JobStatus is the status of a single step within a run.
type JobStatus string

// JobPending means the step has been selected and its operation is in flight
const JobPending JobStatus = "pending"

// JobOK means the step's operation succeeded
const JobOK JobStatus = "ok"

// JobFailure means the step's operation reported a business rejection
const JobFailure JobStatus = "failure"

// JobError means the step's operation hit an unexpected error
const JobError JobStatus = "error"
