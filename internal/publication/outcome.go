package publication

// Outcome is the normalized result of one step operation. Every operation
// reports exactly one of the three terminal job statuses; collaborator errors
// and business rejections never propagate in any other shape.
type Outcome struct {
	Status   JobStatus
	Errors   []string
	History  string
	Metadata map[string]string
}

func OKOutcome(history string) Outcome {
	return Outcome{Status: JobOK, History: history}
}

// OKOutcomeWithMetadata is an OK outcome carrying metadata that replaces the
// run's metadata wholesale.
func OKOutcomeWithMetadata(history string, metadata map[string]string) Outcome {
	return Outcome{Status: JobOK, History: history, Metadata: metadata}
}

// FailureOutcome records an expected business rejection with its reasons.
func FailureOutcome(history string, reasons ...string) Outcome {
	return Outcome{Status: JobFailure, History: history, Errors: reasons}
}

// ErrorOutcome records an unexpected collaborator error. The cause's message
// is retained for the job's error list; the history entry stays generic.
func ErrorOutcome(history string, cause error) Outcome {
	return Outcome{Status: JobError, History: history, Errors: []string{cause.Error()}}
}
