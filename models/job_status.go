package models

import (
	"fmt"
	"strings"
)

// JobStatus Enumeration of the statuses of a job, with ALL as the query wildcard
type JobStatus string

const (
	// JobStatusActive Job is executing
	JobStatusActive JobStatus = "ACTIVE"
	// JobStatusOutput Job has finished and its output is on the spool
	JobStatusOutput JobStatus = "OUTPUT"
	// JobStatusInput Job is waiting for execution
	JobStatusInput JobStatus = "INPUT"
	// JobStatusAll Matches any status
	JobStatusAll JobStatus = "ALL"
)

// ParseJobStatus converts a status token, ignoring case
func ParseJobStatus(value string) (JobStatus, error) {
	switch status := JobStatus(strings.ToUpper(strings.TrimSpace(value))); status {
	case JobStatusActive, JobStatusOutput, JobStatusInput, JobStatusAll:
		return status, nil
	default:
		return "", fmt.Errorf("invalid job status %q", value)
	}
}

// Matches reports whether a job in the candidate status satisfies this status
func (s JobStatus) Matches(candidate JobStatus) bool {
	return s == JobStatusAll || candidate == JobStatusAll || s == candidate
}

func (s JobStatus) String() string {
	return string(s)
}
