package predicates

import (
	"github.com/zosjobs/jobs-gateway/models"
)

// IsJobMatchingStatus returns a predicate selecting jobs whose status satisfies status
func IsJobMatchingStatus(status models.JobStatus) func(j models.Job) bool {
	return func(j models.Job) bool {
		return status.Matches(j.Status)
	}
}
