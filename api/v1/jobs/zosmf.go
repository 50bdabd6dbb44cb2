package jobs

import (
	"fmt"
	"net/http"
	"strings"

	apierrors "github.com/zosjobs/jobs-gateway/api/errors"
	"github.com/zosjobs/jobs-gateway/models"
	"github.com/zosjobs/jobs-gateway/pkg/runner"
)

const (
	jobsRootPath = "/zosmf/restjobs/jobs"

	// JclFileID is the spool file holding the JCL of a job as read by the job entry subsystem
	JclFileID = 3

	// modifyVersion makes hold, release and cancel synchronous
	modifyVersion = "2.0"
	// defaultFilter lists jobs regardless of owner or name
	defaultFilter = "*"
)

// zosmfJob is a job document of the z/OSMF jobs REST service
type zosmfJob struct {
	JobID     string  `json:"jobid"`
	JobName   string  `json:"jobname"`
	Owner     string  `json:"owner"`
	Type      string  `json:"type"`
	Class     string  `json:"class"`
	Status    string  `json:"status"`
	RetCode   *string `json:"retcode"`
	Subsystem string  `json:"subsystem"`
	PhaseName string  `json:"phase-name"`
}

func (j zosmfJob) toJob() (models.Job, error) {
	status := models.JobStatus(j.Status)
	switch status {
	case models.JobStatusActive, models.JobStatusOutput, models.JobStatusInput:
	default:
		return models.Job{}, fmt.Errorf("job %s(%s): status %q is not a job status", j.JobName, j.JobID, j.Status)
	}
	return models.Job{
		JobID:          j.JobID,
		JobName:        j.JobName,
		Owner:          j.Owner,
		Type:           j.Type,
		ExecutionClass: j.Class,
		Status:         status,
		ReturnCode:     j.RetCode,
		Subsystem:      j.Subsystem,
		PhaseName:      j.PhaseName,
	}, nil
}

// zosmfJobFile is a spool file document of the z/OSMF jobs REST service
type zosmfJobFile struct {
	ID          int    `json:"id"`
	DDName      string `json:"ddname"`
	RecFm       string `json:"recfm"`
	LRecL       int    `json:"lrecl"`
	ByteCount   int    `json:"byte-count"`
	RecordCount int    `json:"record-count"`
}

func (f zosmfJobFile) toJobFile() models.JobFile {
	return models.JobFile{
		ID:           f.ID,
		DDName:       f.DDName,
		RecordFormat: f.RecFm,
		RecordLength: f.LRecL,
		ByteCount:    f.ByteCount,
		RecordCount:  f.RecordCount,
	}
}

type zosmfSubmitFile struct {
	File string `json:"file"`
}

type zosmfModify struct {
	Request string `json:"request"`
	Version string `json:"version"`
}

func jobPath(jobName, jobID string) string {
	return fmt.Sprintf("%s/%s/%s", jobsRootPath, jobName, jobID)
}

func jobFilesPath(jobName, jobID string) string {
	return jobPath(jobName, jobID) + "/files"
}

func jobFileRecordsPath(jobName, jobID string, fileID int) string {
	return fmt.Sprintf("%s/%d/records", jobFilesPath(jobName, jobID), fileID)
}

// submitFileReference quotes data set names, z/OS UNIX paths are used as they are
func submitFileReference(file string) string {
	if strings.HasPrefix(file, "/") {
		return file
	}
	return fmt.Sprintf("//'%s'", file)
}

// jobRules classifies failures of any operation addressing one job
func jobRules(jobName, jobID string) runner.Classifier {
	return runner.Classifier{
		{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("No job found for reference: '%s(%s)'", jobName, jobID),
			Err:     func(string) error { return apierrors.NewJobNameNotFound(jobName, jobID) },
		},
		{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("Failed to lookup job %s(%s)", jobName, jobID),
			Err:     func(string) error { return apierrors.NewJobIDNotFound(jobName, jobID) },
		},
	}
}

// jobFileRules classifies failures of spool file reads. A missing JCL file is reported as JCL not found.
func jobFileRules(jobName, jobID string, fileID int) runner.Classifier {
	notFound := func(string) error { return apierrors.NewJobFileIDNotFound(jobName, jobID, fileID) }
	if fileID == JclFileID {
		notFound = func(string) error { return apierrors.NewJclNotFound(jobName, jobID) }
	}
	return jobRules(jobName, jobID).With(runner.Rule{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Job '%s(%s)' does not contain spool file id %d", jobName, jobID, fileID),
		Err:     notFound,
	})
}

func listRules(prefix, owner string) runner.Classifier {
	return runner.Classifier{
		{
			Status:  http.StatusBadRequest,
			Message: "Value of prefix query parameter is not valid",
			Err:     func(string) error { return apierrors.NewInvalidPrefix(prefix) },
		},
		{
			Status:  http.StatusBadRequest,
			Message: "Value of owner query parameter is not valid",
			Err:     func(string) error { return apierrors.NewInvalidOwner(owner) },
		},
	}
}

func submitStringRules() runner.Classifier {
	return runner.Classifier{
		{
			Status: http.StatusBadRequest,
			Err:    func(message string) error { return apierrors.NewInvalidInput("JCL", message) },
		},
	}
}

func submitFileRules(file string) runner.Classifier {
	return runner.Classifier{
		{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Data set not found: %s", file),
			Err:     func(string) error { return apierrors.NewDataSetNotFound(file) },
		},
		{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("Error opening input data set: %s", submitFileReference(file)),
			Err:     func(string) error { return apierrors.NewDataSetNotFound(file) },
		},
	}
}
