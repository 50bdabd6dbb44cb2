package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"dario.cat/mergo"
	"github.com/equinor/radix-common/utils/slice"
	"github.com/rs/zerolog/log"
	"github.com/zosjobs/jobs-gateway/internal/content"
	"github.com/zosjobs/jobs-gateway/internal/predicates"
	"github.com/zosjobs/jobs-gateway/models"
	"github.com/zosjobs/jobs-gateway/pkg/connector"
	"github.com/zosjobs/jobs-gateway/pkg/jcl"
	"github.com/zosjobs/jobs-gateway/pkg/runner"
)

var defaultSubmitOptions = models.SubmitOptions{
	Class:        "A",
	RecordFormat: "F",
	RecordLength: 80,
	Mode:         "TEXT",
}

type jobHandler struct {
	connector     connector.Connector
	submitOptions models.SubmitOptions
}

type JobHandler interface {
	// GetJobs Get jobs matching prefix, owner and status
	GetJobs(ctx context.Context, prefix, owner string, status models.JobStatus) ([]models.Job, error)
	// GetJob Get a job
	GetJob(ctx context.Context, jobName, jobID string) (*models.Job, error)
	// SubmitJobString Submit JCL text
	SubmitJobString(ctx context.Context, jclText string) (*models.Job, error)
	// SubmitJobFile Submit JCL held in a data set or z/OS UNIX file
	SubmitJobFile(ctx context.Context, file string) (*models.Job, error)
	// PurgeJob Purge a job and its output
	PurgeJob(ctx context.Context, jobName, jobID string) error
	// ModifyJob Cancel, hold or release a job
	ModifyJob(ctx context.Context, jobName, jobID string, command models.ModifyCommand) error
	// GetJobFiles Get the spool files of a job
	GetJobFiles(ctx context.Context, jobName, jobID string) ([]models.JobFile, error)
	// GetJobFileContent Get the content of a spool file
	GetJobFileContent(ctx context.Context, jobName, jobID string, fileID int) (*models.JobFileContent, error)
	// GetJobContent Get the content of all spool files of a job
	GetJobContent(ctx context.Context, jobName, jobID string) (*models.JobFileContent, error)
	// GetJobJcl Get the JCL of a job
	GetJobJcl(ctx context.Context, jobName, jobID string) (*models.JobFileContent, error)
	// GetJobSteps Get the steps of a job from its JCL
	GetJobSteps(ctx context.Context, jobName, jobID string) ([]models.JobStep, error)
}

// New Constructor for job handler. Unset submit options fall back to class A, fixed 80 byte text records.
func New(conn connector.Connector, submitOptions models.SubmitOptions) (JobHandler, error) {
	if err := mergo.Merge(&submitOptions, defaultSubmitOptions); err != nil {
		return nil, fmt.Errorf("failed to apply default submit options: %w", err)
	}
	return &jobHandler{
		connector:     conn,
		submitOptions: submitOptions,
	}, nil
}

// GetJobs Get jobs matching prefix, owner and status
func (h *jobHandler) GetJobs(ctx context.Context, prefix, owner string, status models.JobStatus) ([]models.Job, error) {
	queryPrefix, queryOwner := prefix, owner
	if queryPrefix == "" {
		queryPrefix = defaultFilter
	}
	if queryOwner == "" {
		queryOwner = defaultFilter
	}
	logger := log.Ctx(ctx)
	logger.Debug().Msgf("get jobs with prefix %s, owner %s and status %s", queryPrefix, queryOwner, status)

	return runner.Run(ctx, h.connector, runner.Operation[[]models.Job]{
		Name: "get jobs",
		Request: func() *connector.Request {
			return &connector.Request{
				Method: http.MethodGet,
				Path:   jobsRootPath,
				Query:  url.Values{"owner": {queryOwner}, "prefix": {queryPrefix}},
			}
		},
		SuccessCodes: []int{http.StatusOK},
		Parse: func(response *connector.Response) ([]models.Job, error) {
			var items []zosmfJob
			if err := json.Unmarshal(response.Body, &items); err != nil {
				return nil, err
			}
			matchesStatus := predicates.IsJobMatchingStatus(status)
			jobs := make([]models.Job, 0, len(items))
			for _, item := range items {
				job, err := item.toJob()
				if err != nil {
					logger.Warn().Err(err).Msg("skip job with unknown status")
					continue
				}
				if matchesStatus(job) {
					jobs = append(jobs, job)
				}
			}
			return jobs, nil
		},
		Classify: listRules(prefix, owner),
	})
}

// GetJob Get a job
func (h *jobHandler) GetJob(ctx context.Context, jobName, jobID string) (*models.Job, error) {
	return runner.Run(ctx, h.connector, runner.Operation[*models.Job]{
		Name: "get job",
		Request: func() *connector.Request {
			return &connector.Request{Method: http.MethodGet, Path: jobPath(jobName, jobID)}
		},
		SuccessCodes: []int{http.StatusOK},
		Parse:        parseJob,
		Classify:     jobRules(jobName, jobID),
	})
}

// SubmitJobString Submit JCL text
func (h *jobHandler) SubmitJobString(ctx context.Context, jclText string) (*models.Job, error) {
	return runner.Run(ctx, h.connector, runner.Operation[*models.Job]{
		Name: "submit job string",
		Request: func() *connector.Request {
			return &connector.Request{
				Method: http.MethodPut,
				Path:   jobsRootPath,
				Header: h.intrdrHeader(),
				Body:   []byte(jclText),
			}
		},
		SuccessCodes: []int{http.StatusCreated},
		Parse:        parseJob,
		Classify:     submitStringRules(),
	})
}

// SubmitJobFile Submit JCL held in a data set or z/OS UNIX file
func (h *jobHandler) SubmitJobFile(ctx context.Context, file string) (*models.Job, error) {
	body, err := json.Marshal(zosmfSubmitFile{File: submitFileReference(file)})
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, h.connector, runner.Operation[*models.Job]{
		Name: "submit job file",
		Request: func() *connector.Request {
			return &connector.Request{
				Method: http.MethodPut,
				Path:   jobsRootPath,
				Header: http.Header{"Content-Type": {"application/json"}},
				Body:   body,
			}
		},
		SuccessCodes: []int{http.StatusCreated},
		Parse:        parseJob,
		Classify:     submitFileRules(file),
	})
}

// PurgeJob Purge a job and its output
func (h *jobHandler) PurgeJob(ctx context.Context, jobName, jobID string) error {
	_, err := runner.Run(ctx, h.connector, runner.Operation[struct{}]{
		Name: "purge job",
		Request: func() *connector.Request {
			return &connector.Request{Method: http.MethodDelete, Path: jobPath(jobName, jobID)}
		},
		SuccessCodes: []int{http.StatusAccepted},
		Classify:     jobRules(jobName, jobID),
	})
	return err
}

// ModifyJob Cancel, hold or release a job
func (h *jobHandler) ModifyJob(ctx context.Context, jobName, jobID string, command models.ModifyCommand) error {
	body, err := json.Marshal(zosmfModify{Request: string(command), Version: modifyVersion})
	if err != nil {
		return err
	}
	_, err = runner.Run(ctx, h.connector, runner.Operation[struct{}]{
		Name: fmt.Sprintf("%s job", command),
		Request: func() *connector.Request {
			return &connector.Request{
				Method: http.MethodPut,
				Path:   jobPath(jobName, jobID),
				Header: http.Header{"Content-Type": {"application/json"}},
				Body:   body,
			}
		},
		SuccessCodes: []int{http.StatusAccepted, http.StatusOK},
		Classify:     jobRules(jobName, jobID),
	})
	return err
}

// GetJobFiles Get the spool files of a job
func (h *jobHandler) GetJobFiles(ctx context.Context, jobName, jobID string) ([]models.JobFile, error) {
	return runner.Run(ctx, h.connector, runner.Operation[[]models.JobFile]{
		Name: "get job files",
		Request: func() *connector.Request {
			return &connector.Request{Method: http.MethodGet, Path: jobFilesPath(jobName, jobID)}
		},
		SuccessCodes: []int{http.StatusOK},
		Parse: func(response *connector.Response) ([]models.JobFile, error) {
			var items []zosmfJobFile
			if err := json.Unmarshal(response.Body, &items); err != nil {
				return nil, err
			}
			return slice.Map(items, zosmfJobFile.toJobFile), nil
		},
		Classify: jobRules(jobName, jobID),
	})
}

// GetJobFileContent Get the content of a spool file
func (h *jobHandler) GetJobFileContent(ctx context.Context, jobName, jobID string, fileID int) (*models.JobFileContent, error) {
	return runner.Run(ctx, h.connector, runner.Operation[*models.JobFileContent]{
		Name: "get job file content",
		Request: func() *connector.Request {
			return &connector.Request{Method: http.MethodGet, Path: jobFileRecordsPath(jobName, jobID, fileID)}
		},
		SuccessCodes: []int{http.StatusOK},
		Parse: func(response *connector.Response) (*models.JobFileContent, error) {
			return &models.JobFileContent{Content: string(response.Body)}, nil
		},
		Classify: jobFileRules(jobName, jobID, fileID),
	})
}

// GetJobContent Get the content of all spool files of a job, in listing order
func (h *jobHandler) GetJobContent(ctx context.Context, jobName, jobID string) (*models.JobFileContent, error) {
	files, err := h.GetJobFiles(ctx, jobName, jobID)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Msgf("concatenate %d spool files of job %s(%s)", len(files), jobName, jobID)
	return content.Concatenate(files, func(file models.JobFile) (*models.JobFileContent, error) {
		return h.GetJobFileContent(ctx, jobName, jobID, file.ID)
	})
}

// GetJobJcl Get the JCL of a job
func (h *jobHandler) GetJobJcl(ctx context.Context, jobName, jobID string) (*models.JobFileContent, error) {
	return h.GetJobFileContent(ctx, jobName, jobID, JclFileID)
}

// GetJobSteps Get the steps of a job from its JCL
func (h *jobHandler) GetJobSteps(ctx context.Context, jobName, jobID string) ([]models.JobStep, error) {
	jclContent, err := h.GetJobJcl(ctx, jobName, jobID)
	if err != nil {
		return nil, err
	}
	return jcl.ExtractSteps(jclContent.Content), nil
}

func (h *jobHandler) intrdrHeader() http.Header {
	header := http.Header{}
	header.Set("Content-Type", "text/plain")
	header.Set("X-IBM-Intrdr-Class", h.submitOptions.Class)
	header.Set("X-IBM-Intrdr-Recfm", h.submitOptions.RecordFormat)
	header.Set("X-IBM-Intrdr-Lrecl", strconv.Itoa(h.submitOptions.RecordLength))
	header.Set("X-IBM-Intrdr-Mode", h.submitOptions.Mode)
	return header
}

func parseJob(response *connector.Response) (*models.Job, error) {
	var item zosmfJob
	if err := json.Unmarshal(response.Body, &item); err != nil {
		return nil, err
	}
	job, err := item.toJob()
	if err != nil {
		return nil, err
	}
	return &job, nil
}
