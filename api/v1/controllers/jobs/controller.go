package jobs

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	apierrors "github.com/zosjobs/jobs-gateway/api/errors"
	"github.com/zosjobs/jobs-gateway/api/v1/controllers"
	jobApi "github.com/zosjobs/jobs-gateway/api/v1/jobs"
	"github.com/zosjobs/jobs-gateway/models"
)

const (
	jobNameParam = "jobName"
	jobIDParam   = "jobId"
	fileIDParam  = "fileId"
)

type jobController struct {
	*controllers.ControllerBase
	handler jobApi.JobHandler
}

// New create a new job controller
func New(handler jobApi.JobHandler) controllers.Controller {
	return &jobController{
		handler: handler,
	}
}

// GetRoutes List the supported routes of this controller
func (controller *jobController) GetRoutes() []controllers.Route {
	jobPath := fmt.Sprintf("/jobs/:%s/:%s", jobNameParam, jobIDParam)
	routes := []controllers.Route{
		{
			Path:    "/jobs",
			Method:  http.MethodGet,
			Handler: controller.GetJobs,
		},
		{
			Path:    "/jobs",
			Method:  http.MethodPost,
			Handler: controller.SubmitJobFile,
		},
		{
			Path:    "/jobs/string",
			Method:  http.MethodPost,
			Handler: controller.SubmitJobString,
		},
		{
			Path:    jobPath,
			Method:  http.MethodGet,
			Handler: controller.GetJob,
		},
		{
			Path:    jobPath,
			Method:  http.MethodDelete,
			Handler: controller.PurgeJob,
		},
		{
			Path:    jobPath,
			Method:  http.MethodPut,
			Handler: controller.ModifyJob,
		},
		{
			Path:    jobPath + "/files",
			Method:  http.MethodGet,
			Handler: controller.GetJobFiles,
		},
		{
			Path:    fmt.Sprintf("%s/files/:%s/content", jobPath, fileIDParam),
			Method:  http.MethodGet,
			Handler: controller.GetJobFileContent,
		},
		{
			Path:    jobPath + "/content",
			Method:  http.MethodGet,
			Handler: controller.GetJobContent,
		},
		{
			Path:    jobPath + "/jcl",
			Method:  http.MethodGet,
			Handler: controller.GetJobJcl,
		},
		{
			Path:    jobPath + "/steps",
			Method:  http.MethodGet,
			Handler: controller.GetJobSteps,
		},
	}
	return routes
}

// GetJobs Get jobs matching prefix, owner and status
func (controller *jobController) GetJobs(c *gin.Context) {
	// swagger:operation GET /jobs Job getJobs
	// ---
	// summary: Gets jobs
	// parameters:
	// - name: prefix
	//   in: query
	//   description: Job name prefix, may end with *
	//   type: string
	//   required: false
	// - name: owner
	//   in: query
	//   description: Owner of the jobs
	//   type: string
	//   required: false
	// - name: status
	//   in: query
	//   description: Status of the jobs, one of ACTIVE, OUTPUT, INPUT or ALL
	//   type: string
	//   required: false
	// responses:
	//   "200":
	//     description: "Successful get jobs"
	//     schema:
	//        type: "array"
	//        items:
	//           "$ref": "#/definitions/Job"
	//   "400":
	//     description: "Invalid prefix, owner or status"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())
	status := models.JobStatusAll
	if value, ok := c.GetQuery("status"); ok && value != "" {
		parsed, err := models.ParseJobStatus(value)
		if err != nil {
			controller.HandleError(c, apierrors.NewInvalidInput("status", err.Error()))
			return
		}
		status = parsed
	}
	prefix, owner := c.Query("prefix"), c.Query("owner")
	logger.Info().Msgf("Get jobs with prefix '%s', owner '%s' and status %s", prefix, owner, status)

	jobs, err := controller.handler.GetJobs(c.Request.Context(), prefix, owner, status)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Debug().Msgf("Found %d jobs", len(jobs))
	c.JSON(http.StatusOK, jobs)
}

// GetJob Get a job
func (controller *jobController) GetJob(c *gin.Context) {
	// swagger:operation GET /jobs/{jobName}/{jobId} Job getJob
	// ---
	// summary: Gets job
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job"
	//     schema:
	//        "$ref": "#/definitions/Job"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)
	log.Ctx(c.Request.Context()).Info().Msgf("Get job %s(%s)", jobName, jobID)
	job, err := controller.handler.GetJob(c.Request.Context(), jobName, jobID)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// SubmitJobString Submit JCL text
func (controller *jobController) SubmitJobString(c *gin.Context) {
	// swagger:operation POST /jobs/string Job submitJobString
	// ---
	// summary: Submit JCL text
	// parameters:
	// - name: submitJobString
	//   in: body
	//   description: JCL to submit
	//   required: true
	//   schema:
	//       "$ref": "#/definitions/SubmitJobStringRequest"
	// responses:
	//   "201":
	//     description: "Successful submit job"
	//     schema:
	//        "$ref": "#/definitions/Job"
	//   "400":
	//     description: "Invalid JCL"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msg("Submit job string")

	var request models.SubmitJobStringRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.HandleError(c, apierrors.NewInvalidInput("payload", err.Error()))
		return
	}

	job, err := controller.handler.SubmitJobString(c.Request.Context(), request.JCL)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Info().Msgf("Job %s(%s) has been submitted", job.JobName, job.JobID)
	c.JSON(http.StatusCreated, job)
}

// SubmitJobFile Submit JCL held in a data set or z/OS UNIX file
func (controller *jobController) SubmitJobFile(c *gin.Context) {
	// swagger:operation POST /jobs Job submitJobFile
	// ---
	// summary: Submit JCL held in a data set or z/OS UNIX file
	// parameters:
	// - name: submitJobFile
	//   in: body
	//   description: Reference to the JCL to submit
	//   required: true
	//   schema:
	//       "$ref": "#/definitions/SubmitJobFileRequest"
	// responses:
	//   "201":
	//     description: "Successful submit job"
	//     schema:
	//        "$ref": "#/definitions/Job"
	//   "400":
	//     description: "Bad request"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "404":
	//     description: "Data set not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())

	var request models.SubmitJobFileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.HandleError(c, apierrors.NewInvalidInput("payload", err.Error()))
		return
	}
	logger.Info().Msgf("Submit job file %s", request.File)

	job, err := controller.handler.SubmitJobFile(c.Request.Context(), request.File)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Info().Msgf("Job %s(%s) has been submitted", job.JobName, job.JobID)
	c.JSON(http.StatusCreated, job)
}

// PurgeJob Purge a job and its output
func (controller *jobController) PurgeJob(c *gin.Context) {
	// swagger:operation DELETE /jobs/{jobName}/{jobId} Job purgeJob
	// ---
	// summary: Purge job
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful purge job"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)
	log.Ctx(c.Request.Context()).Info().Msgf("Purge job %s(%s)", jobName, jobID)
	if err := controller.handler.PurgeJob(c.Request.Context(), jobName, jobID); err != nil {
		controller.HandleError(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, fmt.Sprintf("job %s(%s) successfully purged", jobName, jobID))
}

// ModifyJob Cancel, hold or release a job
func (controller *jobController) ModifyJob(c *gin.Context) {
	// swagger:operation PUT /jobs/{jobName}/{jobId} Job modifyJob
	// ---
	// summary: Cancel, hold or release job
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// - name: modifyJob
	//   in: body
	//   description: Command to apply
	//   required: true
	//   schema:
	//       "$ref": "#/definitions/ModifyJobRequest"
	// responses:
	//   "200":
	//     description: "Successful modify job"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "400":
	//     description: "Invalid command"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)

	var request models.ModifyJobRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.HandleError(c, apierrors.NewInvalidInput("payload", err.Error()))
		return
	}
	log.Ctx(c.Request.Context()).Info().Msgf("Modify job %s(%s) with %s", jobName, jobID, request.Command)

	if err := controller.handler.ModifyJob(c.Request.Context(), jobName, jobID, request.Command); err != nil {
		controller.HandleError(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, fmt.Sprintf("%s of job %s(%s) was successful", request.Command, jobName, jobID))
}

// GetJobFiles Get the spool files of a job
func (controller *jobController) GetJobFiles(c *gin.Context) {
	// swagger:operation GET /jobs/{jobName}/{jobId}/files Job getJobFiles
	// ---
	// summary: Gets the spool files of a job
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job files"
	//     schema:
	//        type: "array"
	//        items:
	//           "$ref": "#/definitions/JobFile"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msgf("Get files of job %s(%s)", jobName, jobID)
	files, err := controller.handler.GetJobFiles(c.Request.Context(), jobName, jobID)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Debug().Msgf("Found %d files", len(files))
	c.JSON(http.StatusOK, files)
}

// GetJobFileContent Get the content of a spool file
func (controller *jobController) GetJobFileContent(c *gin.Context) {
	// swagger:operation GET /jobs/{jobName}/{jobId}/files/{fileId}/content Job getJobFileContent
	// ---
	// summary: Gets the content of a spool file
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// - name: fileId
	//   in: path
	//   description: Id of the spool file
	//   type: integer
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job file content"
	//     schema:
	//        "$ref": "#/definitions/JobFileContent"
	//   "400":
	//     description: "Invalid file id"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)
	fileID, err := strconv.Atoi(c.Param(fileIDParam))
	if err != nil {
		controller.HandleError(c, apierrors.NewInvalidInput(fileIDParam, err.Error()))
		return
	}
	log.Ctx(c.Request.Context()).Info().Msgf("Get content of file %d of job %s(%s)", fileID, jobName, jobID)
	fileContent, err := controller.handler.GetJobFileContent(c.Request.Context(), jobName, jobID, fileID)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, fileContent)
}

// GetJobContent Get the content of all spool files of a job
func (controller *jobController) GetJobContent(c *gin.Context) {
	// swagger:operation GET /jobs/{jobName}/{jobId}/content Job getJobContent
	// ---
	// summary: Gets the content of all spool files of a job
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job content"
	//     schema:
	//        "$ref": "#/definitions/JobFileContent"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)
	log.Ctx(c.Request.Context()).Info().Msgf("Get content of job %s(%s)", jobName, jobID)
	jobContent, err := controller.handler.GetJobContent(c.Request.Context(), jobName, jobID)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobContent)
}

// GetJobJcl Get the JCL of a job
func (controller *jobController) GetJobJcl(c *gin.Context) {
	// swagger:operation GET /jobs/{jobName}/{jobId}/jcl Job getJobJcl
	// ---
	// summary: Gets the JCL of a job
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job JCL"
	//     schema:
	//        "$ref": "#/definitions/JobFileContent"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)
	log.Ctx(c.Request.Context()).Info().Msgf("Get JCL of job %s(%s)", jobName, jobID)
	jclContent, err := controller.handler.GetJobJcl(c.Request.Context(), jobName, jobID)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, jclContent)
}

// GetJobSteps Get the steps of a job
func (controller *jobController) GetJobSteps(c *gin.Context) {
	// swagger:operation GET /jobs/{jobName}/{jobId}/steps Job getJobSteps
	// ---
	// summary: Gets the steps of a job from its JCL
	// parameters:
	// - name: jobName
	//   in: path
	//   description: Name of job
	//   type: string
	//   required: true
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job steps"
	//     schema:
	//        type: "array"
	//        items:
	//           "$ref": "#/definitions/JobStep"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobName, jobID := c.Param(jobNameParam), c.Param(jobIDParam)
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msgf("Get steps of job %s(%s)", jobName, jobID)
	steps, err := controller.handler.GetJobSteps(c.Request.Context(), jobName, jobID)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Debug().Msgf("Found %d steps", len(steps))
	c.JSON(http.StatusOK, steps)
}
