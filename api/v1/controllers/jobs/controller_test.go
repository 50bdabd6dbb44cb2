package jobs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/zosjobs/jobs-gateway/api/errors"
	"github.com/zosjobs/jobs-gateway/api/test"
	"github.com/zosjobs/jobs-gateway/api/v1/jobs"
	"github.com/zosjobs/jobs-gateway/api/v1/jobs/mock"
	"github.com/zosjobs/jobs-gateway/models"
	"github.com/zosjobs/jobs-gateway/models/common"
)

const (
	jobName = "TESTJOB"
	jobID   = "JOB00123"
)

func setupTest(handler jobs.JobHandler) *test.ControllerTestUtils {
	jobController := jobController{handler: handler}
	controllerTestUtils := test.New(&jobController)
	return &controllerTestUtils
}

func newJob(status models.JobStatus) models.Job {
	returnCode := "CC 0000"
	return models.Job{
		JobID:          jobID,
		JobName:        jobName,
		Owner:          "IBMUSER",
		Type:           "JOB",
		ExecutionClass: "A",
		Status:         status,
		ReturnCode:     &returnCode,
		Subsystem:      "JES2",
		PhaseName:      "Job is on the hard copy queue",
	}
}

func assertStatus(t *testing.T, response *http.Response, code int, reason common.StatusReason) common.Status {
	require.NotNil(t, response)
	assert.Equal(t, code, response.StatusCode)
	var returnedStatus common.Status
	require.NoError(t, test.GetResponseBody(response, &returnedStatus))
	assert.Equal(t, code, returnedStatus.Code)
	assert.Equal(t, reason, returnedStatus.Reason)
	return returnedStatus
}

func TestGetJobs(t *testing.T) {
	t.Run("Get jobs - success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		job := newJob(models.JobStatusOutput)
		jobHandler.
			EXPECT().
			GetJobs(test.RequestContextMatcher{}, "TEST*", "IBMUSER", models.JobStatusOutput).
			Return([]models.Job{job}, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, "/api/v1/jobs?prefix=TEST*&owner=IBMUSER&status=output")
		response := <-responseChannel
		require.NotNil(t, response)

		assert.Equal(t, http.StatusOK, response.StatusCode)
		var returnedJobs []models.Job
		require.NoError(t, test.GetResponseBody(response, &returnedJobs))
		assert.Equal(t, []models.Job{job}, returnedJobs)
	})

	t.Run("Get jobs - default status", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobs(test.RequestContextMatcher{}, "", "", models.JobStatusAll).
			Return([]models.Job{}, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, "/api/v1/jobs")
		require.NotNil(t, response)
		assert.Equal(t, http.StatusOK, response.StatusCode)
	})

	t.Run("Get jobs - invalid status", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.EXPECT().GetJobs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, "/api/v1/jobs?status=RUNNING")
		returnedStatus := assertStatus(t, response, http.StatusBadRequest, common.StatusReasonInvalid)
		require.NotNil(t, returnedStatus.Details)
		assert.Equal(t, string(apierrors.KindInvalidInput), returnedStatus.Details.Kind)
	})

	t.Run("Get jobs - invalid prefix", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobs(test.RequestContextMatcher{}, "BAD", "", models.JobStatusAll).
			Return(nil, apierrors.NewInvalidPrefix("BAD")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, "/api/v1/jobs?prefix=BAD")
		returnedStatus := assertStatus(t, response, http.StatusBadRequest, common.StatusReasonInvalid)
		assert.Equal(t, apierrors.InvalidMessage("prefix", "BAD"), returnedStatus.Message)
	})

	t.Run("Get jobs - status code 500", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobs(test.RequestContextMatcher{}, "", "", models.JobStatusAll).
			Return(nil, errors.New("unhandled error")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, "/api/v1/jobs")
		returnedStatus := assertStatus(t, response, http.StatusInternalServerError, common.StatusReasonUnknown)
		assert.Equal(t, common.StatusFailure, returnedStatus.Status)
	})
}

func TestGetJob(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		job := newJob(models.JobStatusActive)
		jobHandler.
			EXPECT().
			GetJob(test.RequestContextMatcher{}, jobName, jobID).
			Return(&job, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s", jobName, jobID))
		require.NotNil(t, response)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		var returnedJob models.Job
		require.NoError(t, test.GetResponseBody(response, &returnedJob))
		assert.Equal(t, job, returnedJob)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJob(test.RequestContextMatcher{}, jobName, jobID).
			Return(nil, apierrors.NewJobNameNotFound(jobName, jobID)).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s", jobName, jobID))
		returnedStatus := assertStatus(t, response, http.StatusNotFound, common.StatusReasonNotFound)
		assert.Equal(t, apierrors.JobNotFoundMessage(jobName, jobID), returnedStatus.Message)
		require.NotNil(t, returnedStatus.Details)
		assert.Equal(t, jobName, returnedStatus.Details.JobName)
		assert.Equal(t, jobID, returnedStatus.Details.JobID)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJob(test.RequestContextMatcher{}, jobName, jobID).
			Return(nil, apierrors.NewUpstreamUnavailable(http.StatusBadGateway, "/zosmf/restjobs/jobs/TESTJOB/JOB00123")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s", jobName, jobID))
		returnedStatus := assertStatus(t, response, http.StatusServiceUnavailable, common.StatusReasonServiceUnavailable)
		assert.Equal(t, http.StatusBadGateway, returnedStatus.Details.UpstreamStatus)
	})
}

func TestSubmitJobString(t *testing.T) {
	jclText := "//TESTJOB JOB (ACCT)\n//STEP1 EXEC PGM=IEFBR14\n"

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		job := newJob(models.JobStatusInput)
		jobHandler.
			EXPECT().
			SubmitJobString(test.RequestContextMatcher{}, jclText).
			Return(&job, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPost, "/api/v1/jobs/string", models.SubmitJobStringRequest{JCL: jclText})
		require.NotNil(t, response)
		assert.Equal(t, http.StatusCreated, response.StatusCode)
		var returnedJob models.Job
		require.NoError(t, test.GetResponseBody(response, &returnedJob))
		assert.Equal(t, jobID, returnedJob.JobID)
	})

	t.Run("missing jcl", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.EXPECT().SubmitJobString(gomock.Any(), gomock.Any()).Times(0)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPost, "/api/v1/jobs/string", []byte(`{}`))
		assertStatus(t, response, http.StatusBadRequest, common.StatusReasonInvalid)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.EXPECT().SubmitJobString(gomock.Any(), gomock.Any()).Times(0)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPost, "/api/v1/jobs/string", []byte(`{"jcl":`))
		assertStatus(t, response, http.StatusBadRequest, common.StatusReasonInvalid)
	})

	t.Run("rejected by upstream", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			SubmitJobString(test.RequestContextMatcher{}, "garbage").
			Return(nil, apierrors.NewInvalidInput("JCL", "Submit input data does not start with a slash")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPost, "/api/v1/jobs/string", models.SubmitJobStringRequest{JCL: "garbage"})
		returnedStatus := assertStatus(t, response, http.StatusBadRequest, common.StatusReasonInvalid)
		assert.Equal(t, "Submit input data does not start with a slash", returnedStatus.Details.UpstreamMessage)
	})
}

func TestSubmitJobFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		job := newJob(models.JobStatusInput)
		jobHandler.
			EXPECT().
			SubmitJobFile(test.RequestContextMatcher{}, "IBMUSER.JCL(TESTJOB)").
			Return(&job, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPost, "/api/v1/jobs", models.SubmitJobFileRequest{File: "IBMUSER.JCL(TESTJOB)"})
		require.NotNil(t, response)
		assert.Equal(t, http.StatusCreated, response.StatusCode)
	})

	t.Run("data set not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			SubmitJobFile(test.RequestContextMatcher{}, "IBMUSER.JCL(NONE)").
			Return(nil, apierrors.NewDataSetNotFound("IBMUSER.JCL(NONE)")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPost, "/api/v1/jobs", models.SubmitJobFileRequest{File: "IBMUSER.JCL(NONE)"})
		returnedStatus := assertStatus(t, response, http.StatusNotFound, common.StatusReasonNotFound)
		assert.Equal(t, apierrors.DataSetNotFoundMessage("IBMUSER.JCL(NONE)"), returnedStatus.Message)
	})
}

func TestPurgeJob(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			PurgeJob(test.RequestContextMatcher{}, jobName, jobID).
			Return(nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodDelete, fmt.Sprintf("/api/v1/jobs/%s/%s", jobName, jobID))
		returnedStatus := assertStatus(t, response, http.StatusOK, common.StatusReasonUnknown)
		assert.Equal(t, common.StatusSuccess, returnedStatus.Status)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			PurgeJob(test.RequestContextMatcher{}, jobName, jobID).
			Return(apierrors.NewJobIDNotFound(jobName, jobID)).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodDelete, fmt.Sprintf("/api/v1/jobs/%s/%s", jobName, jobID))
		assertStatus(t, response, http.StatusNotFound, common.StatusReasonNotFound)
	})
}

func TestModifyJob(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			ModifyJob(test.RequestContextMatcher{}, jobName, jobID, models.ModifyCommandHold).
			Return(nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPut, fmt.Sprintf("/api/v1/jobs/%s/%s", jobName, jobID), models.ModifyJobRequest{Command: models.ModifyCommandHold})
		returnedStatus := assertStatus(t, response, http.StatusOK, common.StatusReasonUnknown)
		assert.Equal(t, common.StatusSuccess, returnedStatus.Status)
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.EXPECT().ModifyJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequestWithBody(context.Background(), http.MethodPut, fmt.Sprintf("/api/v1/jobs/%s/%s", jobName, jobID), []byte(`{"command":"restart"}`))
		assertStatus(t, response, http.StatusBadRequest, common.StatusReasonInvalid)
	})
}

func TestGetJobFiles(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobHandler := mock.NewMockJobHandler(ctrl)
	files := []models.JobFile{{ID: 2, DDName: "JESMSGLG", RecordFormat: "UA", RecordLength: 133, ByteCount: 1200, RecordCount: 20}}
	jobHandler.
		EXPECT().
		GetJobFiles(test.RequestContextMatcher{}, jobName, jobID).
		Return(files, nil).
		Times(1)

	controllerTestUtils := setupTest(jobHandler)
	response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/files", jobName, jobID))
	require.NotNil(t, response)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	var returnedFiles []models.JobFile
	require.NoError(t, test.GetResponseBody(response, &returnedFiles))
	assert.Equal(t, files, returnedFiles)
}

func TestGetJobFileContent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobFileContent(test.RequestContextMatcher{}, jobName, jobID, 2).
			Return(&models.JobFileContent{Content: "line 1\n"}, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/files/2/content", jobName, jobID))
		require.NotNil(t, response)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		var returnedContent models.JobFileContent
		require.NoError(t, test.GetResponseBody(response, &returnedContent))
		assert.Equal(t, "line 1\n", returnedContent.Content)
	})

	t.Run("invalid file id", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.EXPECT().GetJobFileContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/files/two/content", jobName, jobID))
		assertStatus(t, response, http.StatusBadRequest, common.StatusReasonInvalid)
	})

	t.Run("file not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobFileContent(test.RequestContextMatcher{}, jobName, jobID, 9).
			Return(nil, apierrors.NewJobFileIDNotFound(jobName, jobID, 9)).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/files/9/content", jobName, jobID))
		returnedStatus := assertStatus(t, response, http.StatusNotFound, common.StatusReasonNotFound)
		require.NotNil(t, returnedStatus.Details.FileID)
		assert.Equal(t, 9, *returnedStatus.Details.FileID)
	})
}

func TestGetJobContent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobHandler := mock.NewMockJobHandler(ctrl)
	jobHandler.
		EXPECT().
		GetJobContent(test.RequestContextMatcher{}, jobName, jobID).
		Return(&models.JobFileContent{Content: "ABC"}, nil).
		Times(1)

	controllerTestUtils := setupTest(jobHandler)
	response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/content", jobName, jobID))
	require.NotNil(t, response)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	var returnedContent models.JobFileContent
	require.NoError(t, test.GetResponseBody(response, &returnedContent))
	assert.Equal(t, "ABC", returnedContent.Content)
}

func TestGetJobJcl(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobJcl(test.RequestContextMatcher{}, jobName, jobID).
			Return(&models.JobFileContent{Content: "//TESTJOB JOB\n"}, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/jcl", jobName, jobID))
		require.NotNil(t, response)
		assert.Equal(t, http.StatusOK, response.StatusCode)
	})

	t.Run("jcl not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := mock.NewMockJobHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobJcl(test.RequestContextMatcher{}, jobName, jobID).
			Return(nil, apierrors.NewJclNotFound(jobName, jobID)).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/jcl", jobName, jobID))
		returnedStatus := assertStatus(t, response, http.StatusNotFound, common.StatusReasonNotFound)
		assert.Equal(t, apierrors.JclNotFoundMessage(jobName, jobID), returnedStatus.Message)
	})
}

func TestGetJobSteps(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobHandler := mock.NewMockJobHandler(ctrl)
	steps := []models.JobStep{{Name: "STEP1", Program: "IEFBR14", Step: 1}}
	jobHandler.
		EXPECT().
		GetJobSteps(test.RequestContextMatcher{}, jobName, jobID).
		Return(steps, nil).
		Times(1)

	controllerTestUtils := setupTest(jobHandler)
	response := <-controllerTestUtils.ExecuteRequest(context.Background(), http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s/%s/steps", jobName, jobID))
	require.NotNil(t, response)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	var returnedSteps []models.JobStep
	require.NoError(t, test.GetResponseBody(response, &returnedSteps))
	assert.Equal(t, steps, returnedSteps)
}
