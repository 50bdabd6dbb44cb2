package errors_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/zosjobs/jobs-gateway/api/errors"
	"github.com/zosjobs/jobs-gateway/models/common"
)

func Test_NotFoundErrors(t *testing.T) {
	scenarios := []struct {
		name string
		err  *apierrors.StatusError
		kind apierrors.Kind
	}{
		{name: "job name", err: apierrors.NewJobNameNotFound("TESTJOB", "JOB00001"), kind: apierrors.KindJobNameNotFound},
		{name: "job id", err: apierrors.NewJobIDNotFound("TESTJOB", "JOB00001"), kind: apierrors.KindJobIDNotFound},
		{name: "file id", err: apierrors.NewJobFileIDNotFound("TESTJOB", "JOB00001", 4), kind: apierrors.KindJobFileIDNotFound},
		{name: "jcl", err: apierrors.NewJclNotFound("TESTJOB", "JOB00001"), kind: apierrors.KindJclNotFound},
		{name: "data set", err: apierrors.NewDataSetNotFound("IBMUSER.JCL(NONE)"), kind: apierrors.KindDataSetNotFound},
	}
	for _, ts := range scenarios {
		t.Run(ts.name, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, ts.err.Status().Code)
			assert.Equal(t, common.StatusReasonNotFound, ts.err.Status().Reason)
			assert.Equal(t, ts.kind, apierrors.KindOf(ts.err))
			assert.True(t, apierrors.IsNotFound(ts.err))
		})
	}
}

func Test_JobFileIDNotFound_Details(t *testing.T) {
	err := apierrors.NewJobFileIDNotFound("TESTJOB", "JOB00001", 4)
	details := err.Status().Details
	require.NotNil(t, details)
	assert.Equal(t, "TESTJOB", details.JobName)
	assert.Equal(t, "JOB00001", details.JobID)
	require.NotNil(t, details.FileID)
	assert.Equal(t, 4, *details.FileID)
	assert.Equal(t, "Job with name 'TESTJOB' and id 'JOB00001' does not contain spool file with id 4", err.Error())
}

func Test_InvalidErrors_CarryCallerValue(t *testing.T) {
	err := apierrors.NewInvalidPrefix("TOO*LONG*")
	assert.Equal(t, http.StatusBadRequest, err.Status().Code)
	assert.Equal(t, "TOO*LONG*", err.Status().Details.Value)
	assert.Equal(t, apierrors.KindInvalidPrefix, err.Kind())

	err = apierrors.NewInvalidOwner("X")
	assert.Equal(t, apierrors.KindInvalidOwner, err.Kind())
	assert.Equal(t, "Value 'X' of owner is invalid", err.Error())
}

func Test_UpstreamErrors(t *testing.T) {
	err := apierrors.NewUpstreamUnavailable(http.StatusInternalServerError, "/zosmf/restjobs/jobs")
	assert.Equal(t, http.StatusServiceUnavailable, err.Status().Code)
	assert.Equal(t, "/zosmf/restjobs/jobs", err.Status().Details.Path)
	assert.Equal(t, http.StatusInternalServerError, err.Status().Details.UpstreamStatus)

	err = apierrors.NewUpstreamGeneric(http.StatusConflict, "conflict")
	assert.Equal(t, apierrors.KindUpstreamGeneric, err.Kind())
	assert.Equal(t, "conflict", err.Status().Details.UpstreamMessage)
	assert.Equal(t, http.StatusConflict, err.Status().Details.UpstreamStatus)
}

func Test_TransportError_Unwraps(t *testing.T) {
	err := apierrors.NewTransport(io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, apierrors.KindTransport, apierrors.KindOf(err))
}

func Test_NewFromError(t *testing.T) {
	wrapped := fmt.Errorf("get job: %w", apierrors.NewJobNameNotFound("A", "B"))
	assert.Equal(t, apierrors.KindJobNameNotFound, apierrors.NewFromError(wrapped).Kind())
	assert.True(t, apierrors.IsKind(wrapped, apierrors.KindJobNameNotFound))

	unknown := apierrors.NewFromError(errors.New("boom"))
	assert.Equal(t, apierrors.KindUnknown, unknown.Kind())
	assert.Equal(t, http.StatusInternalServerError, unknown.Status().Code)
	assert.False(t, apierrors.IsKind(nil, apierrors.KindUnknown))
}
