package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/zosjobs/jobs-gateway/models/common"
)

// Kind identifies a classified failure. Callers switch on it rather than on messages.
type Kind string

const (
	KindUnknown             Kind = "Unknown"
	KindJobNameNotFound     Kind = "JobNameNotFound"
	KindJobIDNotFound       Kind = "JobIdNotFound"
	KindJobFileIDNotFound   Kind = "JobFileIdNotFound"
	KindJclNotFound         Kind = "JclNotFound"
	KindDataSetNotFound     Kind = "DataSetNotFound"
	KindInvalidPrefix       Kind = "InvalidPrefix"
	KindInvalidOwner        Kind = "InvalidOwner"
	KindInvalidInput        Kind = "InvalidInput"
	KindUpstreamUnavailable Kind = "UpstreamUnavailable"
	KindUpstreamGeneric     Kind = "UpstreamGeneric"
	KindTransport           Kind = "Transport"
)

type APIStatus interface {
	Status() *common.Status
}

type StatusError struct {
	ErrStatus common.Status
	cause     error
}

var _ error = &StatusError{}

// Error implements the Error interface.
func (e *StatusError) Error() string {
	return e.ErrStatus.Message
}

// Status implements the APIStatus interface.
func (e *StatusError) Status() *common.Status {
	return &e.ErrStatus
}

// Kind of the failure
func (e *StatusError) Kind() Kind {
	if e.ErrStatus.Details == nil {
		return KindUnknown
	}
	return Kind(e.ErrStatus.Details.Kind)
}

func (e *StatusError) Unwrap() error {
	return e.cause
}

func newStatusError(reason common.StatusReason, code int, message string, details common.StatusDetails, cause error) *StatusError {
	return &StatusError{
		ErrStatus: common.Status{
			Status:  common.StatusFailure,
			Reason:  reason,
			Code:    code,
			Message: message,
			Details: &details,
		},
		cause: cause,
	}
}

func newNotFound(kind Kind, message string, details common.StatusDetails) *StatusError {
	details.Kind = string(kind)
	return newStatusError(common.StatusReasonNotFound, http.StatusNotFound, message, details, nil)
}

func newInvalid(kind Kind, message string, details common.StatusDetails) *StatusError {
	details.Kind = string(kind)
	return newStatusError(common.StatusReasonInvalid, http.StatusBadRequest, message, details, nil)
}

func JobNotFoundMessage(jobName, jobID string) string {
	return fmt.Sprintf("No job with name '%s' and id '%s' was found", jobName, jobID)
}

func JobFileNotFoundMessage(jobName, jobID string, fileID int) string {
	return fmt.Sprintf("Job with name '%s' and id '%s' does not contain spool file with id %d", jobName, jobID, fileID)
}

func JclNotFoundMessage(jobName, jobID string) string {
	return fmt.Sprintf("No JCL found for job with name '%s' and id '%s'", jobName, jobID)
}

func DataSetNotFoundMessage(name string) string {
	return fmt.Sprintf("Data set '%s' was not found", name)
}

func InvalidMessage(field, value string) string {
	return fmt.Sprintf("Value '%s' of %s is invalid", value, field)
}

// NewJobNameNotFound no job with the name and id exists
func NewJobNameNotFound(jobName, jobID string) *StatusError {
	return newNotFound(KindJobNameNotFound, JobNotFoundMessage(jobName, jobID), common.StatusDetails{JobName: jobName, JobID: jobID})
}

// NewJobIDNotFound the job name exists but the id could not be looked up
func NewJobIDNotFound(jobName, jobID string) *StatusError {
	return newNotFound(KindJobIDNotFound, JobNotFoundMessage(jobName, jobID), common.StatusDetails{JobName: jobName, JobID: jobID})
}

func NewJobFileIDNotFound(jobName, jobID string, fileID int) *StatusError {
	return newNotFound(KindJobFileIDNotFound, JobFileNotFoundMessage(jobName, jobID, fileID), common.StatusDetails{JobName: jobName, JobID: jobID, FileID: &fileID})
}

// NewJclNotFound no JCL spool file is available for the job, so neither JCL nor steps can be returned
func NewJclNotFound(jobName, jobID string) *StatusError {
	return newNotFound(KindJclNotFound, JclNotFoundMessage(jobName, jobID), common.StatusDetails{JobName: jobName, JobID: jobID})
}

func NewDataSetNotFound(name string) *StatusError {
	return newNotFound(KindDataSetNotFound, DataSetNotFoundMessage(name), common.StatusDetails{Value: name})
}

func NewInvalidPrefix(prefix string) *StatusError {
	return newInvalid(KindInvalidPrefix, InvalidMessage("prefix", prefix), common.StatusDetails{Value: prefix})
}

func NewInvalidOwner(owner string) *StatusError {
	return newInvalid(KindInvalidOwner, InvalidMessage("owner", owner), common.StatusDetails{Value: owner})
}

// NewInvalidInput a generic bad request. The reason is kept in the details, not in the message.
func NewInvalidInput(field, reason string) *StatusError {
	return newInvalid(KindInvalidInput, fmt.Sprintf("Invalid %s", field), common.StatusDetails{Value: field, UpstreamMessage: reason})
}

// NewUpstreamUnavailable the upstream service returned a failure status without a body
func NewUpstreamUnavailable(status int, path string) *StatusError {
	return newStatusError(
		common.StatusReasonServiceUnavailable,
		http.StatusServiceUnavailable,
		fmt.Sprintf("No response body returned from %s, status %d", path, status),
		common.StatusDetails{Kind: string(KindUpstreamUnavailable), Path: path, UpstreamStatus: status},
		nil,
	)
}

// NewUpstreamGeneric the upstream service reported a failure that has no specific local mapping
func NewUpstreamGeneric(status int, message string) *StatusError {
	return newStatusError(
		common.StatusReasonUpstream,
		http.StatusInternalServerError,
		fmt.Sprintf("Upstream service returned status %d: %s", status, message),
		common.StatusDetails{Kind: string(KindUpstreamGeneric), UpstreamStatus: status, UpstreamMessage: message},
		nil,
	)
}

// NewTransport the upstream service could not be reached or its response could not be read
func NewTransport(err error) *StatusError {
	return newStatusError(
		common.StatusReasonServiceUnavailable,
		http.StatusInternalServerError,
		fmt.Sprintf("Failed to call upstream service: %v", err),
		common.StatusDetails{Kind: string(KindTransport)},
		err,
	)
}

func NewUnknown(err error) *StatusError {
	return newStatusError(
		common.StatusReasonUnknown,
		http.StatusInternalServerError,
		err.Error(),
		common.StatusDetails{Kind: string(KindUnknown)},
		err,
	)
}

func NewFromError(err error) *StatusError {
	var statusError *StatusError
	if errors.As(err, &statusError) {
		return statusError
	}
	return NewUnknown(err)
}

// KindOf returns the kind of a classified error, or KindUnknown
func KindOf(err error) Kind {
	var statusError *StatusError
	if errors.As(err, &statusError) {
		return statusError.Kind()
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func IsNotFound(err error) bool {
	return ReasonForError(err) == common.StatusReasonNotFound
}

func ReasonForError(err error) common.StatusReason {
	var status APIStatus
	if errors.As(err, &status) {
		return status.Status().Reason
	}
	return common.StatusReasonUnknown
}
