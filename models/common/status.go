package common

// StatusType Status of a response
type StatusType string

const (
	// StatusSuccess Response was successful
	StatusSuccess StatusType = "Success"
	// StatusFailure Response failed
	StatusFailure StatusType = "Failure"
)

// StatusReason is an enumeration of possible failure causes
type StatusReason string

const (
	// StatusReasonNotFound The requested job, spool file, JCL or data set does not exist
	StatusReasonNotFound StatusReason = "NotFound"
	// StatusReasonInvalid The request contained an invalid value
	StatusReasonInvalid StatusReason = "Invalid"
	// StatusReasonServiceUnavailable The upstream service did not return a usable response
	StatusReasonServiceUnavailable StatusReason = "ServiceUnavailable"
	// StatusReasonUpstream The upstream service reported a failure without a local mapping
	StatusReasonUpstream StatusReason = "Upstream"
	// StatusReasonUnknown Unknown error
	StatusReasonUnknown StatusReason = ""
)

// Status is a return value for calls that don't return other objects or when a request returns an error
// swagger:model Status
type Status struct {
	// Status of the operation.
	// One of: "Success" or "Failure".
	// example: Failure
	Status StatusType `json:"status,omitempty"`

	// A human-readable description of the status of this operation.
	// required: false
	// example: No job with name 'TESTJOB' and id 'JOB00123' was found
	Message string `json:"message,omitempty"`

	// A machine-readable description of why this operation is in the
	// "Failure" status. If this value is empty there
	// is no information available.
	// required: false
	// example: NotFound
	Reason StatusReason `json:"reason,omitempty"`

	// Suggested HTTP return code for this status, 0 if not set.
	// required: false
	// example: 404
	Code int `json:"code,omitempty"`

	// Details identify the failure and the values it was raised for.
	// required: false
	Details *StatusDetails `json:"details,omitempty"`
}

// StatusDetails holds the identifying values of a failed operation
// swagger:model StatusDetails
type StatusDetails struct {
	// Kind of the failure
	//
	// example: JobNameNotFound
	Kind string `json:"kind"`

	// JobName the failure was raised for
	//
	// required: false
	JobName string `json:"jobName,omitempty"`

	// JobID the failure was raised for
	//
	// required: false
	JobID string `json:"jobId,omitempty"`

	// FileID of the spool file the failure was raised for
	//
	// required: false
	FileID *int `json:"fileId,omitempty"`

	// Value is the caller supplied value that was rejected (prefix, owner, data set)
	//
	// required: false
	Value string `json:"value,omitempty"`

	// Path of the upstream request
	//
	// required: false
	Path string `json:"path,omitempty"`

	// UpstreamStatus is the HTTP status returned by the upstream service
	//
	// required: false
	UpstreamStatus int `json:"upstreamStatus,omitempty"`

	// UpstreamMessage is the message returned by the upstream service
	//
	// required: false
	UpstreamMessage string `json:"upstreamMessage,omitempty"`
}
