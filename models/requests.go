package models

// ModifyCommand Enumeration of the actions that can be applied to a job
type ModifyCommand string

const (
	// ModifyCommandCancel Cancel the job
	ModifyCommandCancel ModifyCommand = "cancel"
	// ModifyCommandHold Hold the job
	ModifyCommandHold ModifyCommand = "hold"
	// ModifyCommandRelease Release a held job
	ModifyCommandRelease ModifyCommand = "release"
)

// SubmitJobStringRequest holds JCL to submit
// swagger:model SubmitJobStringRequest
type SubmitJobStringRequest struct {
	// JCL to submit
	//
	// required: true
	// example: //TESTJOB JOB (ACCT),'TEST'
	JCL string `json:"jcl" binding:"required"`
}

// SubmitJobFileRequest references a data set or z/OS UNIX file holding JCL
// swagger:model SubmitJobFileRequest
type SubmitJobFileRequest struct {
	// File is a data set name, or a path starting with / for z/OS UNIX files
	//
	// required: true
	// example: IBMUSER.JCL(TESTJOB)
	File string `json:"file" binding:"required"`
}

// ModifyJobRequest holds the action to apply to a job
// swagger:model ModifyJobRequest
type ModifyJobRequest struct {
	// Command to apply
	//
	// required: true
	// Enum: cancel,hold,release
	// example: cancel
	Command ModifyCommand `json:"command" binding:"required,oneof=cancel hold release"`
}

// SubmitOptions holds the internal reader settings used when submitting JCL text
type SubmitOptions struct {
	// Class is the job class given to the internal reader
	Class string
	// RecordFormat of the submitted records, F or V
	RecordFormat string
	// RecordLength of the submitted records
	RecordLength int
	// Mode of the submitted records, TEXT, RECORD or BINARY
	Mode string
}
