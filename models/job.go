package models

// Job holds information about a job known to the job entry subsystem
// swagger:model Job
type Job struct {
	// JobID assigned by the job entry subsystem
	//
	// required: true
	// example: JOB00123
	JobID string `json:"jobId"`

	// JobName of the job
	//
	// required: true
	// example: TESTJOB
	JobName string `json:"jobName"`

	// Owner of the job
	//
	// required: true
	// example: IBMUSER
	Owner string `json:"owner"`

	// Type of the job
	//
	// required: false
	// example: JOB
	Type string `json:"type,omitempty"`

	// ExecutionClass the job is scheduled in
	//
	// required: false
	// example: A
	ExecutionClass string `json:"executionClass,omitempty"`

	// Status of the job
	//
	// required: true
	// Enum: ACTIVE,OUTPUT,INPUT
	// example: OUTPUT
	Status JobStatus `json:"status"`

	// ReturnCode of the job, absent until the job has completed
	//
	// required: false
	// example: CC 0000
	ReturnCode *string `json:"returnCode,omitempty"`

	// Subsystem the job was submitted to
	//
	// required: false
	// example: JES2
	Subsystem string `json:"subsystem,omitempty"`

	// PhaseName describes the execution phase
	//
	// required: false
	// example: Job is on the hard copy queue
	PhaseName string `json:"phaseName,omitempty"`
}

// JobFile holds information about one spool file of a job
// swagger:model JobFile
type JobFile struct {
	// ID of the spool file within the job
	//
	// required: true
	// example: 2
	ID int `json:"id"`

	// DDName of the output stream
	//
	// required: true
	// example: JESMSGLG
	DDName string `json:"ddName"`

	// RecordFormat of the spool file
	//
	// example: UA
	RecordFormat string `json:"recordFormat"`

	// RecordLength of the spool file
	//
	// example: 133
	RecordLength int `json:"recordLength"`

	// ByteCount of the spool file
	ByteCount int `json:"byteCount"`

	// RecordCount of the spool file
	RecordCount int `json:"recordCount"`
}

// JobFileContent holds the text of one or more spool files
// swagger:model JobFileContent
type JobFileContent struct {
	// Content of the spool file
	//
	// required: true
	Content string `json:"content"`
}

// JobStep describes one step of a job as found in its JCL
// swagger:model JobStep
type JobStep struct {
	// Name of the step
	//
	// example: STEP1
	Name string `json:"name"`

	// Program executed by the step
	//
	// example: IEFBR14
	Program string `json:"program"`

	// Step is the 1-based position of the step within the job
	//
	// example: 1
	Step int `json:"step"`
}
