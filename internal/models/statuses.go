package models

type UserRole string
type JobStatus string

const (
	UserRoleClient   UserRole = "CLIENT"
	UserRoleProvider UserRole = "PROVIDER"

	// Job lifecycle: OPEN -> ASSIGNED -> DONE. CANCELLED is a reserved
	// terminal state; no endpoint currently drives a transition into it.
	JobStatusOpen      JobStatus = "OPEN"
	JobStatusAssigned  JobStatus = "ASSIGNED"
	JobStatusDone      JobStatus = "DONE"
	JobStatusCancelled JobStatus = "CANCELLED"
)
