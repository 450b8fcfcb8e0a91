package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job types
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeInternship = "Internship"
	JobTypeContract   = "Contract"
	JobTypeFreelance  = "Freelance"
)

// ValidJobType reports whether t is one of the enumerated job types.
// Matching is exact; normalization happens at the request boundary.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract, JobTypeFreelance:
		return true
	}
	return false
}

type Job struct {
	ID               int64     `json:"id"`
	EmployerID       string    `json:"employer_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Qualifications   []string  `json:"qualifications"`
	Responsibilities []string  `json:"responsibilities"`
	Location         string    `json:"location"`
	SalaryRange      string    `json:"salary_range"` // free text, e.g. "$50,000 - $70,000"
	JobType          string    `json:"job_type"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JobWithEmployer extends Job with the posting employer's display fields
// for listing cards and detail pages.
type JobWithEmployer struct {
	Job
	EmployerName string  `json:"employer_name"`
	CompanyName  *string `json:"company_name,omitempty"`
}

// JobFilter holds the optional search filters. All present filters are
// AND-combined; JobTypes is OR within itself. Empty filter means all jobs.
type JobFilter struct {
	Keyword  string   // case-insensitive substring over title OR description
	Location string   // case-insensitive substring
	JobTypes []string // case-insensitive equality against any listed type
}

// JobUpdate carries a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title            *string
	Description      *string
	Qualifications   []string
	Responsibilities []string
	Location         *string
	SalaryRange      *string
	JobType          *string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	Search(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	FetchByEmployerID(ctx context.Context, employerID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobWithEmployer, error)
	SearchJobs(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	ListJobsByEmployer(ctx context.Context, userID string) ([]Job, error)
	UpdateJob(ctx context.Context, userID string, jobID int64, update JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, userID string, jobID int64) error
}
