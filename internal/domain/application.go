package domain

import (
	"context"
	"time"
)

// Application status constants. Any status may follow any other: recruiters
// move applicants around the pipeline manually, so only enum membership is
// validated, not transitions.
const (
	ApplicationStatusApplied      = "Applied"
	ApplicationStatusReviewed     = "Reviewed"
	ApplicationStatusShortlisted  = "Shortlisted"
	ApplicationStatusInterviewing = "Interviewing"
	ApplicationStatusRejected     = "Rejected"
	ApplicationStatusHired        = "Hired"
)

// ValidApplicationStatus reports whether s is an enumerated status value.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterviewing, ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// Application links one job seeker to one job posting. At most one
// application may exist per (job, applicant) pair; the storage layer
// enforces this with a unique constraint.
type Application struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"job_id"`
	ApplicantID   string    `json:"applicant_id"`
	Status        string    `json:"status"`
	Email         string    `json:"email"` // contact snapshot at apply time
	Phone         string    `json:"phone"`
	PortfolioLink *string   `json:"portfolio_link,omitempty"`
	Experience    *string   `json:"experience,omitempty"`
	ResumeURL     *string   `json:"resume_url,omitempty"`
	CoverLetter   *string   `json:"cover_letter,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined data for list responses. Job fields are nil when the posting
	// has been deleted (applications outlive their job).
	JobTitle        *string `json:"job_title,omitempty"`
	JobLocation     *string `json:"job_location,omitempty"`
	ApplicantName   *string `json:"applicant_name,omitempty"`
	ApplicantEmail  *string `json:"applicant_email,omitempty"`
	ApplicantResume *string `json:"applicant_resume,omitempty"`
}

// ApplicationSubmission is the material supplied on apply. Email and phone
// are the required contact snapshot; the rest is optional.
type ApplicationSubmission struct {
	Email         string
	Phone         string
	PortfolioLink string
	Experience    string
	ResumeURL     string // falls back to the seeker's profile resume when empty
	CoverLetter   string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID string) ([]Application, error)
	Exists(ctx context.Context, jobID int64, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Seeker operations
	Apply(ctx context.Context, userID string, jobID int64, sub ApplicationSubmission) (*Application, error)
	ListMine(ctx context.Context, userID string) ([]Application, error)

	// Employer operations
	ListForJob(ctx context.Context, userID string, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, userID string, applicationID int64, status string) error
}
