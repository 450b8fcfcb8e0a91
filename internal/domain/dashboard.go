package domain

import "context"

// SeekerStats summarizes a job seeker's pipeline for their dashboard.
type SeekerStats struct {
	Applications int64 `json:"applications"`
	Interviewing int64 `json:"interviewing"`
	Shortlisted  int64 `json:"shortlisted"`
}

// EmployerStats summarizes an employer's postings and applicant funnel.
type EmployerStats struct {
	ActiveJobs      int64 `json:"active_jobs"`
	TotalApplicants int64 `json:"total_applicants"`
	Shortlisted     int64 `json:"shortlisted"`
}

type DashboardRepository interface {
	SeekerStats(ctx context.Context, userID string) (*SeekerStats, error)
	EmployerStats(ctx context.Context, employerID string) (*EmployerStats, error)
}

type DashboardUsecase interface {
	GetSeekerStats(ctx context.Context, userID string) (*SeekerStats, error)
	GetEmployerStats(ctx context.Context, userID string) (*EmployerStats, error)
}
