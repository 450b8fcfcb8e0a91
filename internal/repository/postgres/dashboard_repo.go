package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepo struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

// SeekerStats counts the seeker's applications and how many sit in the
// Interviewing and Shortlisted stages.
func (r *dashboardRepo) SeekerStats(ctx context.Context, userID string) (*domain.SeekerStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM applications
		WHERE applicant_id = $1`

	var stats domain.SeekerStats
	err := r.db.QueryRow(ctx, query, userID,
		domain.ApplicationStatusInterviewing, domain.ApplicationStatusShortlisted,
	).Scan(&stats.Applications, &stats.Interviewing, &stats.Shortlisted)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// EmployerStats counts the employer's live postings and the applicant funnel
// across them.
func (r *dashboardRepo) EmployerStats(ctx context.Context, employerID string) (*domain.EmployerStats, error) {
	var stats domain.EmployerStats

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).
		Scan(&stats.ActiveJobs)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE a.status = $2)
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE j.employer_id = $1`
	err = r.db.QueryRow(ctx, query, employerID, domain.ApplicationStatusShortlisted).
		Scan(&stats.TotalApplicants, &stats.Shortlisted)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
