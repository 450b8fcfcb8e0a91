package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, description, qualifications, responsibilities, location, salary_range, job_type, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Qualifications, job.Responsibilities,
		job.Location, job.SalaryRange, job.JobType, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description, qualifications, responsibilities, location, salary_range, job_type, created_at, updated_at FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Qualifications, &job.Responsibilities,
		&job.Location, &job.SalaryRange, &job.JobType, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// GetByIDWithEmployer retrieves a job with the posting employer's display fields.
func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.qualifications, j.responsibilities,
			j.location, j.salary_range, j.job_type, j.created_at, j.updated_at,
			u.name AS employer_name,
			u.employer_profile ->> 'company_name' AS company_name
		FROM jobs j
		JOIN users u ON j.employer_id = u.id
		WHERE j.id = $1`

	var job domain.JobWithEmployer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Qualifications, &job.Responsibilities,
		&job.Location, &job.SalaryRange, &job.JobType, &job.CreatedAt, &job.UpdatedAt,
		&job.EmployerName, &job.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Search translates the filter into a conjunctive WHERE clause. Keyword and
// location are case-insensitive substring matches; the job-type list is
// disjunctive within itself. No filter returns all jobs, newest first.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Keyword != "" {
		p := arg("%" + filter.Keyword + "%")
		conds = append(conds, fmt.Sprintf("(j.title ILIKE %s OR j.description ILIKE %s)", p, p))
	}
	if filter.Location != "" {
		conds = append(conds, fmt.Sprintf("j.location ILIKE %s", arg("%"+filter.Location+"%")))
	}
	if len(filter.JobTypes) > 0 {
		lowered := make([]string, 0, len(filter.JobTypes))
		for _, t := range filter.JobTypes {
			lowered = append(lowered, strings.ToLower(strings.TrimSpace(t)))
		}
		conds = append(conds, fmt.Sprintf("LOWER(j.job_type) = ANY(%s)", arg(lowered)))
	}

	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.qualifications, j.responsibilities,
			j.location, j.salary_range, j.job_type, j.created_at, j.updated_at,
			u.name AS employer_name,
			u.employer_profile ->> 'company_name' AS company_name
		FROM jobs j
		JOIN users u ON j.employer_id = u.id`
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY j.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Qualifications, &job.Responsibilities,
			&job.Location, &job.SalaryRange, &job.JobType, &job.CreatedAt, &job.UpdatedAt,
			&job.EmployerName, &job.CompanyName,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// FetchByEmployerID retrieves all jobs posted by one employer, newest first.
func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID string) ([]domain.Job, error) {
	query := `SELECT id, employer_id, title, description, qualifications, responsibilities, location, salary_range, job_type, created_at, updated_at
              FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Qualifications, &job.Responsibilities,
			&job.Location, &job.SalaryRange, &job.JobType, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		qualifications = $4,
		responsibilities = $5,
		location = $6,
		salary_range = $7,
		job_type = $8,
		updated_at = $9
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Qualifications, job.Responsibilities,
		job.Location, job.SalaryRange, job.JobType, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the posting. Applications referencing the job are kept:
// the applications table carries no FK to jobs, so seeker history survives.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
