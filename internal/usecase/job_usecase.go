package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, userRepo domain.UserRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Unauthorized("User not found")
	}
	if user.Role != domain.RoleEmployer {
		return apperror.Forbidden("Only employers can post jobs")
	}
	// Profile completion gate: posting is an employer area
	if !user.ProfileCompleted {
		return apperror.Forbidden("Complete your company profile before posting jobs")
	}

	if !domain.ValidJobType(job.JobType) {
		return apperror.BadRequest("Invalid job type")
	}
	if strings.TrimSpace(job.Title) == "" {
		return apperror.BadRequest("Title is required")
	}

	job.EmployerID = userID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// SearchJobs runs the filtered listing. Whitespace-only filters are treated
// as absent so a blank search box still lists everything.
func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	filter.Location = strings.TrimSpace(filter.Location)

	types := filter.JobTypes[:0]
	for _, t := range filter.JobTypes {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	filter.JobTypes = types

	return u.jobRepo.Search(ctx, filter)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string) ([]domain.Job, error) {
	return u.jobRepo.FetchByEmployerID(ctx, userID)
}

// UpdateJob applies a partial update after verifying ownership.
func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, jobID int64, update domain.JobUpdate) (*domain.Job, error) {
	job, err := u.ownedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperror.BadRequest("Title cannot be empty")
		}
		job.Title = *update.Title
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Qualifications != nil {
		job.Qualifications = update.Qualifications
	}
	if update.Responsibilities != nil {
		job.Responsibilities = update.Responsibilities
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.SalaryRange != nil {
		job.SalaryRange = *update.SalaryRange
	}
	if update.JobType != nil {
		if !domain.ValidJobType(*update.JobType) {
			return nil, apperror.BadRequest("Invalid job type")
		}
		job.JobType = *update.JobType
	}
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob hard-deletes the posting after verifying ownership.
// Existing applications keep referencing the deleted job.
func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, jobID int64) error {
	if _, err := u.ownedJob(ctx, userID, jobID); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, jobID)
}

// ownedJob loads a job and verifies the caller is its owner.
func (u *jobUsecase) ownedJob(ctx context.Context, userID string, jobID int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.EmployerID != userID {
		return nil, apperror.Forbidden("You do not own this job posting")
	}
	return job, nil
}
