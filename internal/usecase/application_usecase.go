package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
)

// StatusNotifier sends best-effort applicant notifications.
type StatusNotifier interface {
	IsConfigured() bool
	SendStatusUpdate(to string, data email.StatusUpdateData) error
}

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	notifier        StatusNotifier
}

// NewApplicationUsecase creates a new application usecase. notifier may be
// nil when SMTP is not configured.
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	notifier StatusNotifier,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

// Apply submits an application for a job. The contact snapshot (email,
// phone) is required; the resume falls back to the seeker's profile resume.
func (uc *applicationUsecase) Apply(ctx context.Context, userID string, jobID int64, sub domain.ApplicationSubmission) (*domain.Application, error) {
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	if sub.Email == "" || sub.Phone == "" {
		return nil, apperror.BadRequest("Contact email and phone are required")
	}

	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("User not found")
	}
	// Profile completion gate: applying is a seeker area
	if !user.ProfileCompleted {
		return nil, apperror.Forbidden("Complete your profile before applying")
	}

	// Friendly duplicate check; the unique constraint on
	// (job_id, applicant_id) is what actually holds under concurrency.
	exists, err := uc.applicationRepo.Exists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	resumeURL := sub.ResumeURL
	if resumeURL == "" && user.SeekerProfile != nil {
		resumeURL = user.SeekerProfile.ResumeURL
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	app := &domain.Application{
		JobID:         jobID,
		ApplicantID:   userID,
		Status:        domain.ApplicationStatusApplied,
		Email:         sub.Email,
		Phone:         sub.Phone,
		PortfolioLink: toPtr(sub.PortfolioLink),
		Experience:    toPtr(sub.Experience),
		ResumeURL:     toPtr(resumeURL),
		CoverLetter:   toPtr(sub.CoverLetter),
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListMine returns all applications submitted by the current seeker,
// joined with a minimal job summary.
func (uc *applicationUsecase) ListMine(ctx context.Context, userID string) ([]domain.Application, error) {
	return uc.applicationRepo.GetByApplicantID(ctx, userID)
}

// ListForJob returns all applications for a job the caller owns.
func (uc *applicationUsecase) ListForJob(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	if err := uc.validateJobOwnership(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// UpdateStatus moves an application to a new pipeline stage. Any enumerated
// status may follow any other; recruiters reorder the pipeline manually.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid status. Must be one of: Applied, Reviewed, Shortlisted, Interviewing, Rejected, Hired")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		// Orphaned application: the posting was deleted, nothing to manage.
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job for this application no longer exists")
		}
		return apperror.Internal(err)
	}
	if job.EmployerID != userID {
		return apperror.Forbidden("You do not own the job for this application")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return err
	}

	uc.notifyStatusChange(app, job, status)
	return nil
}

// notifyStatusChange emails the applicant asynchronously. Failures are
// logged, never surfaced: the status change already committed.
func (uc *applicationUsecase) notifyStatusChange(app *domain.Application, job *domain.Job, status string) {
	if uc.notifier == nil || !uc.notifier.IsConfigured() {
		return
	}

	name := app.Email
	if app.ApplicantName != nil {
		name = *app.ApplicantName
	}
	data := email.StatusUpdateData{
		ApplicantName: name,
		JobTitle:      job.Title,
		Status:        status,
	}
	go func() {
		if err := uc.notifier.SendStatusUpdate(app.Email, data); err != nil {
			logger.Log.Warn("status notification failed", "application_id", app.ID, "error", err)
		}
	}()
}

// validateJobOwnership checks that the job exists and the caller owns it.
func (uc *applicationUsecase) validateJobOwnership(ctx context.Context, userID string, jobID int64) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if job.EmployerID != userID {
		return apperror.Forbidden("You do not own this job posting")
	}
	return nil
}
