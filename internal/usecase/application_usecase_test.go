package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func completedSeeker(id string) *domain.User {
	return &domain.User{
		ID:               id,
		Name:             "Jane Seeker",
		Email:            "jane@example.com",
		Role:             domain.RoleJobSeeker,
		ProfileCompleted: true,
		SeekerProfile: &domain.SeekerProfile{
			Phone:     "+15550001111",
			ResumeURL: "https://cdn.example.com/resumes/jane.pdf",
		},
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 42, EmployerID: "employer1", Title: "Backend Engineer"}
	sub := domain.ApplicationSubmission{
		Email: "jane@example.com",
		Phone: "+15550001111",
	}

	t.Run("Should fail when contact info is missing", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo), nil)

		_, err := uc.Apply(ctx, "seeker1", 42, domain.ApplicationSubmission{Email: "  ", Phone: ""})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Contact email and phone are required")
	})

	t.Run("Should fail when job does not exist", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, new(MockUserRepo), nil)

		_, err := uc.Apply(ctx, "seeker1", 42, sub)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should fail when profile is incomplete", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(job, nil)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "seeker1").Return(&domain.User{
			ID:   "seeker1",
			Role: domain.RoleJobSeeker,
		}, nil)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, userRepo, nil)

		_, err := uc.Apply(ctx, "seeker1", 42, sub)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Complete your profile before applying")
	})

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(job, nil)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "seeker1").Return(completedSeeker("seeker1"), nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(42), "seeker1").Return(true, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, nil)

		_, err := uc.Apply(ctx, "seeker1", 42, sub)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should fall back to the profile resume", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(job, nil)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "seeker1").Return(completedSeeker("seeker1"), nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(42), "seeker1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, nil)

		app, err := uc.Apply(ctx, "seeker1", 42, sub)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		if assert.NotNil(t, app.ResumeURL) {
			assert.Equal(t, "https://cdn.example.com/resumes/jane.pdf", *app.ResumeURL)
		}
	})

	t.Run("Should keep an explicitly supplied resume", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(job, nil)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "seeker1").Return(completedSeeker("seeker1"), nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(42), "seeker1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, nil)

		withResume := sub
		withResume.ResumeURL = "https://cdn.example.com/resumes/tailored.pdf"
		app, err := uc.Apply(ctx, "seeker1", 42, withResume)
		assert.NoError(t, err)
		if assert.NotNil(t, app.ResumeURL) {
			assert.Equal(t, "https://cdn.example.com/resumes/tailored.pdf", *app.ResumeURL)
		}
	})
}

func TestListForJobOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when caller does not own the job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(&domain.Job{ID: 42, EmployerID: "employer1"}, nil)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, new(MockUserRepo), nil)

		_, err := uc.ListForJob(ctx, "employer2", 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not own this job")
	})

	t.Run("Should list applications for the owner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(&domain.Job{ID: 42, EmployerID: "employer1"}, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByJobID", ctx, int64(42)).Return([]domain.Application{{ID: 7, JobID: 42}}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockUserRepo), nil)

		apps, err := uc.ListForJob(ctx, "employer1", 42)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{ID: 7, JobID: 42, ApplicantID: "seeker1", Email: "jane@example.com"}
	job := &domain.Job{ID: 42, EmployerID: "employer1", Title: "Backend Engineer"}

	t.Run("Should reject a status outside the enum", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo), nil)

		err := uc.UpdateStatus(ctx, "employer1", 7, "Ghosted")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should fail when the application does not exist", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockUserRepo), nil)

		err := uc.UpdateStatus(ctx, "employer1", 7, domain.ApplicationStatusReviewed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application not found")
	})

	t.Run("Should fail when caller does not own the job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(app, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(job, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockUserRepo), nil)

		err := uc.UpdateStatus(ctx, "employer2", 7, domain.ApplicationStatusReviewed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not own the job")
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should allow any enumerated status in any order", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(app, nil)
		appRepo.On("UpdateStatus", ctx, int64(7), domain.ApplicationStatusHired).Return(nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(job, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockUserRepo), nil)

		err := uc.UpdateStatus(ctx, "employer1", 7, domain.ApplicationStatusHired)
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})
}
