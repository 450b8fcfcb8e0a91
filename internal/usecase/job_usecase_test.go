package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail for non-employers", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "seeker1").Return(completedSeeker("seeker1"), nil)
		uc := usecase.NewJobUsecase(new(MockJobRepo), userRepo)

		err := uc.CreateJob(ctx, "seeker1", &domain.Job{Title: "Backend Engineer", JobType: domain.JobTypeFullTime})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employers can post jobs")
	})

	t.Run("Should fail until the company profile is completed", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "employer1").Return(&domain.User{
			ID:   "employer1",
			Role: domain.RoleEmployer,
		}, nil)
		uc := usecase.NewJobUsecase(new(MockJobRepo), userRepo)

		err := uc.CreateJob(ctx, "employer1", &domain.Job{Title: "Backend Engineer", JobType: domain.JobTypeFullTime})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Complete your company profile")
	})

	t.Run("Should reject an unknown job type", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "employer1").Return(completedEmployer("employer1"), nil)
		uc := usecase.NewJobUsecase(new(MockJobRepo), userRepo)

		err := uc.CreateJob(ctx, "employer1", &domain.Job{Title: "Backend Engineer", JobType: "Gig"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job type")
	})

	t.Run("Should stamp the employer as owner", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "employer1").Return(completedEmployer("employer1"), nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, "employer1", j.EmployerID)
			assert.False(t, j.CreatedAt.IsZero())
		})
		uc := usecase.NewJobUsecase(jobRepo, userRepo)

		job := &domain.Job{
			EmployerID: "spoofed",
			Title:      "Backend Engineer",
			JobType:    domain.JobTypeFullTime,
		}
		err := uc.CreateJob(ctx, "employer1", job)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func TestSearchJobsFilterNormalization(t *testing.T) {
	ctx := context.Background()

	jobRepo := new(MockJobRepo)
	jobRepo.On("Search", ctx, mock.AnythingOfType("domain.JobFilter")).Return([]domain.JobWithEmployer{}, nil).Run(func(args mock.Arguments) {
		f := args.Get(1).(domain.JobFilter)
		assert.Equal(t, "engineer", f.Keyword)
		assert.Equal(t, "", f.Location)
		assert.Equal(t, []string{"Full-time", "Contract"}, f.JobTypes)
	})
	uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

	_, err := uc.SearchJobs(ctx, domain.JobFilter{
		Keyword:  "  engineer ",
		Location: "   ",
		JobTypes: []string{" Full-time", "", "Contract "},
	})
	assert.NoError(t, err)
	jobRepo.AssertExpectations(t)
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	owned := func() *domain.Job {
		return &domain.Job{
			ID:          42,
			EmployerID:  "employer1",
			Title:       "Backend Engineer",
			Description: "Build APIs",
			Location:    "Berlin",
			SalaryRange: "$50,000 - $70,000",
			JobType:     domain.JobTypeFullTime,
		}
	}

	t.Run("Should fail when the job does not exist", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

		_, err := uc.UpdateJob(ctx, "employer1", 42, domain.JobUpdate{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should fail when caller does not own the job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(owned(), nil)
		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

		title := "Senior Backend Engineer"
		_, err := uc.UpdateJob(ctx, "employer2", 42, domain.JobUpdate{Title: &title})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not own this job")
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should apply only the provided fields", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(owned(), nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

		title := "Senior Backend Engineer"
		job, err := uc.UpdateJob(ctx, "employer1", 42, domain.JobUpdate{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", job.Title)
		assert.Equal(t, "Build APIs", job.Description)
		assert.Equal(t, "Berlin", job.Location)
		assert.Equal(t, domain.JobTypeFullTime, job.JobType)
	})

	t.Run("Should reject an unknown job type", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(owned(), nil)
		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

		jt := "Gig"
		_, err := uc.UpdateJob(ctx, "employer1", 42, domain.JobUpdate{JobType: &jt})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job type")
	})

	t.Run("Should reject blanking the title", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(owned(), nil)
		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

		empty := "   "
		_, err := uc.UpdateJob(ctx, "employer1", 42, domain.JobUpdate{Title: &empty})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title cannot be empty")
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when caller does not own the job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(&domain.Job{ID: 42, EmployerID: "employer1"}, nil)
		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

		err := uc.DeleteJob(ctx, "employer2", 42)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete for the owner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(42)).Return(&domain.Job{ID: 42, EmployerID: "employer1"}, nil)
		jobRepo.On("Delete", ctx, int64(42)).Return(nil)
		uc := usecase.NewJobUsecase(jobRepo, new(MockUserRepo))

		err := uc.DeleteJob(ctx, "employer1", 42)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func completedEmployer(id string) *domain.User {
	return &domain.User{
		ID:               id,
		Name:             "Acme Recruiter",
		Email:            "jobs@acme.example",
		Role:             domain.RoleEmployer,
		ProfileCompleted: true,
		EmployerProfile:  &domain.EmployerProfile{CompanyName: "Acme Corp"},
	}
}
