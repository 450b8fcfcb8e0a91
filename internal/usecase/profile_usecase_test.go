package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestProfileIdentity(t *testing.T) {
	uc := usecase.NewProfileUsecase(new(MockUserRepo), newValidate())

	t.Run("Should fail when context identity does not match target", func(t *testing.T) {
		_, err := uc.UpdateSeekerProfile(authedCtx("user1"), "user2", "", &domain.SeekerProfile{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only modify your own profile")
	})

	t.Run("Should fail safely when identity is missing from context", func(t *testing.T) {
		_, err := uc.UpdateSeekerProfile(context.Background(), "user1", "", &domain.SeekerProfile{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestUpdateSeekerProfile(t *testing.T) {
	t.Run("Should fail for employers", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "employer1").Return(completedEmployer("employer1"), nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		_, err := uc.UpdateSeekerProfile(authedCtx("employer1"), "employer1", "", &domain.SeekerProfile{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only job seekers")
	})

	t.Run("Should reject an invalid phone", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(&domain.User{
			ID:   "seeker1",
			Role: domain.RoleJobSeeker,
		}, nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		_, err := uc.UpdateSeekerProfile(authedCtx("seeker1"), "seeker1", "", &domain.SeekerProfile{
			Phone: "call me maybe",
		})
		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("Should flip the completion latch once a resume exists", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(&domain.User{
			ID:   "seeker1",
			Name: "Jane",
			Role: domain.RoleJobSeeker,
		}, nil)
		userRepo.On("UpdateProfile", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		user, err := uc.UpdateSeekerProfile(authedCtx("seeker1"), "seeker1", "Jane Seeker", &domain.SeekerProfile{
			ResumeURL: "https://cdn.example.com/resumes/jane.pdf",
		})
		assert.NoError(t, err)
		assert.True(t, user.ProfileCompleted)
		assert.Equal(t, "Jane Seeker", user.Name)
	})

	t.Run("Should not unset the latch when the resume is later cleared", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(completedSeeker("seeker1"), nil)
		userRepo.On("UpdateProfile", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		user, err := uc.UpdateSeekerProfile(authedCtx("seeker1"), "seeker1", "", &domain.SeekerProfile{})
		assert.NoError(t, err)
		assert.True(t, user.ProfileCompleted)
	})
}

func TestUpdateEmployerProfile(t *testing.T) {
	t.Run("Should fail for job seekers", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(completedSeeker("seeker1"), nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		_, err := uc.UpdateEmployerProfile(authedCtx("seeker1"), "seeker1", "", &domain.EmployerProfile{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employers")
	})

	t.Run("Should flip the completion latch once a company name exists", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "employer1").Return(&domain.User{
			ID:   "employer1",
			Role: domain.RoleEmployer,
		}, nil)
		userRepo.On("UpdateProfile", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		user, err := uc.UpdateEmployerProfile(authedCtx("employer1"), "employer1", "", &domain.EmployerProfile{
			CompanyName: "Acme Corp",
		})
		assert.NoError(t, err)
		assert.True(t, user.ProfileCompleted)
	})
}

func TestGetOnboardingStatus(t *testing.T) {
	t.Run("Should report the missing seeker field", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(&domain.User{
			ID:   "seeker1",
			Role: domain.RoleJobSeeker,
		}, nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		status, err := uc.GetOnboardingStatus(authedCtx("seeker1"), "seeker1")
		assert.NoError(t, err)
		assert.False(t, status.Completed)
		assert.Equal(t, []string{"resume_url"}, status.Missing)
	})

	t.Run("Should report the missing employer field", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "employer1").Return(&domain.User{
			ID:   "employer1",
			Role: domain.RoleEmployer,
		}, nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		status, err := uc.GetOnboardingStatus(authedCtx("employer1"), "employer1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"company_name"}, status.Missing)
	})

	t.Run("Should report nothing missing once completed", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(completedSeeker("seeker1"), nil)
		uc := usecase.NewProfileUsecase(userRepo, newValidate())

		status, err := uc.GetOnboardingStatus(authedCtx("seeker1"), "seeker1")
		assert.NoError(t, err)
		assert.True(t, status.Completed)
		assert.Empty(t, status.Missing)
	})
}
