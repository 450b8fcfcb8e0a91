package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewProfileUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

// UpdateSeekerProfile replaces the seeker's typed profile document.
// The completion latch flips to true once a resume URL is present and is
// never recomputed back to false, even if the resume is later cleared.
func (u *profileUsecase) UpdateSeekerProfile(ctx context.Context, userID, name string, profile *domain.SeekerProfile) (*domain.User, error) {
	user, err := u.authorizedUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleJobSeeker {
		return nil, apperror.Forbidden("Only job seekers can update a seeker profile")
	}

	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if name != "" {
		user.Name = name
	}
	user.SeekerProfile = profile
	if !user.ProfileCompleted && profile.ResumeURL != "" {
		user.ProfileCompleted = true
	}
	user.UpdatedAt = time.Now()

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateEmployerProfile replaces the employer's typed profile document.
// The latch flips once a company name is present, one-way as above.
func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, userID, name string, profile *domain.EmployerProfile) (*domain.User, error) {
	user, err := u.authorizedUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleEmployer {
		return nil, apperror.Forbidden("Only employers can update an employer profile")
	}

	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if name != "" {
		user.Name = name
	}
	user.EmployerProfile = profile
	if !user.ProfileCompleted && profile.CompanyName != "" {
		user.ProfileCompleted = true
	}
	user.UpdatedAt = time.Now()

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetOnboardingStatus reports the latch and, while incomplete, the
// role-specific fields still required.
func (u *profileUsecase) GetOnboardingStatus(ctx context.Context, userID string) (*domain.OnboardingStatus, error) {
	user, err := u.authorizedUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &domain.OnboardingStatus{Completed: user.ProfileCompleted}
	if status.Completed {
		return status, nil
	}

	switch user.Role {
	case domain.RoleJobSeeker:
		status.Missing = append(status.Missing, "resume_url")
	case domain.RoleEmployer:
		status.Missing = append(status.Missing, "company_name")
	}
	return status, nil
}

// authorizedUser enforces that the context identity matches the requested
// user and loads the record.
func (u *profileUsecase) authorizedUser(ctx context.Context, userID string) (*domain.User, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only modify your own profile")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
