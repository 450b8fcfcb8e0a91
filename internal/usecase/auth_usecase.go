package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GoogleTokenVerifier validates a Google ID token and returns the identity
// it was issued for.
type GoogleTokenVerifier interface {
	Verify(idToken string) (*auth.GoogleIdentity, error)
}

type authUsecase struct {
	userRepo domain.UserRepository
	google   GoogleTokenVerifier
}

func NewAuthUsecase(userRepo domain.UserRepository, google GoogleTokenVerifier) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		google:   google,
	}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if role != domain.RoleJobSeeker && role != domain.RoleEmployer {
		return nil, apperror.BadRequest("Role must be job_seeker or employer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The users.email unique constraint is authoritative; the repository
	// maps its violation to Conflict.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	return user, nil
}

// GoogleLogin signs in (or signs up) a user from a verified Google ID token.
// First-time federated users get the default seeker role and a random local
// password so the account can later set a real one via reset.
func (u *authUsecase) GoogleLogin(ctx context.Context, idToken string) (*domain.User, error) {
	identity, err := u.google.Verify(idToken)
	if err != nil {
		return nil, apperror.Unauthorized("Google sign-in failed")
	}

	user, err := u.userRepo.GetByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	name := identity.Name
	if name == "" {
		name = identity.Email
	}

	now := time.Now()
	user = &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        identity.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleJobSeeker,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if identity.Picture != "" {
		user.SeekerProfile = &domain.SeekerProfile{ProfilePhotoURL: identity.Picture}
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
