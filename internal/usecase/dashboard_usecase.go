package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type dashboardUsecase struct {
	dashboardRepo domain.DashboardRepository
}

func NewDashboardUsecase(dashboardRepo domain.DashboardRepository) domain.DashboardUsecase {
	return &dashboardUsecase{dashboardRepo: dashboardRepo}
}

func (u *dashboardUsecase) GetSeekerStats(ctx context.Context, userID string) (*domain.SeekerStats, error) {
	if err := requireRole(ctx, domain.RoleJobSeeker); err != nil {
		return nil, err
	}
	return u.dashboardRepo.SeekerStats(ctx, userID)
}

func (u *dashboardUsecase) GetEmployerStats(ctx context.Context, userID string) (*domain.EmployerStats, error) {
	if err := requireRole(ctx, domain.RoleEmployer); err != nil {
		return nil, err
	}
	return u.dashboardRepo.EmployerStats(ctx, userID)
}

// requireRole checks the authenticated role stored in the context.
func requireRole(ctx context.Context, role string) error {
	ctxRole, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || ctxRole == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxRole != role {
		return apperror.Forbidden("This dashboard is not available for your role")
	}
	return nil
}
