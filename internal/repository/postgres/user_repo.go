package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	seekerJSON, employerJSON, err := marshalProfiles(user)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO users (id, name, email, password_hash, role, is_profile_completed, seeker_profile, employer_profile, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.ProfileCompleted, seekerJSON, employerJSON, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

const userColumns = `id, name, email, password_hash, role, is_profile_completed, seeker_profile, employer_profile, created_at, updated_at`

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// UpdateProfile persists the mutable profile state: name, role-specific
// profile document and the completion latch.
func (r *userRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	seekerJSON, employerJSON, err := marshalProfiles(user)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `UPDATE users SET name = $2, is_profile_completed = $3, seeker_profile = $4, employer_profile = $5, updated_at = $6 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.ProfileCompleted, seekerJSON, employerJSON, user.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var seekerJSON, employerJSON []byte

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.ProfileCompleted, &seekerJSON, &employerJSON, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if len(seekerJSON) > 0 {
		user.SeekerProfile = &domain.SeekerProfile{}
		if err := json.Unmarshal(seekerJSON, user.SeekerProfile); err != nil {
			return nil, fmt.Errorf("decode seeker profile: %w", err)
		}
	}
	if len(employerJSON) > 0 {
		user.EmployerProfile = &domain.EmployerProfile{}
		if err := json.Unmarshal(employerJSON, user.EmployerProfile); err != nil {
			return nil, fmt.Errorf("decode employer profile: %w", err)
		}
	}
	return &user, nil
}

func marshalProfiles(user *domain.User) (seekerJSON, employerJSON []byte, err error) {
	if user.SeekerProfile != nil {
		if seekerJSON, err = json.Marshal(user.SeekerProfile); err != nil {
			return nil, nil, err
		}
	}
	if user.EmployerProfile != nil {
		if employerJSON, err = json.Marshal(user.EmployerProfile); err != nil {
			return nil, nil, err
		}
	}
	return seekerJSON, employerJSON, nil
}
