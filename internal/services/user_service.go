package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"team-tracker.com/team-tracker/internal/constants"
	apperrors "team-tracker.com/team-tracker/internal/errors"
	model "team-tracker.com/team-tracker/internal/models"
	repository "team-tracker.com/team-tracker/internal/repositories"
)

type UserInput struct {
	Name  string
	Email string
	Role  constants.UserRole
}

type UserService struct {
	store *repository.Store
}

func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) CreateUser(ctx context.Context, in UserInput) (*model.User, error) {
	user := &model.User{
		Name:  in.Name,
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Role:  in.Role,
	}
	if user.Role == 0 {
		user.Role = constants.RoleDefault
	}

	taken, err := s.store.Users.EmailTaken(ctx, user.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	if err := s.store.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.UserNotFound(id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.store.Users.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, in UserInput) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	taken, err := s.store.Users.EmailTaken(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	user.Name = in.Name
	user.Email = email
	if in.Role != 0 {
		user.Role = in.Role
	}

	if err := s.store.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser refuses to remove a user that is still referenced.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Users.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.UserNotFound(id)
			}
			return err
		}

		referenced, err := tx.Users.IsReferenced(ctx, id)
		if err != nil {
			return err
		}
		if referenced {
			return apperrors.ErrUserInUse
		}

		return tx.Users.Delete(ctx, id)
	})
}

func (s *UserService) IsManager(ctx context.Context, id uuid.UUID) (bool, error) {
	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsManager(), nil
}
