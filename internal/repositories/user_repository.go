package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "team-tracker.com/team-tracker/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("name asc").Find(&users).Error
	return users, err
}

// EmailTaken reports whether another user (not exceptID) uses email.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, exceptID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsReferenced reports whether any project, task, comment or history entry
// points at the user.
func (r *UserRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, m := range []interface{}{&model.Project{}, &model.Task{}, &model.Comment{}, &model.TaskHistory{}} {
		var count int64
		if err := r.db.WithContext(ctx).Model(m).Where("user_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
