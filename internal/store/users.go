package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"userposts-api/internal/model"
)

// UserRepository is the database-backed store for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindAll returns all users with their posts loaded.
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Preload("Posts").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the user with the given id, posts included, or (nil, nil)
// when no row matches. Callers translate absence into a domain error.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Preload("Posts").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save inserts the user when its id is unset and updates it otherwise.
func (r *UserRepository) Save(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// DeleteByID removes the user row. Zero rows affected is not an error;
// referential constraint failures from the database are returned untranslated.
func (r *UserRepository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
