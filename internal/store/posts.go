package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"userposts-api/internal/model"
)

// PostRepository is the database-backed store for posts.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Save inserts the post when its id is unset and updates it otherwise.
func (r *PostRepository) Save(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// FindByUserID returns all posts owned by the given user. The query is
// explicit; user reads never load posts as a side effect of this path.
func (r *PostRepository) FindByUserID(ctx context.Context, userID int) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByIDAndUserID returns the post only if it exists AND belongs to the
// given user. A post owned by a different user comes back as (nil, nil), the
// same as a missing one: ownership is checked in the query, not in handler
// code.
func (r *PostRepository) FindByIDAndUserID(ctx context.Context, postID, userID int) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", postID, userID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}
