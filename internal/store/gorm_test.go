package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"userposts-api/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}))
	return db
}

func TestUserRepositorySaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &model.User{Name: "Marco", BirthDate: model.NewDate(1990, time.April, 12)}
	require.NoError(t, repo.Save(ctx, u))
	assert.NotZero(t, u.ID)

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Marco", found.Name)
	assert.Equal(t, "1990-04-12", found.BirthDate.String())
}

func TestUserRepositoryFindByIDAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	found, err := repo.FindByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepositorySaveAssignsUniqueIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		u := &model.User{Name: "User", BirthDate: model.NewDate(1990, time.January, 1)}
		require.NoError(t, repo.Save(ctx, u))
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestUserRepositoryDeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &model.User{Name: "Marco", BirthDate: model.NewDate(1990, time.April, 12)}
	require.NoError(t, repo.Save(ctx, u))

	require.NoError(t, repo.DeleteByID(ctx, u.ID))
	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting an absent row is not an error.
	assert.NoError(t, repo.DeleteByID(ctx, 999))
}

func TestUserRepositoryFindAllPreloadsPosts(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	u := &model.User{Name: "Marco", BirthDate: model.NewDate(1990, time.April, 12)}
	require.NoError(t, users.Save(ctx, u))
	require.NoError(t, posts.Save(ctx, &model.Post{Description: "first post", UserID: u.ID}))

	all, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Posts, 1)
	assert.Equal(t, "first post", all[0].Posts[0].Description)
}

func TestPostRepositoryFindByUserID(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	a := &model.User{Name: "UserA", BirthDate: model.NewDate(1990, time.January, 1)}
	b := &model.User{Name: "UserB", BirthDate: model.NewDate(1991, time.January, 1)}
	require.NoError(t, users.Save(ctx, a))
	require.NoError(t, users.Save(ctx, b))

	require.NoError(t, posts.Save(ctx, &model.Post{Description: "post of A", UserID: a.ID}))
	require.NoError(t, posts.Save(ctx, &model.Post{Description: "another of A", UserID: a.ID}))

	got, err := posts.FindByUserID(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := posts.FindByUserID(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostRepositoryFindByIDAndUserID(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	a := &model.User{Name: "UserA", BirthDate: model.NewDate(1990, time.January, 1)}
	b := &model.User{Name: "UserB", BirthDate: model.NewDate(1991, time.January, 1)}
	require.NoError(t, users.Save(ctx, a))
	require.NoError(t, users.Save(ctx, b))

	p := &model.Post{Description: "post of A", UserID: a.ID}
	require.NoError(t, posts.Save(ctx, p))

	found, err := posts.FindByIDAndUserID(ctx, p.ID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "post of A", found.Description)

	// The post exists but belongs to a different user.
	wrongOwner, err := posts.FindByIDAndUserID(ctx, p.ID, b.ID)
	require.NoError(t, err)
	assert.Nil(t, wrongOwner)

	missing, err := posts.FindByIDAndUserID(ctx, 999, a.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
