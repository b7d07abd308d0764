package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/models"
)

func newUserFixture() *UserRepository {
	return NewUserRepository(blobstore.NewMemoryStore())
}

func testUser() models.User {
	return models.User{
		Username:     "admin",
		PasswordHash: "$2a$10$fakehash",
		Email:        "admin@salon.pl",
		Name:         "Admin",
	}
}

func TestUserCreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newUserFixture()

	created, err := repo.Create(ctx, testUser())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "employee", created.Role)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Empty(t, created.LastLogin)
}

func TestUserCreateUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := newUserFixture()

	_, err := repo.Create(ctx, testUser())
	require.NoError(t, err)

	dup := testUser()
	dup.Email = "other@salon.pl"
	_, err = repo.Create(ctx, dup)
	require.True(t, httperr.IsConflict(err))

	dup = testUser()
	dup.Username = "other"
	_, err = repo.Create(ctx, dup)
	require.True(t, httperr.IsConflict(err))
}

func TestUserFindByUsernameSkipsInactive(t *testing.T) {
	ctx := context.Background()
	repo := newUserFixture()

	created, err := repo.Create(ctx, testUser())
	require.NoError(t, err)

	found, err := repo.FindByUsername(ctx, created.Username)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByUsername(ctx, "ghost")
	require.True(t, httperr.IsNotFound(err))
}

func TestUserRecordLogin(t *testing.T) {
	ctx := context.Background()
	repo := newUserFixture()

	created, err := repo.Create(ctx, testUser())
	require.NoError(t, err)

	require.NoError(t, repo.RecordLogin(ctx, created.ID))

	found, err := repo.FindByUsername(ctx, created.Username)
	require.NoError(t, err)
	assert.NotEmpty(t, found.LastLogin)

	require.Error(t, repo.RecordLogin(ctx, "ghost"))
}
