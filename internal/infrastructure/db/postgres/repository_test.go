package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MounTainVSCO/oceans-api/internal/domain"
	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func newTestUser(t *testing.T, email string) *entities.ValidatedUser {
	t.Helper()
	user := entities.NewUser("Test User", email)
	require.NoError(t, user.SetPassword("password123"))

	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	return validated
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser(t, "test@example.com"))
	require.NoError(t, err)

	byId, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	require.NotNil(t, byId)
	assert.Equal(t, "test@example.com", byId.Email)

	byEmail, err := repo.FindByEmail(ctx, "Test@Example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.Id, byEmail.Id)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryDuplicateEmailConflicts(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestUser(t, "test@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestUser(t, "test@example.com"))
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "email", conflictErr.Field)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepositoryUpdatePersistsHash(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser(t, "test@example.com"))
	require.NoError(t, err)

	require.NoError(t, created.SetPassword("newpassword456"))
	validated, err := entities.NewValidatedUser(created)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, validated)
	require.NoError(t, err)
	assert.NoError(t, updated.CheckPassword("newpassword456"))
	assert.Error(t, updated.CheckPassword("password123"))
}

func newTestSite(t *testing.T, ownerId uuid.UUID, slug string) *entities.ValidatedSite {
	t.Helper()
	site := entities.NewSite("My Portfolio", slug, "", true, ownerId)

	validated, err := entities.NewValidatedSite(site)
	require.NoError(t, err)
	return validated
}

func TestSiteRepositorySlugUniquePerOwner(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	siteRepo := NewSiteRepository(db)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, newTestUser(t, "owner@example.com"))
	require.NoError(t, err)
	other, err := userRepo.Create(ctx, newTestUser(t, "other@example.com"))
	require.NoError(t, err)

	_, err = siteRepo.Create(ctx, newTestSite(t, owner.Id, "portfolio"))
	require.NoError(t, err)

	_, err = siteRepo.Create(ctx, newTestSite(t, owner.Id, "portfolio"))
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "slug", conflictErr.Field)

	// The composite index scopes uniqueness to the owner.
	_, err = siteRepo.Create(ctx, newTestSite(t, other.Id, "portfolio"))
	assert.NoError(t, err)
}

func TestSiteRepositoryListAndDelete(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	siteRepo := NewSiteRepository(db)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, newTestUser(t, "owner@example.com"))
	require.NoError(t, err)

	first, err := siteRepo.Create(ctx, newTestSite(t, owner.Id, "site-a"))
	require.NoError(t, err)
	_, err = siteRepo.Create(ctx, newTestSite(t, owner.Id, "site-b"))
	require.NoError(t, err)

	sites, err := siteRepo.ListByOwner(ctx, owner.Id)
	require.NoError(t, err)
	assert.Len(t, sites, 2)

	bySlug, err := siteRepo.FindByOwnerAndSlug(ctx, owner.Id, "site-a")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, first.Id, bySlug.Id)

	require.NoError(t, siteRepo.Delete(ctx, first.Id))

	count, err := siteRepo.CountByOwner(ctx, owner.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
