package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hitaloss/business/internal/domain"
	"github.com/hitaloss/business/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open(DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name), nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func createUser(t *testing.T, repo *UserRepository, username string, isSeller bool) *entities.User {
	t.Helper()
	user := entities.NewUser(username, "1234", "first", "last", isSeller)
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t)).(*UserRepository)
	ctx := context.Background()

	created := createUser(t, repo, "franks", true)
	assert.Equal(t, "franks", created.Username)
	assert.True(t, created.IsSeller)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsSuperuser)
	assert.NoError(t, created.CheckPassword("1234"))

	byName, err := repo.FindByUsername(ctx, "franks")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.Id, byName.Id)

	missing, err := repo.FindById(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UsernameIsUnique(t *testing.T) {
	repo := NewUserRepository(newTestDB(t)).(*UserRepository)
	createUser(t, repo, "franks", true)

	duplicate := entities.NewUser("franks", "hash", "While", "Crocodile", true)
	validated, err := entities.NewValidatedUser(duplicate)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), validated)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestUserRepository_InactiveFlagIsPersisted(t *testing.T) {
	repo := NewUserRepository(newTestDB(t)).(*UserRepository)
	ctx := context.Background()
	user := createUser(t, repo, "batman", true)

	user.SetActive(false)
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	updated, err := repo.Update(ctx, validated)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUserRepository_FindNewest(t *testing.T) {
	repo := NewUserRepository(newTestDB(t)).(*UserRepository)
	ctx := context.Background()
	base := time.Now().UTC()
	for i, name := range []string{"first", "second", "third"} {
		user := entities.NewUser(name, "hash", "", "", false)
		user.DateJoined = base.Add(time.Duration(i) * time.Minute)
		validated, err := entities.NewValidatedUser(user)
		require.NoError(t, err)
		_, err = repo.Create(ctx, validated)
		require.NoError(t, err)
	}

	users, err := repo.FindNewest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Username)
	assert.Equal(t, "second", users[1].Username)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProductRepository_RelationWithUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db).(*UserRepository)
	products := NewProductRepository(db)
	ctx := context.Background()

	seller := createUser(t, users, "franks", true)
	validated, err := entities.NewValidatedProduct(entities.NewProduct(seller, "Smartband XYZ 3.0", 100.99, 15))
	require.NoError(t, err)

	product, err := products.Create(ctx, validated)
	require.NoError(t, err)
	assert.Equal(t, seller.Id, product.UserId)
	require.NotNil(t, product.User)
	assert.Equal(t, "franks", product.User.Username)
	assert.InDelta(t, 100.99, product.Price, 0.001)
	assert.Equal(t, 15, product.Quantity)
	assert.True(t, product.IsActive)

	quantity := 3
	require.NoError(t, product.UpdateListing(entities.ListingChanges{Quantity: &quantity}))
	validated, err = entities.NewValidatedProduct(product)
	require.NoError(t, err)
	updated, err := products.Update(ctx, validated)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "Smartband XYZ 3.0", updated.Description)

	all, err := products.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, seller.Id, all[0].User.Id)

	missing, err := products.FindById(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTokenRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db).(*UserRepository)
	tokens := NewTokenRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "robin", false)
	require.NoError(t, tokens.Create(ctx, entities.NewToken("abc.def.ghi", user.Id)))

	byKey, err := tokens.FindByKey(ctx, "abc.def.ghi")
	require.NoError(t, err)
	require.NotNil(t, byKey)
	assert.Equal(t, user.Id, byKey.UserId)

	byUser, err := tokens.FindByUserId(ctx, user.Id)
	require.NoError(t, err)
	require.NotNil(t, byUser)
	assert.Equal(t, "abc.def.ghi", byUser.Key)

	err = tokens.Create(ctx, entities.NewToken("other", user.Id))
	assert.ErrorIs(t, err, domain.ErrIntegrity)

	require.NoError(t, tokens.Delete(ctx, "abc.def.ghi"))
	gone, err := tokens.FindByKey(ctx, "abc.def.ghi")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestIdempotencyRepository(t *testing.T) {
	repo := NewIdempotencyRepository(newTestDB(t))
	ctx := context.Background()

	record := entities.NewIdempotencyRecord("key-1", `{"username":"robin"}`)
	record.SetResponse(`{"result":{}}`, 201)
	_, err := repo.Create(ctx, record)
	require.NoError(t, err)

	found, err := repo.FindByKey(ctx, "key-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 201, found.StatusCode)
	assert.Equal(t, `{"result":{}}`, found.Response)

	_, err = repo.Create(ctx, entities.NewIdempotencyRecord("key-1", "{}"))
	assert.ErrorIs(t, err, domain.ErrIntegrity)

	missing, err := repo.FindByKey(ctx, "key-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
