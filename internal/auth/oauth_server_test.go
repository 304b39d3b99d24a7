package auth

import (
	"context"
	"testing"

	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.OAuthClient{}, &models.OAuthToken{})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	user := &models.User{
		Email:    role + "@kiosk.local",
		Password: "irrelevant",
		Role:     role,
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestOAuthServerInitialization(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestClientStoreLookup(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "admin")

	client := &models.OAuthClient{
		ID:     "kiosk-device",
		Secret: "hashed",
		UserID: user.ID,
		Scopes: "read write",
	}
	require.NoError(t, db.Create(client).Error)

	store := NewGormClientStore(db)
	info, err := store.GetByID(context.Background(), "kiosk-device")
	require.NoError(t, err)
	assert.Equal(t, "kiosk-device", info.GetID())
	assert.False(t, info.IsPublic())

	_, err = store.GetByID(context.Background(), "unknown")
	assert.Error(t, err)
}

func TestTokenStoreCodeGrantUnsupported(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormTokenStore(db)

	_, err := store.GetByCode(context.Background(), "any-code")
	assert.ErrorIs(t, err, errNoAuthCodeGrant)
	assert.ErrorIs(t, store.RemoveByCode(context.Background(), "any-code"), errNoAuthCodeGrant)
}
