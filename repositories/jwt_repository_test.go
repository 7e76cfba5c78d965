package repositories

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveline/rental-backend/models"
)

func makeJwtRepository(t *testing.T) *JwtRepository {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewJWTRepository(key)
}

func testCredentials() models.Credentials {
	return models.Credentials{
		ActorIdentity: models.Identity{
			UserId:   "2e7f3c1a-5b4d-4c8e-9f0a-1b2c3d4e5f60",
			Email:    "staff@driveline.test",
			FullName: "Test Staff",
		},
		Role: models.STAFF,
	}
}

func TestJwtRepository_roundtrip(t *testing.T) {
	repo := makeJwtRepository(t)
	creds := testCredentials()

	token, err := repo.EncodeToken(time.Now().Add(time.Hour), creds)
	require.NoError(t, err)

	decoded, err := repo.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, creds, decoded)
}

func TestJwtRepository_expired_token(t *testing.T) {
	repo := makeJwtRepository(t)

	token, err := repo.EncodeToken(time.Now().Add(-time.Minute), testCredentials())
	require.NoError(t, err)

	_, err = repo.ValidateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestJwtRepository_wrong_key(t *testing.T) {
	signer := makeJwtRepository(t)
	verifier := makeJwtRepository(t)

	token, err := signer.EncodeToken(time.Now().Add(time.Hour), testCredentials())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestJwtRepository_garbage_token(t *testing.T) {
	repo := makeJwtRepository(t)

	_, err := repo.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
