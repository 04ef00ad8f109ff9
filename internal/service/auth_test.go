package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuth_Verify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-Pass"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := NewAdminAuth("admin", string(hash))

	assert.NoError(t, auth.Verify("admin", "s3cret-Pass"))
	assert.ErrorIs(t, auth.Verify("admin", "wrong"), ErrInvalidCreds)
	assert.ErrorIs(t, auth.Verify("root", "s3cret-Pass"), ErrInvalidCreds)
	assert.ErrorIs(t, auth.Verify("", ""), ErrInvalidCreds)
}

func TestAdminAuth_EmptyHashRejectsEverything(t *testing.T) {
	auth := NewAdminAuth("admin", "")
	assert.ErrorIs(t, auth.Verify("admin", ""), ErrInvalidCreds)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)
	assert.NoError(t, NewAdminAuth("admin", hash).Verify("admin", "hunter2hunter2"))
}
