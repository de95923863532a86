package bcrypt_test

import (
	"strings"
	"testing"

	"parceltrack/internal/adapters/out/bcrypt"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := bcrypt.NewHasher(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"))

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ports.ErrPasswordMismatch)
}

func TestHasher_SaltsEveryHash(t *testing.T) {
	h := bcrypt.NewHasher(4)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHasher_CompareMalformedHash(t *testing.T) {
	err := bcrypt.NewHasher(4).Compare("not-a-hash", "pw")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrPasswordMismatch)
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	hash, err := bcrypt.NewHasher(0).Hash("pw")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
}
