package auth

import (
	"testing"

	"busquei/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// Low cost keeps the test suite fast; the algorithm is identical at any cost.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "senha123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password matches.
	assert.True(t, hasher.Check(password, hash))

	// Any other password does not.
	assert.False(t, hasher.Check("senha124", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// A malformed hash is a mismatch, never a panic or error.
	assert.False(t, hasher.Check("senha123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("senha123", ""))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	first, err := hasher.Hash("senha123")
	assert.NoError(t, err)
	second, err := hasher.Hash("senha123")
	assert.NoError(t, err)

	// Same input, different salt, different output; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("senha123", first))
	assert.True(t, hasher.Check("senha123", second))
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	hash, err := hasher.Hash("senha123")
	assert.NoError(t, err)

	// Same configured cost: no rehash needed.
	assert.False(t, hasher.NeedsRehash(hash))

	// A hasher configured with a higher work factor flags the old hash.
	stronger := NewBcryptHasherWithCost(testCost + 2)
	assert.True(t, stronger.NeedsRehash(hash))

	// Unreadable hashes always need rehashing.
	assert.True(t, hasher.NeedsRehash("garbage"))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("senha123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("senha123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
