package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast.
var testParams = Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHash_Format(t *testing.T) {
	h := NewHasher(testParams)

	encoded, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.True(t, IsHash(encoded))
	assert.Len(t, strings.Split(encoded, "$"), 6)
	assert.Contains(t, encoded, "m=1024,t=1,p=1")

	again, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, encoded, again, "salts must differ")
}

func TestHash_RejectsBadInput(t *testing.T) {
	h := NewHasher(testParams)

	_, err := h.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = h.Hash(strings.Repeat("a", maxPasswordLength+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerify(t *testing.T) {
	h := NewHasher(testParams)
	encoded, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.True(t, h.Verify(encoded, "correct horse"))
	assert.False(t, h.Verify(encoded, "wrong horse"))
	assert.False(t, h.Verify("$argon2id$garbage", "correct horse"))
	assert.False(t, h.Verify(encoded, strings.Repeat("x", maxPasswordLength+1)))
}

func TestVerify_UsesEncodedParams(t *testing.T) {
	old := NewHasher(testParams)
	encoded, err := old.Hash("pw")
	require.NoError(t, err)

	current := NewHasher(Params{Memory: 2048, Iterations: 2, Parallelism: 2, SaltLength: 16, KeyLength: 32})
	assert.True(t, current.Verify(encoded, "pw"))
}

func TestCheck(t *testing.T) {
	h := NewHasher(testParams)
	hashed, err := h.Hash("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name       string
		stored     string
		password   string
		wantOK     bool
		wantRehash bool
	}{
		{"hash match", hashed, "s3cret", true, false},
		{"hash mismatch", hashed, "nope", false, false},
		{"legacy match", "s3cret", "s3cret", true, true},
		{"legacy mismatch", "s3cret", "S3cret", false, false},
		{"empty stored", "", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, rehash := h.Check(tt.stored, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRehash, rehash)
		})
	}
}
