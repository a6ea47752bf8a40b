package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_SerializesEmptyArrays(t *testing.T) {
	data, err := json.Marshal(NewDocument())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"items", "requests", "ratings", "users", "volunteers", "donations"} {
		assert.Equal(t, []any{}, raw[key], "key %s", key)
	}
}

func TestDocument_NormalizeLegacyDocument(t *testing.T) {
	// Written by the original server: no users, volunteers or donations keys.
	legacy := `{"items":[{"id":"1","name":"Drill"}],"requests":[],"ratings":[]}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(legacy), &doc))
	doc.Normalize()

	assert.Len(t, doc.Items, 1)
	assert.NotNil(t, doc.Users)
	assert.NotNil(t, doc.Volunteers)
	assert.NotNil(t, doc.Donations)
}

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating int
		valid  bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidRating(tt.rating), "rating %d", tt.rating)
	}
}

func TestUser_Public(t *testing.T) {
	u := User{ID: "user-1", Email: "a@x.com", Password: "secret", Name: "A"}

	pub := u.Public()
	assert.Empty(t, pub.Password)
	assert.Equal(t, "secret", u.Password, "original must be untouched")

	data, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
}

func TestUser_HasLegacyPassword(t *testing.T) {
	assert.True(t, (&User{Password: "hunter2"}).HasLegacyPassword())
	assert.False(t, (&User{Password: "$argon2id$v=19$m=65536,t=3,p=4$abc$def"}).HasLegacyPassword())
	assert.False(t, (&User{}).HasLegacyPassword())
}

func TestItem_IsLend(t *testing.T) {
	assert.True(t, (&Item{Type: ItemTypeLend}).IsLend())
	assert.False(t, (&Item{Type: ItemTypeGive}).IsLend())
	assert.False(t, (&Item{Type: ""}).IsLend())
}
