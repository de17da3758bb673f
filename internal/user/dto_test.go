// AngelaMos | 2026
// dto_test.go

package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersParams_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           ListUsersParams
		wantPage     int
		wantPageSize int
	}{
		{"zero values", ListUsersParams{}, 1, 20},
		{"negative page", ListUsersParams{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size", ListUsersParams{Page: 2, PageSize: 500}, 2, 100},
		{"already valid", ListUsersParams{Page: 3, PageSize: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPageSize, tt.in.PageSize)
		})
	}
}

func TestListUsersParams_Offset(t *testing.T) {
	p := ListUsersParams{Page: 3, PageSize: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestToUserResponse_OmitsPasswordHash(t *testing.T) {
	u := &User{
		ID:           "user-1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$argon2id$secret-material",
		Role:         RoleCustomer,
		CreatedAt:    time.Now(),
	}

	data, err := json.Marshal(ToUserResponse(u))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "argon2id")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), "ada@example.com")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, "100\\%", escapeLike("100%"))
	assert.Equal(t, "a\\_b", escapeLike("a_b"))
	assert.Equal(t, "c:\\\\temp", escapeLike("c:\\temp"))
}
