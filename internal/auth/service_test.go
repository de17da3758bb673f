// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstyle/api/internal/config"
	"github.com/smartstyle/api/internal/core"
)

// fakeUserProvider is an in-memory credential store keyed by email.
type fakeUserProvider struct {
	byEmail map[string]*UserInfo
	byID    map[string]*UserInfo
	calls   int
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{
		byEmail: make(map[string]*UserInfo),
		byID:    make(map[string]*UserInfo),
	}
}

func (f *fakeUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	f.calls++
	user, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	f.calls++
	user, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserProvider) Create(
	_ context.Context,
	name, email, passwordHash, role string,
) (*UserInfo, error) {
	f.calls++
	if _, ok := f.byEmail[email]; ok {
		return nil, core.ErrDuplicateKey
	}

	user := &UserInfo{
		ID:           fmt.Sprintf("user-%d", len(f.byID)+1),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.byEmail[email] = user
	f.byID[user.ID] = user
	return user, nil
}

func testOperator() config.OperatorConfig {
	return config.OperatorConfig{
		Email:    "admin@smartstyle.com",
		Password: "admin123",
	}
}

func newTestService(t *testing.T) (*Service, *fakeUserProvider) {
	t.Helper()

	issuer, err := NewTokenIssuer(testJWTConfig())
	require.NoError(t, err)

	users := newFakeUserProvider()
	return NewService(users, issuer, testOperator()), users
}

func TestService_SignupThenLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "lovelace1815",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "customer", user.Role, "role defaults to customer")

	resp, err := svc.Login(ctx, LoginRequest{
		Email:    "ada@example.com",
		Password: "lovelace1815",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.Token)
	assert.Greater(t, resp.Token.ExpiresIn, 0)
}

func TestService_SignupKeepsRequestedRole(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Vera",
		Email:    "vera@example.com",
		Password: "sewing-machine",
		Role:     "vendor",
	})
	require.NoError(t, err)
	assert.Equal(t, "vendor", user.Role)
}

func TestService_SignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "lovelace1815",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupRequest{
		Name:     "Imposter",
		Email:    "ada@example.com",
		Password: "different-pass",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "lovelace1815",
	})
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, unknownErr := svc.Login(ctx, LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongErr := svc.Login(ctx, LoginRequest{
		Email:    "ada@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestService_LoginIsCaseSensitiveOnEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "lovelace1815",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{
		Email:    "Ada@Example.com",
		Password: "lovelace1815",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_OperatorLogin(t *testing.T) {
	svc, users := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@smartstyle.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, OperatorSubject, resp.User.ID)
	assert.Equal(t, "admin", resp.User.Role)
	assert.Zero(t, users.calls, "operator login must not touch the store")
}

func TestService_OperatorWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@smartstyle.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ResolveSubject(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "lovelace1815",
	})
	require.NoError(t, err)

	identity, err := svc.ResolveSubject(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, "customer", identity.Role)

	// Operator sentinel resolves without a store row.
	identity, err = svc.ResolveSubject(ctx, OperatorSubject)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity.Role)

	_, err = svc.ResolveSubject(ctx, "no-such-user")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
