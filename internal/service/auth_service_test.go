package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/immortalfoodie/Ecosphere/internal/model"
)

type fakeAccountRepo struct {
	accounts map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*model.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *model.Account) error {
	r.accounts[a.Email] = a
	return nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*model.Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

const testSecret = "test-secret"

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeAccountRepo(), testSecret)

	account, token, err := svc.Signup(ctx, "Alice@Example.com", "password1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password1", account.PasswordHash)

	_, loginToken, err := svc.Login(ctx, "  alice@example.com ", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		email    string
		password string
		userName string
	}{
		{"missing email", "", "password1", "Alice"},
		{"missing password", "a@b.com", "", "Alice"},
		{"missing name", "a@b.com", "password1", ""},
		{"short password", "a@b.com", "12345", "Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(newFakeAccountRepo(), testSecret)
			_, _, err := svc.Signup(ctx, tt.email, tt.password, tt.userName)
			assert.Error(t, err)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeAccountRepo(), testSecret)

	_, _, err := svc.Signup(ctx, "alice@example.com", "password1", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, "ALICE@example.com", "password2", "Alice Again")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeAccountRepo(), testSecret)
	_, _, err := svc.Signup(ctx, "alice@example.com", "password1", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenCarriesIdentityClaims(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeAccountRepo(), testSecret)
	_, token, err := svc.Signup(ctx, "alice@example.com", "password1", "Alice")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "Alice", claims["name"])
}
