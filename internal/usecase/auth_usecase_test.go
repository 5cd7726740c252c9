package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/auth"
	authdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*domain.User
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func newAuthFixture(t *testing.T) (*memUserRepo, *DefaultAuthUsecase) {
	t.Helper()
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("curva-sud-1998")
	require.NoError(t, err)

	repo := &memUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "capo@bcs.id", Role: domain.RoleModerator, Status: domain.UserStatusActive, PasswordHash: hash},
		"u2": {ID: "u2", Email: "banned@bcs.id", Role: domain.RoleUser, Status: domain.UserStatusInactive, PasswordHash: hash},
		"u3": {ID: "u3", Email: "oauth@bcs.id", Role: domain.RoleUser, Status: domain.UserStatusActive},
	}}
	return repo, NewDefaultAuthUsecase(repo, auth.NewTokenManager("test-secret", time.Hour), hasher)
}

func TestLogin(t *testing.T) {
	repo, uc := newAuthFixture(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, &authdto.LoginInput{Email: " Capo@BCS.id", Password: "curva-sud-1998"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)

	principal, err := uc.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, &domain.Principal{UserID: "u1", Role: domain.RoleModerator}, principal)

	// role changes apply to live tokens
	repo.users["u1"].Role = domain.RoleSuperAdmin
	principal, err = uc.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, principal.Role)

	repo.users["u1"].Status = domain.UserStatusInactive
	_, err = uc.Authenticate(ctx, out.Token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_Rejections(t *testing.T) {
	_, uc := newAuthFixture(t)
	ctx := context.Background()

	cases := map[string]authdto.LoginInput{
		"wrong password": {Email: "capo@bcs.id", Password: "nope"},
		"unknown email":  {Email: "ghost@bcs.id", Password: "curva-sud-1998"},
		"inactive user":  {Email: "banned@bcs.id", Password: "curva-sud-1998"},
		"no password":    {Email: "oauth@bcs.id", Password: "curva-sud-1998"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Login(ctx, &input)
			require.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}

	_, err := uc.Login(ctx, &authdto.LoginInput{Email: "capo"})
	require.True(t, domain.IsValidation(err))

	_, err = uc.Authenticate(ctx, "garbage")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
