package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mentepro/models"
	"mentepro/utils"
)

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func newTestService() (*DefaultUserService, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return &DefaultUserService{Repo: repo, Logger: zap.NewNop()}, repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestService()

	account, err := svc.Register(context.Background(), "ana@clinic.com", "secret123", "Ana", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.Len(t, repo.users, 1)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "ana@clinic.com", "12345", "Ana", "admin")
	require.Error(t, err)
	assert.Equal(t, "A senha deve ter pelo menos 6 caracteres.", err.Error())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "ana@clinic.com", "secret123", "Ana", "admin")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "ana@clinic.com", "secret456", "Ana B", "admin")
	require.Error(t, err)
	assert.Equal(t, "e-mail já cadastrado", err.Error())
}

func TestSignInIssuesToken(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Register(context.Background(), "ana@clinic.com", "secret123", "Ana", "admin")
	require.NoError(t, err)

	result, err := svc.SignIn(context.Background(), "ana@clinic.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	// The stored hash matches the issued token.
	assert.Equal(t, utils.HashToken(result.Token), repo.users[0].TokenHash)

	id, err := utils.ExtractIDFromToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, id)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "ana@clinic.com", "secret123", "Ana", "admin")
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), "ana@clinic.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "credenciais inválidas", err.Error())

	_, err = svc.SignIn(context.Background(), "nobody@clinic.com", "secret123")
	require.Error(t, err)
	assert.Equal(t, "credenciais inválidas", err.Error())
}

func TestRevokeTokenClearsHash(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Register(context.Background(), "ana@clinic.com", "secret123", "Ana", "admin")
	require.NoError(t, err)

	result, err := svc.SignIn(context.Background(), "ana@clinic.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), result.User.ID))
	assert.Empty(t, repo.users[0].TokenHash)
}
