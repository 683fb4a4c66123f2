package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/repository"
)

type mockUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: make(map[string]domain.User),
		nextID:  1,
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := m.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = m.nextID
	m.nextID++
	m.byEmail[user.Email] = user

	return user, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}

	return domain.User{}, repository.ErrUserNotFound
}

func TestAuthService_Signup(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "dandelion@example.com",
		Password: "lute4ever",
		Name:     "Dandelion",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	// The stored password is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "lute4ever", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("lute4ever")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	_, err := svc.Signup(context.Background(), domain.User{Email: "dandelion@example.com", Password: "lute4ever", Name: "Dandelion"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "dandelion@example.com", Password: "other", Name: "Impostor"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	created, err := svc.Signup(context.Background(), domain.User{Email: "dandelion@example.com", Password: "lute4ever", Name: "Dandelion"})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "dandelion@example.com", "lute4ever")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	_, err := svc.Signup(context.Background(), domain.User{Email: "dandelion@example.com", Password: "lute4ever", Name: "Dandelion"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "dandelion@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	_, err := svc.Login(context.Background(), "missing@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
