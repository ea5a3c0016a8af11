package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Youhab1/cloud-finalproject/user-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/repository"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mu        sync.Mutex
	users     map[string]domain.User
	findErr   error
	createErr error
}

func newMockRepository(users ...domain.User) *mockRepository {
	m := &mockRepository{users: make(map[string]domain.User)}
	for _, u := range users {
		m.users[u.Username] = u
	}
	return m
}

func (m *mockRepository) FindByUsername(_ context.Context, username string) (domain.UserLookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return domain.UserLookup{}, m.findErr
	}
	u, ok := m.users[username]
	return domain.UserLookup{User: u, Found: ok}, nil
}

func (m *mockRepository) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	m.users[user.Username] = user
	return nil
}

func signupRequest() domain.SignupRequest {
	return domain.SignupRequest{
		Username:        "mona",
		Password:        "Secret1!x",
		ConfirmPassword: "Secret1!x",
		PhoneNumber:     "01012345678",
		Email:           "mona@example.com",
		HomeAddress:     "Cairo",
	}
}

func TestSignup_Success(t *testing.T) {
	repo := newMockRepository()
	s := NewUserService(repo)

	require.NoError(t, s.Signup(context.Background(), signupRequest()))

	stored, ok := repo.users["mona"]
	require.True(t, ok)
	assert.Equal(t, "Secret1!x", stored.Password)
	assert.Equal(t, "01012345678", stored.PhoneNumber)
	assert.Equal(t, "Cairo", stored.HomeAddress)
}

func TestSignup_ValidationErrors(t *testing.T) {
	repo := newMockRepository()
	s := NewUserService(repo)
	req := signupRequest()
	req.ConfirmPassword = "different"
	req.Email = "nope"

	err := s.Signup(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validation.MsgPasswordsMismatch, validation.MsgEmailInvalid}, verr.Messages)
	assert.Equal(t, validation.MsgPasswordsMismatch+"\n"+validation.MsgEmailInvalid, err.Error())
	assert.Empty(t, repo.users)
}

func TestSignup_UsernameTaken(t *testing.T) {
	s := NewUserService(newMockRepository(domain.User{Username: "mona"}))
	req := signupRequest()
	req.Email = "bad"

	err := s.Signup(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validation.MsgUsernameTaken, validation.MsgEmailInvalid}, verr.Messages)
}

func TestSignup_DuplicateOnInsert(t *testing.T) {
	repo := newMockRepository()
	repo.createErr = repository.ErrDuplicateUsername
	s := NewUserService(repo)

	err := s.Signup(context.Background(), signupRequest())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validation.MsgUsernameTaken}, verr.Messages)
}

func TestSignup_StoreFailures(t *testing.T) {
	cause := errors.New("connection reset")

	repo := newMockRepository()
	repo.findErr = cause
	err := NewUserService(repo).Signup(context.Background(), signupRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)

	repo = newMockRepository()
	repo.createErr = cause
	err = NewUserService(repo).Signup(context.Background(), signupRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestSignin(t *testing.T) {
	s := NewUserService(newMockRepository(domain.User{Username: "mona", Password: "Secret1!x"}))
	ctx := context.Background()

	assert.NoError(t, s.Signin(ctx, domain.SigninRequest{Username: "mona", Password: "Secret1!x"}))
	assert.ErrorIs(t, s.Signin(ctx, domain.SigninRequest{Username: "mona", Password: "wrong"}), ErrInvalidCredentials)
	assert.ErrorIs(t, s.Signin(ctx, domain.SigninRequest{Username: "ghost", Password: "Secret1!x"}), ErrInvalidCredentials)
}

func TestSignin_StoreFailure(t *testing.T) {
	repo := newMockRepository()
	repo.findErr = errors.New("timeout")

	err := NewUserService(repo).Signin(context.Background(), domain.SigninRequest{Username: "mona"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestProfile(t *testing.T) {
	s := NewUserService(newMockRepository(domain.User{
		Username:    "mona",
		Password:    "Secret1!x",
		PhoneNumber: "01012345678",
		Email:       "mona@example.com",
		HomeAddress: "Cairo",
	}))

	profile, found, err := s.Profile(context.Background(), "mona")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.UserProfile{
		Username: "mona",
		Email:    "mona@example.com",
		Phone:    "01012345678",
		Address:  "Cairo",
	}, profile)
}

func TestProfile_NotFound(t *testing.T) {
	_, found, err := NewUserService(newMockRepository()).Profile(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProfile_MissingUsername(t *testing.T) {
	_, _, err := NewUserService(newMockRepository()).Profile(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingParameter)
}
