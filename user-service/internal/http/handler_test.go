package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Youhab1/cloud-finalproject/pkg/web"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ServiceMock struct {
	signupErr error
	signinErr error

	profile    domain.UserProfile
	found      bool
	profileErr error

	lastSignup domain.SignupRequest
	lastSignin domain.SigninRequest
}

func (m *ServiceMock) Signup(_ context.Context, req domain.SignupRequest) error {
	m.lastSignup = req
	return m.signupErr
}

func (m *ServiceMock) Signin(_ context.Context, req domain.SigninRequest) error {
	m.lastSignin = req
	return m.signinErr
}

func (m *ServiceMock) Profile(_ context.Context, username string) (domain.UserProfile, bool, error) {
	if username == "" {
		return domain.UserProfile{}, false, service.ErrMissingParameter
	}
	return m.profile, m.found, m.profileErr
}

func newRouter(mock *ServiceMock) http.Handler {
	r := chi.NewRouter()
	NewSignHandler(mock).Routes(r)
	NewProfileHandler(mock).Routes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)
	return recorder
}

func TestSignup_Success(t *testing.T) {
	mock := &ServiceMock{}

	recorder := do(t, newRouter(mock), http.MethodPost, "/sign/signup",
		`{"username":"mona","password":"Secret1!x","confirmPassword":"Secret1!x","phoneNumber":"01012345678","email":"mona@example.com","homeAddress":"Cairo"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"User signed up successfully"}`, recorder.Body.String())
	assert.Equal(t, domain.SignupRequest{
		Username:        "mona",
		Password:        "Secret1!x",
		ConfirmPassword: "Secret1!x",
		PhoneNumber:     "01012345678",
		Email:           "mona@example.com",
		HomeAddress:     "Cairo",
	}, mock.lastSignup)
}

func TestSignup_ValidationError(t *testing.T) {
	mock := &ServiceMock{signupErr: &service.ValidationError{Messages: []string{"Username already taken", "Invalid email address"}}}

	recorder := do(t, newRouter(mock), http.MethodPost, "/sign/signup", `{"username":"mona"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Username already taken\nInvalid email address", resp.Errors)
}

func TestSignup_StoreFailure(t *testing.T) {
	mock := &ServiceMock{signupErr: service.ErrStoreUnavailable}

	recorder := do(t, newRouter(mock), http.MethodPost, "/sign/signup", `{"username":"mona"}`)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	var resp web.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Failed to sign up user", resp.Error)
}

func TestSignup_MalformedBody(t *testing.T) {
	recorder := do(t, newRouter(&ServiceMock{}), http.MethodPost, "/sign/signup", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSignin(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"success", nil, http.StatusOK, `{"message":"User signed in successfully"}`},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, `{"message":"Invalid username or password"}`},
		{"store failure", errors.Join(service.ErrStoreUnavailable, errors.New("down")), http.StatusInternalServerError, `{"error":"Failed to sign in user","code":"internal_error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &ServiceMock{signinErr: tt.err}

			recorder := do(t, newRouter(mock), http.MethodPost, "/sign/signin", `{"username":"mona","password":"Secret1!x"}`)

			require.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			assert.Equal(t, domain.SigninRequest{Username: "mona", Password: "Secret1!x"}, mock.lastSignin)
		})
	}
}

func TestUserData_Found(t *testing.T) {
	mock := &ServiceMock{
		found:   true,
		profile: domain.UserProfile{Username: "mona", Email: "mona@example.com", Phone: "01012345678", Address: "Cairo"},
	}

	recorder := do(t, newRouter(mock), http.MethodGet, "/userdata?username=mona", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"username":"mona","email":"mona@example.com","phone":"01012345678","address":"Cairo"}`, recorder.Body.String())
}

func TestUserData_NotFound(t *testing.T) {
	recorder := do(t, newRouter(&ServiceMock{}), http.MethodGet, "/userdata?username=ghost", "")

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, recorder.Body.String())
}

func TestUserData_MissingUsername(t *testing.T) {
	recorder := do(t, newRouter(&ServiceMock{}), http.MethodGet, "/userdata", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUserData_StoreFailure(t *testing.T) {
	recorder := do(t, newRouter(&ServiceMock{profileErr: service.ErrStoreUnavailable}), http.MethodGet, "/userdata?username=mona", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
