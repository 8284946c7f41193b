package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
	"github.com/quickworkapp/quickwork-cli/internal/common"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

func testClient(t *testing.T, h http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 2*time.Second, func() string { return token }, logging.NewTextLogger(io.Discard, "error"))
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "mock-token-123"})
	}, "")

	token, err := c.Login(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "mock-token-123", token)
	assert.Equal(t, map[string]string{"username": "test@example.com", "password": "password123"}, gotBody)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "")

	_, err := c.Login(context.Background(), "wrong@example.com", "wrongpass")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, "Credenciales incorrectas", common.ErrInvalidCredentials.Error())
}

func TestLogin_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second, func() string { return "" }, logging.NewTextLogger(io.Discard, "error"))
	_, err := c.Login(context.Background(), "a", "b")
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestLogin_MissingTokenField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}, "")

	token, err := c.Login(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Empty(t, token, "a 2xx body without a token resolves with no token")
}

func TestRegister_SendsFullForm(t *testing.T) {
	var got models.RegistrationForm
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}, "")

	form := models.RegistrationForm{
		ID:             "user-abc",
		Name:           "Ana Pérez",
		Email:          "ana@example.com",
		Password:       "s3cret",
		DocumentType:   "CC",
		DocumentNumber: "10203040",
		Role:           "USER",
	}
	require.NoError(t, c.Register(context.Background(), form))
	assert.Equal(t, form, got)
}

func TestRegister_RejectionCarriesBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("el email ya está registrado"))
	}, "")

	err := c.Register(context.Background(), models.RegistrationForm{})
	var re *common.RegistrationError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "el email ya está registrado", re.Error())
}

func TestRegister_RejectionEmptyBodyFallback(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}, "")

	err := c.Register(context.Background(), models.RegistrationForm{})
	var re *common.RegistrationError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Error en el registro", re.Error())
}

func TestListJobs_SendsBearerToken(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"title":"Desarrollador React","location":"Bogotá","pay":5000,"duration":"1 mes","image":""}]`))
	}, "tok-1")

	jobs, err := c.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, models.ID("1"), jobs[0].ID)
	assert.Equal(t, "Desarrollador React", jobs[0].Title)
	assert.Equal(t, 5000, jobs[0].Pay)
}

func TestListJobs_Unauthorized(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "stale")

	_, err := c.ListJobs(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestCreateJob_Success(t *testing.T) {
	var got models.Job
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/jobs", r.URL.Path)
		assert.Equal(t, "Bearer tok-2", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}, "tok-2")

	job := models.Job{ID: "job-1-2", Title: "Mudanza", Location: "Cali, Valle del Cauca", Pay: 80000, Duration: "1 día", Description: "ayuda con trasteo", Image: "https://example.com/p.png"}
	require.NoError(t, c.CreateJob(context.Background(), job))
	assert.Equal(t, job, got)
}

func TestCreateJob_BadRequestMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}, "tok")

	err := c.CreateJob(context.Background(), models.Job{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "datos enviados")
}

func TestCreateJob_ServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "tok")

	err := c.CreateJob(context.Background(), models.Job{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
