package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/form"
	"portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&config.Config{APIBaseURL: baseURL})
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var validArgs = []string{"--name", "Al", "--email", "a@b.com", "--subject", "Hello there", "--message", "This is a test message."}

func TestContactPostsToBackendContactEndpoint(t *testing.T) {
	var got domain.ContactSubmission
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	out, err := run(t, backend.URL, validArgs...)
	require.NoError(t, err)
	assert.Contains(t, out, form.SuccessTitle)
	assert.Equal(t, "a@b.com", got.Email)
}

func TestContactReportsGenericFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	out, err := run(t, backend.URL, validArgs...)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	assert.Contains(t, out, apperror.GenericSubmissionMessage)
}

func TestContactRejectsInvalidFieldsLocally(t *testing.T) {
	var hits int
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer backend.Close()

	out, err := run(t, backend.URL, "--name", "A", "--email", "nope", "--subject", "Hello there", "--message", "This is a test message.")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, out, "name: ")
	assert.Contains(t, out, "email: ")
	assert.Zero(t, hits)
}
