package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTestimonials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/testimonials", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name":"Sam Lee","message":"Shipped on time, every time.","designation":"CTO"}]`))
	}))
	defer srv.Close()

	items := apiclient.NewTestimonialClient(srv.URL, nil).List(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, domain.Testimonial{Name: "Sam Lee", Message: "Shipped on time, every time.", Designation: "CTO"}, items[0])
}

func TestListTestimonialsFailuresAreEmpty(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		items := apiclient.NewTestimonialClient(srv.URL, nil).List(context.Background())
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		}))
		defer srv.Close()

		assert.Empty(t, apiclient.NewTestimonialClient(srv.URL, nil).List(context.Background()))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		assert.Empty(t, apiclient.NewTestimonialClient(url, nil).List(context.Background()))
	})

	t.Run("null body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}))
		defer srv.Close()

		items := apiclient.NewTestimonialClient(srv.URL, nil).List(context.Background())
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestFetchReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	items, err := apiclient.NewTestimonialClient(srv.URL, nil).Fetch(context.Background())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, apiclient.ErrFetchTestimonials)
}

func TestCreateTestimonial(t *testing.T) {
	in := domain.Testimonial{Name: "Sam Lee", Message: "Shipped on time, every time.", Designation: "CTO"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got domain.Testimonial
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, in, got)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	created, err := apiclient.NewTestimonialClient(srv.URL, nil).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, *created)
}

func TestCreateTestimonialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	created, err := apiclient.NewTestimonialClient(srv.URL, nil).Create(context.Background(), domain.Testimonial{})
	assert.Nil(t, created)
	assert.True(t, errors.Is(err, apiclient.ErrAddTestimonial))
}
