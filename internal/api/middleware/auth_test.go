package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var (
		gotUserID int64
		gotOK     bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	run := func(header string) *httptest.ResponseRecorder {
		gotUserID, gotOK = 0, false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
		if header != "" {
			req.Header.Set("X-User-ID", header)
		}
		rec := httptest.NewRecorder()
		Auth(next).ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid header", func(t *testing.T) {
		rec := run("42")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := run("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, gotOK)
	})

	t.Run("non-numeric header", func(t *testing.T) {
		rec := run("abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive id", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, run("0").Code)
		assert.Equal(t, http.StatusUnauthorized, run("-5").Code)
	})
}

func TestGetUserID_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}
