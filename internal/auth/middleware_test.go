package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(t *testing.T, jwtSvc *JWT) (http.Handler, *string) {
	t.Helper()

	var seen string
	h := RequireAuth(jwtSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := EmailFromContext(r.Context())
		require.True(t, ok)
		seen = email
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seen
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()

	jwtSvc := NewJWT("secret")
	tok, err := jwtSvc.Sign("gardener@example.com")
	require.NoError(t, err)

	h, seen := protected(t, jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/plants", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gardener@example.com", *seen)
}

func TestRequireAuth_Rejections(t *testing.T) {
	t.Parallel()

	jwtSvc := NewJWT("secret")
	h, _ := protected(t, jwtSvc)

	forged, err := NewJWT("other-secret").Sign("gardener@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer garbage"},
		{"forged signature", "Bearer " + forged},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/plants", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"ok":false,"error":"unauthorized"}`, rec.Body.String())
		})
	}
}
