package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	users := NewMock()
	users.GetUserFunc = func(_ context.Context, username string) (User, error) {
		switch username {
		case "coach":
			return User{ID: 1, Username: "coach", Role: RoleAdmin}, nil
		case "fan":
			return User{ID: 2, Username: "fan", Role: RoleViewer}, nil
		}
		return User{}, ErrUserNotFound
	}

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, found := UserFromContext(r.Context())
		require.True(t, found)
		w.Write([]byte(u.Username))
	})
	authenticated := Middleware(issuer, users)
	adminOnly := authenticated(RequireRole(RoleAdmin)(ok))
	viewers := authenticated(RequireRole(RoleViewer)(ok))

	tokenFor := func(username string, role Role) string {
		tok, err := issuer.Issue(User{Username: username, Role: role})
		require.NoError(t, err)
		return "Bearer " + tok.AccessToken
	}

	testCases := []struct {
		name       string
		handler    http.Handler
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", viewers, "", http.StatusUnauthorized, ""},
		{"wrong scheme", viewers, "Basic abc", http.StatusUnauthorized, ""},
		{"bad token", viewers, "Bearer nope", http.StatusUnauthorized, ""},
		{"unknown user", viewers, tokenFor("ghost", RoleAdmin), http.StatusUnauthorized, ""},
		{"viewer reads", viewers, tokenFor("fan", RoleViewer), http.StatusOK, "fan"},
		{"admin reads", viewers, tokenFor("coach", RoleAdmin), http.StatusOK, "coach"},
		{"viewer writes", adminOnly, tokenFor("fan", RoleViewer), http.StatusForbidden, ""},
		{"admin writes", adminOnly, tokenFor("coach", RoleAdmin), http.StatusOK, "coach"},
		// The role stored for the user wins over the role in the token.
		{"stale admin claim", adminOnly, tokenFor("fan", RoleAdmin), http.StatusForbidden, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			tc.handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestRequireRoleWithoutUser(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireRole(RoleViewer)(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
