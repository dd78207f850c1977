package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
	"github.com/dmitrijs2005/airlineadmin/internal/server/services"
)

func credentials(username, password string) url.Values {
	return url.Values{"username": {username}, "password": {password}}
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	user := &models.User{ID: 1, Username: "alice"}
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	f.users.On("Verify", mock.Anything, "alice", "secret").Return(user, nil)
	f.sessions.On("Start", mock.Anything, user).Return("new-token", &services.Identity{
		SessionID: "s-1", UserID: 1, Username: "alice", ExpiresAt: expires,
	}, nil)

	rec := f.do(post("/login", credentials("alice", "secret"), false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, []string{"Welcome back, alice!"}, queued(rec))

	c := responseCookie(rec, common.SessionCookieName)
	require.NotNil(t, c)
	assert.Equal(t, "new-token", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.True(t, expires.Equal(c.Expires))
}

func TestLogin_FailureRerendersForm(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"bad credentials", common.ErrInvalidCredentials},
		{"storage error", errors.New("db down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.users.On("Verify", mock.Anything, "alice", "wrong").Return(nil, tt.err)

			rec := f.do(post("/login", credentials("alice", "wrong"), false))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Login failed. Please check your username and password.")
			assert.Nil(t, responseCookie(rec, common.SessionCookieName))
		})
	}
}

func TestLogin_SessionStartFails(t *testing.T) {
	f := newFixture(t)
	user := &models.User{ID: 1, Username: "alice"}
	f.users.On("Verify", mock.Anything, "alice", "secret").Return(user, nil)
	f.sessions.On("Start", mock.Anything, user).Return("", nil, errors.New("insert failed"))

	rec := f.do(post("/login", credentials("alice", "secret"), false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Nil(t, responseCookie(rec, common.SessionCookieName))
}

func TestLoginPage(t *testing.T) {
	f := newFixture(t)

	rec := f.do(get("/login", false))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		location string
		message  string
	}{
		{"created", nil, "/login", "Account created! Please log in."},
		{"taken", common.ErrDuplicateUsername, "/register", "Username already exists."},
		{"blank", fmt.Errorf("%w: username is required", common.ErrValidation), "/register", "Username is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var user *models.User
			if tt.err == nil {
				user = &models.User{ID: 2, Username: "bob"}
			}
			f.users.On("Register", mock.Anything, "bob", "pw").Return(user, tt.err)

			rec := f.do(post("/register", credentials("bob", "pw"), false))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			assert.Equal(t, []string{tt.message}, queued(rec))
		})
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	f.sessions.On("End", mock.Anything, testToken).Return(nil)

	rec := f.do(get("/logout", true))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{"You have been logged out."}, queued(rec))

	c := responseCookie(rec, common.SessionCookieName)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
}

func TestLogout_Anonymous(t *testing.T) {
	f := newFixture(t)

	rec := f.do(get("/logout", false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f.sessions.AssertNotCalled(t, "End", mock.Anything, mock.Anything)
}
