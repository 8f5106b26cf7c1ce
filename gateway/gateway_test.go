package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apextrack/go-admin-console/gateway"
	apierrors "github.com/apextrack/go-admin-console/internal/errors"
	"github.com/apextrack/go-admin-console/session"
)

const testToken = "bearer-token-xyz"

type testFixture struct {
	store       *session.Store
	gw          *gateway.Gateway
	server      *httptest.Server
	invalidated int
	requests    []*http.Request
}

func setupFixture(t *testing.T, handler http.HandlerFunc) *testFixture {
	t.Helper()

	fixture := &testFixture{store: session.NewStore(nil)}
	fixture.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clone := r.Clone(context.Background())
		fixture.requests = append(fixture.requests, clone)
		handler(w, r)
	}))
	t.Cleanup(fixture.server.Close)

	gw, err := gateway.New(fixture.server.URL, fixture.store,
		gateway.WithSessionInvalidatedHook(func() { fixture.invalidated++ }),
	)
	require.NoError(t, err)
	fixture.gw = gw
	return fixture
}

func (f *testFixture) authenticate(t *testing.T) {
	t.Helper()
	require.NoError(t, f.store.Set(testToken, &session.User{ID: "u1", Role: "admin"}))
}

func okJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestGateway_CredentialInjection(t *testing.T) {
	t.Run("attaches the stored token as a bearer credential", func(t *testing.T) {
		fixture := setupFixture(t, okJSON(`{}`))
		fixture.authenticate(t)

		require.NoError(t, fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil))
		require.Len(t, fixture.requests, 1)
		require.Equal(t, "Bearer "+testToken, fixture.requests[0].Header.Get("Authorization"))
	})

	t.Run("attaches no credential when the store is empty", func(t *testing.T) {
		fixture := setupFixture(t, okJSON(`{}`))

		require.NoError(t, fixture.gw.Do(context.Background(), "POST", "/auth/login", map[string]string{"email": "a@b.co"}, nil))
		require.Empty(t, fixture.requests[0].Header.Get("Authorization"))
	})

	t.Run("sets content negotiation headers for JSON bodies", func(t *testing.T) {
		fixture := setupFixture(t, okJSON(`{}`))

		require.NoError(t, fixture.gw.Do(context.Background(), "POST", "/offers", map[string]string{"name": "x"}, nil))
		req := fixture.requests[0]
		require.Equal(t, "application/json", req.Header.Get("Content-Type"))
		require.Equal(t, "application/json", req.Header.Get("Accept"))
	})

	t.Run("carries a request id", func(t *testing.T) {
		fixture := setupFixture(t, okJSON(`{}`))

		require.NoError(t, fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil))
		require.NotEmpty(t, fixture.requests[0].Header.Get("X-Request-ID"))
	})
}

func TestGateway_Upload(t *testing.T) {
	fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "ex.co", r.FormValue("shared_domain"))

		file, header, err := r.FormFile("og_image_file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "og.png", header.Filename)

		okJSON(`{"final_shared_url":"https://ex.co/x"}`)(w, r)
	})
	fixture.authenticate(t)

	form := gateway.NewForm().
		AddField("shared_domain", "ex.co").
		AddFile("og_image_file", "og.png", []byte{0x89, 0x50, 0x4e, 0x47})

	var out map[string]string
	require.NoError(t, fixture.gw.Upload(context.Background(), "POST", "/generate-smartlink", form, &out))

	// The boundary must come from the multipart writer, never hardcoded.
	contentType := fixture.requests[0].Header.Get("Content-Type")
	require.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="))
	require.Equal(t, "https://ex.co/x", out["final_shared_url"])
}

func TestGateway_SessionExpiry(t *testing.T) {
	t.Run("401 clears the store, notifies once and resolves as session expired", func(t *testing.T) {
		fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		fixture.authenticate(t)

		err := fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil)
		require.ErrorIs(t, err, apierrors.ErrSessionExpired)
		require.False(t, fixture.store.IsAuthenticated())
		require.Equal(t, 1, fixture.invalidated)
	})

	t.Run("a stale concurrent caller after the clear carries no token and does not re-notify", func(t *testing.T) {
		fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		fixture.authenticate(t)

		require.ErrorIs(t, fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil), apierrors.ErrSessionExpired)
		require.ErrorIs(t, fixture.gw.Do(context.Background(), "GET", "/offers", nil, nil), apierrors.ErrSessionExpired)

		require.Len(t, fixture.requests, 2)
		require.Empty(t, fixture.requests[1].Header.Get("Authorization"))
		require.Equal(t, 1, fixture.invalidated)
	})

	t.Run("401 wins regardless of payload", func(t *testing.T) {
		fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
		})
		fixture.authenticate(t)

		var out map[string]string
		err := fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, &out)
		require.ErrorIs(t, err, apierrors.ErrSessionExpired)
		require.NotErrorIs(t, err, apierrors.ErrRequestFailed)
		require.Empty(t, out)
	})
}

func TestGateway_RequestFailures(t *testing.T) {
	t.Run("passes the server message through", func(t *testing.T) {
		fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"The name field is required."}`))
		})
		fixture.authenticate(t)

		err := fixture.gw.Do(context.Background(), "POST", "/offers", map[string]string{}, nil)
		require.ErrorIs(t, err, apierrors.ErrRequestFailed)

		var reqErr *apierrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)
		require.Equal(t, "The name field is required.", reqErr.Message)
	})

	t.Run("falls back to a generic message", func(t *testing.T) {
		fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>boom</html>"))
		})
		fixture.authenticate(t)

		err := fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil)
		var reqErr *apierrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Contains(t, reqErr.Error(), "500")
	})

	t.Run("does not touch the session on other failures", func(t *testing.T) {
		fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		fixture.authenticate(t)

		require.ErrorIs(t, fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil), apierrors.ErrRequestFailed)
		require.True(t, fixture.store.IsAuthenticated())
		require.Zero(t, fixture.invalidated)
	})

	t.Run("undecodable success payload is a request failure", func(t *testing.T) {
		fixture := setupFixture(t, okJSON(`{not json`))
		fixture.authenticate(t)

		var out map[string]string
		require.ErrorIs(t, fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, &out), apierrors.ErrRequestFailed)
	})
}

func TestGateway_NetworkFailure(t *testing.T) {
	fixture := setupFixture(t, okJSON(`{}`))
	fixture.authenticate(t)
	fixture.server.Close()

	err := fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil)
	require.ErrorIs(t, err, apierrors.ErrNetworkFailure)

	// No response is not proof of bad credentials.
	require.True(t, fixture.store.IsAuthenticated())
	require.Zero(t, fixture.invalidated)
}

func TestGateway_LoginThenDashboardCarriesToken(t *testing.T) {
	fixture := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			okJSON(`{"token":"` + testToken + `","user":{"id":"u1","role":"admin"}}`)(w, r)
		default:
			okJSON(`{"summary":{}}`)(w, r)
		}
	})

	var login struct {
		Token string        `json:"token"`
		User  *session.User `json:"user"`
	}
	require.NoError(t, fixture.gw.Do(context.Background(), "POST", "/auth/login", map[string]string{"email": "a@b.co", "password": "pw"}, &login))
	require.NoError(t, fixture.store.Set(login.Token, login.User))

	require.NoError(t, fixture.gw.Do(context.Background(), "GET", "/dashboard", nil, nil))
	require.Len(t, fixture.requests, 2)
	require.Empty(t, fixture.requests[0].Header.Get("Authorization"))
	require.Equal(t, "Bearer "+testToken, fixture.requests[1].Header.Get("Authorization"))
}
