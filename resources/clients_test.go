package resources_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apextrack/go-admin-console/gateway"
	apierrors "github.com/apextrack/go-admin-console/internal/errors"
	"github.com/apextrack/go-admin-console/internal/utils"
	"github.com/apextrack/go-admin-console/resources"
	"github.com/apextrack/go-admin-console/session"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

type clientFixture struct {
	gw       *gateway.Gateway
	store    *session.Store
	last     recordedRequest
	response string
	status   int
}

func setupClients(t *testing.T) *clientFixture {
	t.Helper()

	fixture := &clientFixture{response: `{"message":"ok"}`, status: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fixture.last = recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)}
		w.WriteHeader(fixture.status)
		_, _ = w.Write([]byte(fixture.response))
	}))
	t.Cleanup(server.Close)

	fixture.store = session.NewStore(nil)
	require.NoError(t, fixture.store.Set("token", &session.User{ID: "u1", Role: "admin"}))

	gw, err := gateway.New(server.URL, fixture.store)
	require.NoError(t, err)
	fixture.gw = gw
	return fixture
}

func TestAuthClient(t *testing.T) {
	t.Run("login maps to POST /auth/login", func(t *testing.T) {
		fixture := setupClients(t)
		fixture.response = `{"token":"t1","user":{"id":"u1","name":"Jane","role":"admin"}}`

		resp, err := resources.NewAuthClient(fixture.gw).Login(context.Background(), resources.LoginCredentials{
			Email:    "jane@example.com",
			Password: "pw",
		})
		require.NoError(t, err)

		require.Equal(t, "POST", fixture.last.method)
		require.Equal(t, "/auth/login", fixture.last.path)
		require.JSONEq(t, `{"email":"jane@example.com","password":"pw"}`, fixture.last.body)
		require.Equal(t, "t1", resp.Token)
		require.Equal(t, "Jane", resp.User.Name)
	})

	t.Run("logout maps to POST /auth/logout", func(t *testing.T) {
		fixture := setupClients(t)
		require.NoError(t, resources.NewAuthClient(fixture.gw).Logout(context.Background()))
		require.Equal(t, "POST", fixture.last.method)
		require.Equal(t, "/auth/logout", fixture.last.path)
		require.Empty(t, fixture.last.body)
	})
}

func TestOffersClient(t *testing.T) {
	t.Run("update sends only the changed fields", func(t *testing.T) {
		fixture := setupClients(t)

		_, err := resources.NewOffersClient(fixture.gw).Update(context.Background(), "42", resources.OfferInput{
			Status: utils.Ptr(resources.OfferStatusPaused),
		})
		require.NoError(t, err)

		require.Equal(t, "PUT", fixture.last.method)
		require.Equal(t, "/offers/42", fixture.last.path)
		require.JSONEq(t, `{"status":"paused"}`, fixture.last.body)
	})

	t.Run("delete maps to DELETE /offers/:id", func(t *testing.T) {
		fixture := setupClients(t)
		ack, err := resources.NewOffersClient(fixture.gw).Delete(context.Background(), "42")
		require.NoError(t, err)
		require.Equal(t, "DELETE", fixture.last.method)
		require.Equal(t, "/offers/42", fixture.last.path)
		require.Equal(t, "ok", ack.Message)
	})

	t.Run("errors propagate untouched from the gateway", func(t *testing.T) {
		fixture := setupClients(t)
		fixture.status = http.StatusConflict
		fixture.response = `{"message":"offer name already taken"}`

		_, err := resources.NewOffersClient(fixture.gw).Create(context.Background(), resources.OfferInput{
			Name: utils.Ptr("dup"),
		})
		require.ErrorIs(t, err, apierrors.ErrRequestFailed)
		require.Contains(t, err.Error(), "offer name already taken")
	})
}

func TestUsersClient(t *testing.T) {
	t.Run("list is paginated", func(t *testing.T) {
		fixture := setupClients(t)
		fixture.response = `{"data":[{"id":"u1","name":"Jane","role":"admin"}],"current_page":2,"last_page":7,"links":[]}`

		page, err := resources.NewUsersClient(fixture.gw).List(context.Background(), 2)
		require.NoError(t, err)
		require.Equal(t, "/users", fixture.last.path)
		require.Equal(t, 2, page.CurrentPage)
		require.Equal(t, 7, page.LastPage)
		require.Len(t, page.Data, 1)
	})

	t.Run("create carries password confirmation", func(t *testing.T) {
		fixture := setupClients(t)

		_, err := resources.NewUsersClient(fixture.gw).Create(context.Background(), resources.NewUserInput{
			Name:                 "New User",
			Email:                "new@example.com",
			Role:                 "editor",
			Password:             "Secret123",
			PasswordConfirmation: "Secret123",
		})
		require.NoError(t, err)

		var sent map[string]any
		require.NoError(t, json.Unmarshal([]byte(fixture.last.body), &sent))
		require.Equal(t, "Secret123", sent["password_confirmation"])
	})

	t.Run("roles maps to GET /user-roles", func(t *testing.T) {
		fixture := setupClients(t)
		fixture.response = `["admin","editor","viewer"]`

		roles, err := resources.NewUsersClient(fixture.gw).Roles(context.Background())
		require.NoError(t, err)
		require.Equal(t, "/user-roles", fixture.last.path)
		require.Equal(t, []string{"admin", "editor", "viewer"}, roles)
	})
}

func TestProfileClient(t *testing.T) {
	t.Run("get unwraps the user envelope", func(t *testing.T) {
		fixture := setupClients(t)
		fixture.response = `{"user":{"id":"u1","name":"Jane","email":"jane@example.com"}}`

		user, err := resources.NewProfileClient(fixture.gw).Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, "/profile", fixture.last.path)
		require.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("password update maps to PUT /password", func(t *testing.T) {
		fixture := setupClients(t)

		_, err := resources.NewProfileClient(fixture.gw).UpdatePassword(context.Background(), resources.PasswordUpdateInput{
			CurrentPassword:      "old",
			Password:             "NewSecret1",
			PasswordConfirmation: "NewSecret1",
		})
		require.NoError(t, err)
		require.Equal(t, "PUT", fixture.last.method)
		require.Equal(t, "/password", fixture.last.path)
	})
}

func TestGeneratorClient_Data(t *testing.T) {
	fixture := setupClients(t)
	fixture.response = `{
		"offers":[{"id":"1","name":"Offer A","status":"active"}],
		"domains":["ex.co"],
		"redirect_types":["301","302"],
		"types":["render","direct_redirect"],
		"generation_modes":["smartlink_self","smartlink_external_self"],
		"shortener_choices":["tinyurl","bitly"]
	}`

	data, err := resources.NewGeneratorClient(fixture.gw).Data(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/generator-data", fixture.last.path)
	require.Equal(t, []string{"ex.co"}, data.Domains)
	require.Len(t, data.GenerationModes, 2)
	require.Len(t, data.Offers, 1)
}
