package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	lchttp "localcrust/internal/adapters/in/http"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "sourdough-rules"

func newTestServer(t *testing.T) (*echo.Echo, *token.Issuer) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := token.NewIssuer("test-secret", time.Hour)
	server := lchttp.NewServer(lchttp.Handlers{}, tokens, lchttp.AdminCredentials{
		Email:        "admin@localcrust.in",
		PasswordHash: string(hash),
	})

	e := echo.New()
	server.RegisterRoutes(e)
	return e, tokens
}

func doRequest(e *echo.Echo, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func issue(t *testing.T, tokens *token.Issuer, role string) string {
	t.Helper()

	raw, err := tokens.Issue(kernel.NewUUID(), role)
	require.NoError(t, err)
	return raw
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, nethttp.MethodGet, "/api/health", "", "")

	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, nethttp.MethodGet, "/api/orders/my-orders", "", "")

	require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, nethttp.MethodGet, "/api/orders/my-orders", "not.a.token", "")

	require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestProtectedRoute_ExpiredToken(t *testing.T) {
	e, _ := newTestServer(t)

	expired := token.NewIssuer("test-secret", -time.Hour)
	raw, err := expired.Issue(kernel.NewUUID(), queries.RoleCustomer)
	require.NoError(t, err)

	rec := doRequest(e, nethttp.MethodGet, "/api/orders/my-orders", raw, "")

	require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestRoleGating(t *testing.T) {
	e, tokens := newTestServer(t)

	tests := []struct {
		name   string
		role   string
		method string
		path   string
		want   int
	}{
		{"customer cannot reach baker dashboard", queries.RoleCustomer,
			nethttp.MethodGet, "/api/baker/dashboard/stats", nethttp.StatusForbidden},
		{"baker cannot reach admin stats", queries.RoleBaker,
			nethttp.MethodGet, "/api/admin/dashboard/stats", nethttp.StatusForbidden},
		{"baker cannot checkout", queries.RoleBaker,
			nethttp.MethodPost, "/api/orders", nethttp.StatusForbidden},
		{"admin cannot reach customer loyalty", queries.RoleAdmin,
			nethttp.MethodGet, "/api/customer/loyalty", nethttp.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.path, issue(t, tokens, tt.role), "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLogin_Admin(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost, "/api/auth/login", "",
		`{"email":"admin@localcrust.in","password":"`+adminPassword+`"}`)

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var resp lchttp.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, queries.RoleAdmin, resp.Role)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Verified)
}

func TestLogin_Admin_WrongPassword(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost, "/api/auth/login", "",
		`{"email":"admin@localcrust.in","password":"wrong"}`)

	require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestLogin_AdminToken_OpensAdminRoutes(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost, "/api/auth/login", "",
		`{"email":"admin@localcrust.in","password":"`+adminPassword+`"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var resp lchttp.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	moderate := doRequest(e, nethttp.MethodPost, "/api/admin/bakers/not-a-uuid/verify", resp.Token, "")
	assert.Equal(t, nethttp.StatusBadRequest, moderate.Code)
}

func TestChangeOrderStatus_UnknownStatus(t *testing.T) {
	e, tokens := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPatch,
		"/api/baker/orders/"+kernel.NewUUID().String()+"/status",
		issue(t, tokens, queries.RoleBaker),
		`{"status":"teleported"}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestSubmitReview_RatingOutOfRange(t *testing.T) {
	e, tokens := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost,
		"/api/orders/"+kernel.NewUUID().String()+"/review",
		issue(t, tokens, queries.RoleCustomer),
		`{"product_id":"`+kernel.NewUUID().String()+`","rating":9,"comment":"great"}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var resp lchttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, nethttp.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Message, "rating")
}

func TestCheckout_MalformedProductID(t *testing.T) {
	e, tokens := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost, "/api/orders",
		issue(t, tokens, queries.RoleCustomer),
		`{"items":[{"product_id":"nope","quantity":1}],`+
			`"address":{"full_name":"A","phone":"1","street":"s","city":"c","state":"st","zip_code":"z"}}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestCheckout_ZeroQuantity(t *testing.T) {
	e, tokens := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost, "/api/orders",
		issue(t, tokens, queries.RoleCustomer),
		`{"items":[{"product_id":"`+kernel.NewUUID().String()+`","quantity":0}],`+
			`"address":{"full_name":"A","phone":"1","street":"s","city":"c","state":"st","zip_code":"z"}}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestRegister_MissingPassword(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost, "/api/auth/register", "",
		`{"email":"a@b.c","name":"A","phone":"1"}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
