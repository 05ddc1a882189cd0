package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"pkgadmin/internal/api"
	"pkgadmin/internal/api/handler/v1handler"
	mockpackages "pkgadmin/internal/packages/mock"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/logger"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testServer struct {
	handler  http.Handler
	packages *mockpackages.MockService
	token    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, v1handler.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Roles: []domain.Role{domain.RoleAdmin},
	}).SignedString(priv)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	pkgs := mockpackages.NewMockService(ctrl)
	handler, err := api.NewHandler(api.Deps{Deps: v1handler.Deps{
		Packages:     pkgs,
		Repositories: mockpackages.NewMockRepositoryFinder(ctrl),
	}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: string(pubPEM)},
		MetricsPath:       "/metrics",
		Registry:          prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	return &testServer{handler: handler, packages: pkgs, token: token}
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func TestNewHandler_PackagesRoute(t *testing.T) {
	s := newTestServer(t)
	s.packages.EXPECT().List(gomock.Any()).Return([]domain.PackageDefinition{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/packages", nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-Request-Id", "req-1")
	rec := s.serve(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, v1handler.MediaType, rec.Header().Get("Content-Type"))
	require.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	metrics := s.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, metrics.Code)
	require.Contains(t, metrics.Body.String(), `http_route="/api/admin/packages"`)
}

func TestNewHandler_RequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.serve(httptest.NewRequest(http.MethodGet, "/api/admin/packages", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewHandler_Preflight(t *testing.T) {
	s := newTestServer(t)

	rec := s.serve(httptest.NewRequest(http.MethodOptions, "/api/admin/packages/pkg1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "ETag")
}

func TestNewHandler_Docs(t *testing.T) {
	s := newTestServer(t)

	spec := s.serve(httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))
	require.Equal(t, http.StatusOK, spec.Code)
	require.Equal(t, "application/yaml", spec.Header().Get("Content-Type"))
	require.Contains(t, spec.Body.String(), "/packages/{package_id}")

	docs := s.serve(httptest.NewRequest(http.MethodGet, "/docs/", nil))
	require.Equal(t, http.StatusOK, docs.Code)
}

func TestNewHandler_Pprof(t *testing.T) {
	s := newTestServer(t)

	rec := s.serve(httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_InvalidPublicKey(t *testing.T) {
	_, err := api.NewHandler(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
		Registry:          prometheus.NewRegistry(),
	})
	require.Error(t, err)
}
